package models

import "time"

// Service is a catalog entry. Type is the label appointments refer to.
type Service struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Type        string `gorm:"column:tipo;size:100;not null;index" json:"tipo"`
	Description string `gorm:"column:descricao;size:255" json:"descricao"`
	Price       string `gorm:"column:preco;size:20" json:"preco"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Service) TableName() string { return "servicos" }
