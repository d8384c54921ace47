package models

import "time"

// Cliente da agenda. Identificado pelo nome exato na criação de agendamentos.
type Client struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name    string `gorm:"column:nome;size:100;not null;index" json:"nome"`
	Contact string `gorm:"column:contato;size:100" json:"contato"`
	Address string `gorm:"column:endereco;size:255" json:"endereco"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Client) TableName() string { return "clientes" }
