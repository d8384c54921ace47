package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ClientID *uint   `gorm:"column:cliente_id" json:"cliente_id"`
	Client   *Client `gorm:"foreignKey:ClientID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"clientes,omitempty"`

	ServiceID *uint    `gorm:"column:servico_id" json:"servico_id"`
	Service   *Service `gorm:"foreignKey:ServiceID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"servicos,omitempty"`

	// YYYY-MM-DD and HH:MM, kept as text so lexical order is calendar order.
	Date string `gorm:"column:data;size:10;index" json:"data"`
	Time string `gorm:"column:time;size:5" json:"time"`

	Location    string `gorm:"column:local;size:255" json:"local"`
	CustomPrice string `gorm:"column:preco_personalizado;size:20" json:"preco_personalizado"`
	Status      string `gorm:"size:20;default:'pendente';index" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Appointment) TableName() string { return "agendamentos" }
