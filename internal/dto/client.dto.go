package dto

import "github.com/BruksfildServices01/coldtech-agenda/internal/models"

type CreateClientRequest struct {
	Name    string `json:"nome" binding:"required,max=100"`
	Contact string `json:"contato" binding:"max=100"`
	Address string `json:"endereco" binding:"max=255"`
}

func (r CreateClientRequest) ToModel() models.Client {
	return models.Client{
		Name:    r.Name,
		Contact: r.Contact,
		Address: r.Address,
	}
}

// UpdateClientRequest only changes the fields it carries.
type UpdateClientRequest struct {
	Name    *string `json:"nome" binding:"omitempty,min=1,max=100"`
	Contact *string `json:"contato" binding:"omitempty,max=100"`
	Address *string `json:"endereco" binding:"omitempty,max=255"`
}

func (r UpdateClientRequest) ToModel() models.Client {
	var c models.Client
	if r.Name != nil {
		c.Name = *r.Name
	}
	if r.Contact != nil {
		c.Contact = *r.Contact
	}
	if r.Address != nil {
		c.Address = *r.Address
	}
	return c
}

// Empty reports a patch that changes nothing.
func (r UpdateClientRequest) Empty() bool {
	return r.Name == nil && r.Contact == nil && r.Address == nil
}
