// dto/clients_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"apexdrive_backend/internals/features/clients/main/model"
)

/* ========== REQUEST DTOs ========== */

type CreateClientRequest struct {
	ClientName   string  `json:"client_name" form:"client_name" validate:"required,min=2,max=120"`
	ClientStatus *string `json:"client_status" form:"client_status" validate:"omitempty,oneof=active inactive"`
}

type UpdateClientRequest struct {
	ClientName   *string `json:"client_name" form:"client_name" validate:"omitempty,min=2,max=120"`
	ClientStatus *string `json:"client_status" form:"client_status" validate:"omitempty,oneof=active inactive"`
}

/* ========== RESPONSE DTO ========== */

type ClientResponse struct {
	ClientID     uuid.UUID `json:"client_id"`
	ClientName   string    `json:"client_name"`
	ClientStatus string    `json:"client_status"`

	ClientCreatedAt time.Time  `json:"client_created_at"`
	ClientUpdatedAt *time.Time `json:"client_updated_at,omitempty"`
}

/* ========== QUERY DTO ========== */

type ListClientQuery struct {
	Status *string `query:"status"`
	Search *string `query:"search"`
}

/* ========== MODEL <-> DTO ========== */

func NewClientResponse(m *model.ClientModel) *ClientResponse {
	if m == nil {
		return nil
	}
	return &ClientResponse{
		ClientID:        m.ClientID,
		ClientName:      m.ClientName,
		ClientStatus:    m.ClientStatus,
		ClientCreatedAt: m.ClientCreatedAt,
		ClientUpdatedAt: m.ClientUpdatedAt,
	}
}

func (r *CreateClientRequest) ToModel() *model.ClientModel {
	m := &model.ClientModel{
		ClientName:   r.ClientName,
		ClientStatus: "active",
	}
	if r.ClientStatus != nil {
		m.ClientStatus = *r.ClientStatus
	}
	return m
}

func (r *UpdateClientRequest) ApplyToModel(m *model.ClientModel) {
	if r.ClientName != nil {
		m.ClientName = *r.ClientName
	}
	if r.ClientStatus != nil {
		m.ClientStatus = *r.ClientStatus
	}
	now := time.Now()
	m.ClientUpdatedAt = &now
}
