// Package mapper copies fields between the wire DTOs in package domain and
// the table rows in package entity. Every function is pure; ids and audit
// timestamps are copied as-is and assigned by the service layer.
package mapper

import (
	"github.com/boddenberg/cards-api-go/internal/domain"
	"github.com/boddenberg/cards-api-go/internal/entity"
)

// CardToEntity maps a card DTO to its row. The PAN fields are left empty;
// they are derived from CardNumber by the card service.
func CardToEntity(d *domain.Card) *entity.Card {
	return &entity.Card{
		Base:           entity.Base{ID: d.ID, CreatedAt: d.CreatedAt, UpdatedAt: d.UpdatedAt},
		AccountID:      d.AccountID,
		ContractID:     d.ContractID,
		CardholderName: d.CardholderName,
		CardType:       d.CardType,
		Status:         d.Status,
		IssuingBank:    d.IssuingBank,
		IssueDate:      d.IssueDate,
		ExpirationDate: d.ExpirationDate,
		IsPhysical:     d.IsPhysical,
	}
}

// CardToDTO maps a card row to its DTO. The fingerprint is never exposed.
func CardToDTO(e *entity.Card) *domain.Card {
	return &domain.Card{
		ID:             e.ID,
		AccountID:      e.AccountID,
		ContractID:     e.ContractID,
		CardholderName: e.CardholderName,
		CardType:       e.CardType,
		Status:         e.Status,
		IssuingBank:    e.IssuingBank,
		IssueDate:      e.IssueDate,
		ExpirationDate: e.ExpirationDate,
		IsPhysical:     e.IsPhysical,
		MaskedNumber:   e.MaskedNumber,
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      e.UpdatedAt,
	}
}
