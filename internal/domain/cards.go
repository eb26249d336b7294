// Package domain defines the externally-facing representations (DTOs) of the
// card-management resources together with the error types and page
// envelope shared by every layer. Field constraints are declared with
// validator tags and checked before a DTO reaches the service layer.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// ============================================================
// Card (top-level aggregate)
// ============================================================

// Card is the wire representation of a payment card.
//
// CardNumber is write-only: it is accepted on create/update, reduced to
// MaskedNumber plus a fingerprint, and never echoed back.
type Card struct {
	ID             uuid.UUID  `json:"id"`
	AccountID      uuid.UUID  `json:"accountId" validate:"required"`
	ContractID     *uuid.UUID `json:"contractId,omitempty"`
	CardholderName string     `json:"cardholderName" validate:"required,max=120"`
	CardType       string     `json:"cardType" validate:"required,oneof=DEBIT CREDIT PREPAID"`
	Status         string     `json:"status" validate:"required,max=32"`
	IssuingBank    string     `json:"issuingBank" validate:"required,max=120"`
	IssueDate      time.Time  `json:"issueDate" validate:"required"`
	ExpirationDate time.Time  `json:"expirationDate" validate:"required,gtfield=IssueDate"`
	IsPhysical     bool       `json:"isPhysical"`
	CardNumber     string     `json:"cardNumber,omitempty" validate:"omitempty,credit_card"`
	MaskedNumber   string     `json:"maskedNumber,omitempty"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}
