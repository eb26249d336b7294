package entity

import (
	"time"

	"github.com/google/uuid"
)

// Card is a row of the cards table.
type Card struct {
	Base
	AccountID      uuid.UUID  `json:"account_id"`
	ContractID     *uuid.UUID `json:"contract_id"`
	CardholderName string     `json:"cardholder_name"`
	CardType       string     `json:"card_type"`
	Status         string     `json:"status"`
	IssuingBank    string     `json:"issuing_bank"`
	IssueDate      time.Time  `json:"issue_date"`
	ExpirationDate time.Time  `json:"expiration_date"`
	IsPhysical     bool       `json:"is_physical"`
	MaskedNumber   string     `json:"masked_number"`
	PANFingerprint string     `json:"pan_fingerprint"`
}

func (*Card) Table() string { return "cards" }

func (*Card) Columns() []string {
	return []string{
		"id", "account_id", "contract_id", "cardholder_name", "card_type", "status",
		"issuing_bank", "issue_date", "expiration_date", "is_physical",
		"masked_number", "pan_fingerprint", "created_at", "updated_at",
	}
}

func (c *Card) Fields() []any {
	return []any{
		&c.ID, &c.AccountID, &c.ContractID, &c.CardholderName, &c.CardType, &c.Status,
		&c.IssuingBank, &c.IssueDate, &c.ExpirationDate, &c.IsPhysical,
		&c.MaskedNumber, &c.PANFingerprint, &c.CreatedAt, &c.UpdatedAt,
	}
}
