package domain

import (
	"time"

	"github.com/google/uuid"
)

// ============================================================
// Reference catalog (standalone, not owned by a card)
// ============================================================

// BIN is a bank identification number range.
type BIN struct {
	ID        uuid.UUID  `json:"id"`
	Prefix    string     `json:"prefix" validate:"required,numeric,min=6,max=8"`
	NetworkID *uuid.UUID `json:"networkId,omitempty"`
	IssuerID  *uuid.UUID `json:"issuerId,omitempty"`
	CardType  string     `json:"cardType" validate:"required,oneof=DEBIT CREDIT PREPAID"`
	Country   string     `json:"country" validate:"required,iso3166_1_alpha2"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// CardNetwork is a card scheme such as Visa or Mastercard.
type CardNetwork struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name" validate:"required,max=64"`
	Code      string    `json:"code" validate:"required,max=16"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Issuer is a card-issuing institution.
type Issuer struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name" validate:"required,max=120"`
	Country      string    `json:"country" validate:"required,iso3166_1_alpha2"`
	SwiftCode    string    `json:"swiftCode" validate:"required,alphanum,min=8,max=11"`
	ContactEmail string    `json:"contactEmail" validate:"omitempty,email"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// CardMerchant is a merchant that accepts cards.
type CardMerchant struct {
	ID         uuid.UUID  `json:"id"`
	Name       string     `json:"name" validate:"required,max=120"`
	MCC        string     `json:"mcc" validate:"required,numeric,len=4"`
	Country    string     `json:"country" validate:"required,iso3166_1_alpha2"`
	City       string     `json:"city" validate:"max=120"`
	AcquirerID *uuid.UUID `json:"acquirerId,omitempty"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  time.Time  `json:"updatedAt"`
}

// CardAcquirer is an acquiring bank.
type CardAcquirer struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name" validate:"required,max=120"`
	AcquirerCode string    `json:"acquirerCode" validate:"required,max=32"`
	Country      string    `json:"country" validate:"required,iso3166_1_alpha2"`
	IsActive     bool      `json:"isActive"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// CardGateway is a payment gateway endpoint.
type CardGateway struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name" validate:"required,max=120"`
	EndpointURL string    `json:"endpointUrl" validate:"required,url"`
	Protocol    string    `json:"protocol" validate:"required,oneof=ISO8583 REST SOAP"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// CardProcessor is a card transaction processor.
type CardProcessor struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name" validate:"required,max=120"`
	Region       string    `json:"region" validate:"required,max=64"`
	ContactEmail string    `json:"contactEmail" validate:"omitempty,email"`
	IsActive     bool      `json:"isActive"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// CardTerminal is a physical or virtual point of interaction.
type CardTerminal struct {
	ID           uuid.UUID  `json:"id"`
	TerminalCode string     `json:"terminalCode" validate:"required,max=32"`
	MerchantID   *uuid.UUID `json:"merchantId,omitempty"`
	TerminalType string     `json:"terminalType" validate:"required,oneof=POS ATM KIOSK MPOS"`
	Location     string     `json:"location" validate:"max=255"`
	Status       string     `json:"status" validate:"required,max=32"`
	IsActive     bool       `json:"isActive"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}
