package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ============================================================
// Card-scoped resources
//
// Every type below belongs to exactly one card. CardID is taken from
// the URL path; any value supplied in the body is overwritten.
// ============================================================

// CardBalance is a balance snapshot for a card.
type CardBalance struct {
	ID              uuid.UUID       `json:"id"`
	CardID          uuid.UUID       `json:"cardId"`
	BalanceType     string          `json:"balanceType" validate:"required,oneof=AVAILABLE LEDGER CREDIT PENDING"`
	Amount          decimal.Decimal `json:"amount"`
	Currency        string          `json:"currency" validate:"required,iso4217"`
	CreditLimit     decimal.Decimal `json:"creditLimit" validate:"gte=0"`
	IsDelinquent    bool            `json:"isDelinquent"`
	DelinquentSince *time.Time      `json:"delinquentSince,omitempty"`
	AsOf            time.Time       `json:"asOf" validate:"required"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

// CardDispute is a chargeback or dispute raised against a card transaction.
type CardDispute struct {
	ID             uuid.UUID       `json:"id"`
	CardID         uuid.UUID       `json:"cardId"`
	TransactionRef string          `json:"transactionRef" validate:"required,max=64"`
	Reason         string          `json:"reason" validate:"required,max=255"`
	Amount         decimal.Decimal `json:"amount" validate:"gt=0"`
	Currency       string          `json:"currency" validate:"required,iso4217"`
	Status         string          `json:"status" validate:"required,max=32"`
	OpenedAt       time.Time       `json:"openedAt" validate:"required"`
	ResolvedAt     *time.Time      `json:"resolvedAt,omitempty"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

// CardEnrollment records a card's participation in a program.
type CardEnrollment struct {
	ID             uuid.UUID  `json:"id"`
	CardID         uuid.UUID  `json:"cardId"`
	ProgramName    string     `json:"programName" validate:"required,max=120"`
	EnrollmentType string     `json:"enrollmentType" validate:"required,oneof=REWARDS AUTOPAY ALERTS INSTALLMENTS"`
	Status         string     `json:"status" validate:"required,max=32"`
	EnrolledAt     time.Time  `json:"enrolledAt" validate:"required"`
	ExpiresAt      *time.Time `json:"expiresAt,omitempty"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}

// CardInterest is an interest rate schedule attached to a card.
// Rates are stored as given; no accrual is computed.
type CardInterest struct {
	ID            uuid.UUID       `json:"id"`
	CardID        uuid.UUID       `json:"cardId"`
	RateType      string          `json:"rateType" validate:"required,oneof=PURCHASE CASH_ADVANCE BALANCE_TRANSFER PENALTY"`
	AnnualRate    decimal.Decimal `json:"annualRate" validate:"gte=0,lte=100"`
	Compounding   string          `json:"compounding" validate:"required,oneof=DAILY MONTHLY"`
	EffectiveFrom time.Time       `json:"effectiveFrom" validate:"required"`
	EffectiveTo   *time.Time      `json:"effectiveTo,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

// CardPromotion is a promotional offer applied to a card.
type CardPromotion struct {
	ID           uuid.UUID       `json:"id"`
	CardID       uuid.UUID       `json:"cardId"`
	Code         string          `json:"code" validate:"required,max=32"`
	Description  string          `json:"description" validate:"max=255"`
	DiscountRate decimal.Decimal `json:"discountRate" validate:"gte=0,lte=100"`
	StartsAt     time.Time       `json:"startsAt" validate:"required"`
	EndsAt       time.Time       `json:"endsAt" validate:"required,gtfield=StartsAt"`
	IsActive     bool            `json:"isActive"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

// CardPayment is a payment made towards a card.
type CardPayment struct {
	ID        uuid.UUID       `json:"id"`
	CardID    uuid.UUID       `json:"cardId"`
	Amount    decimal.Decimal `json:"amount" validate:"gt=0"`
	Currency  string          `json:"currency" validate:"required,iso4217"`
	Method    string          `json:"method" validate:"required,oneof=ACH WIRE CARD CASH CHECK"`
	Status    string          `json:"status" validate:"required,max=32"`
	Reference string          `json:"reference" validate:"max=64"`
	PaidAt    time.Time       `json:"paidAt" validate:"required"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

// CardActivity is an entry in a card's activity log.
type CardActivity struct {
	ID           uuid.UUID       `json:"id"`
	CardID       uuid.UUID       `json:"cardId"`
	ActivityType string          `json:"activityType" validate:"required,max=32"`
	Description  string          `json:"description" validate:"max=255"`
	Channel      string          `json:"channel" validate:"required,oneof=POS ONLINE ATM MOBILE BRANCH"`
	Amount       decimal.Decimal `json:"amount" validate:"gte=0"`
	Currency     string          `json:"currency" validate:"required,iso4217"`
	MerchantID   *uuid.UUID      `json:"merchantId,omitempty"`
	OccurredAt   time.Time       `json:"occurredAt" validate:"required"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}
