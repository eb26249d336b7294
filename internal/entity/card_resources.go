package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CardBalance is a row of the card_balances table.
type CardBalance struct {
	Base
	CardScoped
	BalanceType     string          `json:"balance_type"`
	Amount          decimal.Decimal `json:"amount"`
	Currency        string          `json:"currency"`
	CreditLimit     decimal.Decimal `json:"credit_limit"`
	IsDelinquent    bool            `json:"is_delinquent"`
	DelinquentSince *time.Time      `json:"delinquent_since"`
	AsOf            time.Time       `json:"as_of"`
}

func (*CardBalance) Table() string { return "card_balances" }

func (*CardBalance) Columns() []string {
	return []string{
		"id", "card_id", "balance_type", "amount", "currency", "credit_limit",
		"is_delinquent", "delinquent_since", "as_of", "created_at", "updated_at",
	}
}

func (b *CardBalance) Fields() []any {
	return []any{
		&b.ID, &b.CardID, &b.BalanceType, &b.Amount, &b.Currency, &b.CreditLimit,
		&b.IsDelinquent, &b.DelinquentSince, &b.AsOf, &b.CreatedAt, &b.UpdatedAt,
	}
}

// CardDispute is a row of the card_disputes table.
type CardDispute struct {
	Base
	CardScoped
	TransactionRef string          `json:"transaction_ref"`
	Reason         string          `json:"reason"`
	Amount         decimal.Decimal `json:"amount"`
	Currency       string          `json:"currency"`
	Status         string          `json:"status"`
	OpenedAt       time.Time       `json:"opened_at"`
	ResolvedAt     *time.Time      `json:"resolved_at"`
}

func (*CardDispute) Table() string { return "card_disputes" }

func (*CardDispute) Columns() []string {
	return []string{
		"id", "card_id", "transaction_ref", "reason", "amount", "currency",
		"status", "opened_at", "resolved_at", "created_at", "updated_at",
	}
}

func (d *CardDispute) Fields() []any {
	return []any{
		&d.ID, &d.CardID, &d.TransactionRef, &d.Reason, &d.Amount, &d.Currency,
		&d.Status, &d.OpenedAt, &d.ResolvedAt, &d.CreatedAt, &d.UpdatedAt,
	}
}

// CardEnrollment is a row of the card_enrollments table.
type CardEnrollment struct {
	Base
	CardScoped
	ProgramName    string     `json:"program_name"`
	EnrollmentType string     `json:"enrollment_type"`
	Status         string     `json:"status"`
	EnrolledAt     time.Time  `json:"enrolled_at"`
	ExpiresAt      *time.Time `json:"expires_at"`
}

func (*CardEnrollment) Table() string { return "card_enrollments" }

func (*CardEnrollment) Columns() []string {
	return []string{
		"id", "card_id", "program_name", "enrollment_type", "status",
		"enrolled_at", "expires_at", "created_at", "updated_at",
	}
}

func (e *CardEnrollment) Fields() []any {
	return []any{
		&e.ID, &e.CardID, &e.ProgramName, &e.EnrollmentType, &e.Status,
		&e.EnrolledAt, &e.ExpiresAt, &e.CreatedAt, &e.UpdatedAt,
	}
}

// CardInterest is a row of the card_interests table.
type CardInterest struct {
	Base
	CardScoped
	RateType      string          `json:"rate_type"`
	AnnualRate    decimal.Decimal `json:"annual_rate"`
	Compounding   string          `json:"compounding"`
	EffectiveFrom time.Time       `json:"effective_from"`
	EffectiveTo   *time.Time      `json:"effective_to"`
}

func (*CardInterest) Table() string { return "card_interests" }

func (*CardInterest) Columns() []string {
	return []string{
		"id", "card_id", "rate_type", "annual_rate", "compounding",
		"effective_from", "effective_to", "created_at", "updated_at",
	}
}

func (i *CardInterest) Fields() []any {
	return []any{
		&i.ID, &i.CardID, &i.RateType, &i.AnnualRate, &i.Compounding,
		&i.EffectiveFrom, &i.EffectiveTo, &i.CreatedAt, &i.UpdatedAt,
	}
}

// CardPromotion is a row of the card_promotions table.
type CardPromotion struct {
	Base
	CardScoped
	Code         string          `json:"code"`
	Description  string          `json:"description"`
	DiscountRate decimal.Decimal `json:"discount_rate"`
	StartsAt     time.Time       `json:"starts_at"`
	EndsAt       time.Time       `json:"ends_at"`
	IsActive     bool            `json:"is_active"`
}

func (*CardPromotion) Table() string { return "card_promotions" }

func (*CardPromotion) Columns() []string {
	return []string{
		"id", "card_id", "code", "description", "discount_rate",
		"starts_at", "ends_at", "is_active", "created_at", "updated_at",
	}
}

func (p *CardPromotion) Fields() []any {
	return []any{
		&p.ID, &p.CardID, &p.Code, &p.Description, &p.DiscountRate,
		&p.StartsAt, &p.EndsAt, &p.IsActive, &p.CreatedAt, &p.UpdatedAt,
	}
}

// CardPayment is a row of the card_payments table.
type CardPayment struct {
	Base
	CardScoped
	Amount    decimal.Decimal `json:"amount"`
	Currency  string          `json:"currency"`
	Method    string          `json:"method"`
	Status    string          `json:"status"`
	Reference string          `json:"reference"`
	PaidAt    time.Time       `json:"paid_at"`
}

func (*CardPayment) Table() string { return "card_payments" }

func (*CardPayment) Columns() []string {
	return []string{
		"id", "card_id", "amount", "currency", "method", "status",
		"reference", "paid_at", "created_at", "updated_at",
	}
}

func (p *CardPayment) Fields() []any {
	return []any{
		&p.ID, &p.CardID, &p.Amount, &p.Currency, &p.Method, &p.Status,
		&p.Reference, &p.PaidAt, &p.CreatedAt, &p.UpdatedAt,
	}
}

// CardActivity is a row of the card_activities table.
type CardActivity struct {
	Base
	CardScoped
	ActivityType string          `json:"activity_type"`
	Description  string          `json:"description"`
	Channel      string          `json:"channel"`
	Amount       decimal.Decimal `json:"amount"`
	Currency     string          `json:"currency"`
	MerchantID   *uuid.UUID      `json:"merchant_id"`
	OccurredAt   time.Time       `json:"occurred_at"`
}

func (*CardActivity) Table() string { return "card_activities" }

func (*CardActivity) Columns() []string {
	return []string{
		"id", "card_id", "activity_type", "description", "channel", "amount",
		"currency", "merchant_id", "occurred_at", "created_at", "updated_at",
	}
}

func (a *CardActivity) Fields() []any {
	return []any{
		&a.ID, &a.CardID, &a.ActivityType, &a.Description, &a.Channel, &a.Amount,
		&a.Currency, &a.MerchantID, &a.OccurredAt, &a.CreatedAt, &a.UpdatedAt,
	}
}
