package validation_test

import (
	"errors"
	"testing"
	"time"

	"github.com/boddenberg/cards-api-go/internal/domain"
	"github.com/boddenberg/cards-api-go/internal/validation"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func validCard() *domain.Card {
	issued := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	return &domain.Card{
		AccountID:      uuid.New(),
		CardholderName: "Ada Lovelace",
		CardType:       "CREDIT",
		Status:         "ACTIVE",
		IssuingBank:    "First Bank",
		IssueDate:      issued,
		ExpirationDate: issued.AddDate(4, 0, 0),
	}
}

func TestValidator_AcceptsValidCard(t *testing.T) {
	if err := validation.New().Struct(validCard()); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

func TestValidator_Rejects(t *testing.T) {
	v := validation.New()

	tests := []struct {
		name   string
		mutate func(c *domain.Card)
		field  string
	}{
		{"missing account", func(c *domain.Card) { c.AccountID = uuid.Nil }, "accountId"},
		{"missing holder", func(c *domain.Card) { c.CardholderName = "" }, "cardholderName"},
		{"unknown card type", func(c *domain.Card) { c.CardType = "GOLD" }, "cardType"},
		{"expiry before issue", func(c *domain.Card) { c.ExpirationDate = c.IssueDate.Add(-time.Hour) }, "expirationDate"},
		{"missing issue date", func(c *domain.Card) { c.IssueDate = time.Time{} }, "issueDate"},
		{"bad card number", func(c *domain.Card) { c.CardNumber = "4111111111111112" }, "cardNumber"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validCard()
			tt.mutate(c)

			err := v.Struct(c)

			var ve *domain.ErrValidation
			if !errors.As(err, &ve) {
				t.Fatalf("expected ErrValidation, got %v", err)
			}
			if ve.Field != tt.field {
				t.Errorf("expected field %s, got %s (%s)", tt.field, ve.Field, ve.Message)
			}
		})
	}
}

func TestValidator_LuhnValidCardNumber(t *testing.T) {
	c := validCard()
	c.CardNumber = "4111111111111111"

	if err := validation.New().Struct(c); err != nil {
		t.Fatalf("expected valid PAN, got %v", err)
	}
}

func TestValidator_DecimalBounds(t *testing.T) {
	v := validation.New()
	in := &domain.CardInterest{
		RateType:      "PURCHASE",
		AnnualRate:    decimal.RequireFromString("19.99"),
		Compounding:   "DAILY",
		EffectiveFrom: time.Now(),
	}
	if err := v.Struct(in); err != nil {
		t.Fatalf("expected valid interest, got %v", err)
	}

	in.AnnualRate = decimal.RequireFromString("100.01")
	var ve *domain.ErrValidation
	if err := v.Struct(in); !errors.As(err, &ve) || ve.Field != "annualRate" {
		t.Fatalf("expected annualRate error, got %v", err)
	}
}

func TestValidator_PositiveAmount(t *testing.T) {
	d := &domain.CardDispute{
		TransactionRef: "TX-1",
		Reason:         "not recognised",
		Amount:         decimal.Zero,
		Currency:       "USD",
		Status:         "OPEN",
		OpenedAt:       time.Now(),
	}

	var ve *domain.ErrValidation
	if err := validation.New().Struct(d); !errors.As(err, &ve) || ve.Field != "amount" {
		t.Fatalf("expected amount error, got %v", err)
	}
}

func TestValidator_CurrencyAndCountryCodes(t *testing.T) {
	v := validation.New()

	b := &domain.CardBalance{BalanceType: "AVAILABLE", Currency: "XXQ", AsOf: time.Now()}
	var ve *domain.ErrValidation
	if err := v.Struct(b); !errors.As(err, &ve) || ve.Field != "currency" {
		t.Fatalf("expected currency error, got %v", err)
	}

	bin := &domain.BIN{Prefix: "411111", CardType: "DEBIT", Country: "ZZ"}
	if err := v.Struct(bin); !errors.As(err, &ve) || ve.Field != "country" {
		t.Fatalf("expected country error, got %v", err)
	}

	bin.Country = "US"
	if err := v.Struct(bin); err != nil {
		t.Fatalf("expected valid BIN, got %v", err)
	}
}
