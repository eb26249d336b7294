package service

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/boddenberg/cards-api-go/internal/domain"
	"github.com/boddenberg/cards-api-go/internal/entity"
	"github.com/boddenberg/cards-api-go/internal/infra/observability"
	"github.com/boddenberg/cards-api-go/internal/mapper"
	"github.com/boddenberg/cards-api-go/internal/port"

	"go.uber.org/zap"
	"golang.org/x/crypto/blake2b"
)

// ============================================================
// Cards
// ============================================================

// CardService is the top-level engine specialised for cards.
type CardService = CRUD[domain.Card, entity.Card, *entity.Card]

// NewCardService creates the card engine. A raw card number in the input
// is reduced to a masked form and a keyed BLAKE2b fingerprint; the number
// itself is never stored.
func NewCardService(repo port.Repository[entity.Card], pan *PANProtector, metrics *observability.Metrics, logger *zap.Logger) *CardService {
	return NewCRUD[domain.Card, entity.Card](
		"card", repo, mapper.CardToEntity, mapper.CardToDTO, metrics, logger,
	).WithBeforeSave(pan.apply)
}

// PANProtector derives the stored forms of a primary account number.
type PANProtector struct {
	key []byte
}

// NewPANProtector creates a protector keyed with key (at most 64 bytes).
// An empty key yields an unkeyed hash.
func NewPANProtector(key string) (*PANProtector, error) {
	if len(key) > blake2b.Size {
		return nil, fmt.Errorf("pan fingerprint key must be at most %d bytes, got %d", blake2b.Size, len(key))
	}
	return &PANProtector{key: []byte(key)}, nil
}

// Fingerprint returns the hex-encoded keyed hash of the PAN digits.
func (p *PANProtector) Fingerprint(pan string) (string, error) {
	h, err := blake2b.New256(p.key)
	if err != nil {
		return "", fmt.Errorf("init blake2b: %w", err)
	}
	h.Write([]byte(digitsOnly(pan)))
	return hex.EncodeToString(h.Sum(nil)), nil
}

// MaskPAN keeps only the last four digits.
func MaskPAN(pan string) string {
	d := digitsOnly(pan)
	if len(d) < 4 {
		return strings.Repeat("*", len(d))
	}
	return "**** **** **** " + d[len(d)-4:]
}

func (p *PANProtector) apply(in *domain.Card, next, stored *entity.Card) error {
	if in.CardNumber == "" {
		if stored != nil {
			next.MaskedNumber = stored.MaskedNumber
			next.PANFingerprint = stored.PANFingerprint
		}
		return nil
	}

	fp, err := p.Fingerprint(in.CardNumber)
	if err != nil {
		return err
	}
	next.MaskedNumber = MaskPAN(in.CardNumber)
	next.PANFingerprint = fp
	return nil
}

func digitsOnly(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, s)
}
