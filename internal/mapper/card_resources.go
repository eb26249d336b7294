package mapper

import (
	"github.com/boddenberg/cards-api-go/internal/domain"
	"github.com/boddenberg/cards-api-go/internal/entity"
)

// --- Balance ---

// BalanceToEntity maps a CardBalance DTO to its row.
func BalanceToEntity(d *domain.CardBalance) *entity.CardBalance {
	return &entity.CardBalance{
		Base:            entity.Base{ID: d.ID, CreatedAt: d.CreatedAt, UpdatedAt: d.UpdatedAt},
		CardScoped:      entity.CardScoped{CardID: d.CardID},
		BalanceType:     d.BalanceType,
		Amount:          d.Amount,
		Currency:        d.Currency,
		CreditLimit:     d.CreditLimit,
		IsDelinquent:    d.IsDelinquent,
		DelinquentSince: d.DelinquentSince,
		AsOf:            d.AsOf,
	}
}

// BalanceToDTO maps a CardBalance row to its DTO.
func BalanceToDTO(e *entity.CardBalance) *domain.CardBalance {
	return &domain.CardBalance{
		ID:              e.ID,
		CardID:          e.CardID,
		BalanceType:     e.BalanceType,
		Amount:          e.Amount,
		Currency:        e.Currency,
		CreditLimit:     e.CreditLimit,
		IsDelinquent:    e.IsDelinquent,
		DelinquentSince: e.DelinquentSince,
		AsOf:            e.AsOf,
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       e.UpdatedAt,
	}
}

// --- Dispute ---

// DisputeToEntity maps a CardDispute DTO to its row.
func DisputeToEntity(d *domain.CardDispute) *entity.CardDispute {
	return &entity.CardDispute{
		Base:           entity.Base{ID: d.ID, CreatedAt: d.CreatedAt, UpdatedAt: d.UpdatedAt},
		CardScoped:     entity.CardScoped{CardID: d.CardID},
		TransactionRef: d.TransactionRef,
		Reason:         d.Reason,
		Amount:         d.Amount,
		Currency:       d.Currency,
		Status:         d.Status,
		OpenedAt:       d.OpenedAt,
		ResolvedAt:     d.ResolvedAt,
	}
}

// DisputeToDTO maps a CardDispute row to its DTO.
func DisputeToDTO(e *entity.CardDispute) *domain.CardDispute {
	return &domain.CardDispute{
		ID:             e.ID,
		CardID:         e.CardID,
		TransactionRef: e.TransactionRef,
		Reason:         e.Reason,
		Amount:         e.Amount,
		Currency:       e.Currency,
		Status:         e.Status,
		OpenedAt:       e.OpenedAt,
		ResolvedAt:     e.ResolvedAt,
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      e.UpdatedAt,
	}
}

// --- Enrollment ---

// EnrollmentToEntity maps a CardEnrollment DTO to its row.
func EnrollmentToEntity(d *domain.CardEnrollment) *entity.CardEnrollment {
	return &entity.CardEnrollment{
		Base:           entity.Base{ID: d.ID, CreatedAt: d.CreatedAt, UpdatedAt: d.UpdatedAt},
		CardScoped:     entity.CardScoped{CardID: d.CardID},
		ProgramName:    d.ProgramName,
		EnrollmentType: d.EnrollmentType,
		Status:         d.Status,
		EnrolledAt:     d.EnrolledAt,
		ExpiresAt:      d.ExpiresAt,
	}
}

// EnrollmentToDTO maps a CardEnrollment row to its DTO.
func EnrollmentToDTO(e *entity.CardEnrollment) *domain.CardEnrollment {
	return &domain.CardEnrollment{
		ID:             e.ID,
		CardID:         e.CardID,
		ProgramName:    e.ProgramName,
		EnrollmentType: e.EnrollmentType,
		Status:         e.Status,
		EnrolledAt:     e.EnrolledAt,
		ExpiresAt:      e.ExpiresAt,
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      e.UpdatedAt,
	}
}

// --- Interest ---

// InterestToEntity maps a CardInterest DTO to its row.
func InterestToEntity(d *domain.CardInterest) *entity.CardInterest {
	return &entity.CardInterest{
		Base:          entity.Base{ID: d.ID, CreatedAt: d.CreatedAt, UpdatedAt: d.UpdatedAt},
		CardScoped:    entity.CardScoped{CardID: d.CardID},
		RateType:      d.RateType,
		AnnualRate:    d.AnnualRate,
		Compounding:   d.Compounding,
		EffectiveFrom: d.EffectiveFrom,
		EffectiveTo:   d.EffectiveTo,
	}
}

// InterestToDTO maps a CardInterest row to its DTO.
func InterestToDTO(e *entity.CardInterest) *domain.CardInterest {
	return &domain.CardInterest{
		ID:            e.ID,
		CardID:        e.CardID,
		RateType:      e.RateType,
		AnnualRate:    e.AnnualRate,
		Compounding:   e.Compounding,
		EffectiveFrom: e.EffectiveFrom,
		EffectiveTo:   e.EffectiveTo,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
}

// --- Promotion ---

// PromotionToEntity maps a CardPromotion DTO to its row.
func PromotionToEntity(d *domain.CardPromotion) *entity.CardPromotion {
	return &entity.CardPromotion{
		Base:         entity.Base{ID: d.ID, CreatedAt: d.CreatedAt, UpdatedAt: d.UpdatedAt},
		CardScoped:   entity.CardScoped{CardID: d.CardID},
		Code:         d.Code,
		Description:  d.Description,
		DiscountRate: d.DiscountRate,
		StartsAt:     d.StartsAt,
		EndsAt:       d.EndsAt,
		IsActive:     d.IsActive,
	}
}

// PromotionToDTO maps a CardPromotion row to its DTO.
func PromotionToDTO(e *entity.CardPromotion) *domain.CardPromotion {
	return &domain.CardPromotion{
		ID:           e.ID,
		CardID:       e.CardID,
		Code:         e.Code,
		Description:  e.Description,
		DiscountRate: e.DiscountRate,
		StartsAt:     e.StartsAt,
		EndsAt:       e.EndsAt,
		IsActive:     e.IsActive,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}

// --- Payment ---

// PaymentToEntity maps a CardPayment DTO to its row.
func PaymentToEntity(d *domain.CardPayment) *entity.CardPayment {
	return &entity.CardPayment{
		Base:       entity.Base{ID: d.ID, CreatedAt: d.CreatedAt, UpdatedAt: d.UpdatedAt},
		CardScoped: entity.CardScoped{CardID: d.CardID},
		Amount:     d.Amount,
		Currency:   d.Currency,
		Method:     d.Method,
		Status:     d.Status,
		Reference:  d.Reference,
		PaidAt:     d.PaidAt,
	}
}

// PaymentToDTO maps a CardPayment row to its DTO.
func PaymentToDTO(e *entity.CardPayment) *domain.CardPayment {
	return &domain.CardPayment{
		ID:        e.ID,
		CardID:    e.CardID,
		Amount:    e.Amount,
		Currency:  e.Currency,
		Method:    e.Method,
		Status:    e.Status,
		Reference: e.Reference,
		PaidAt:    e.PaidAt,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

// --- Activity ---

// ActivityToEntity maps a CardActivity DTO to its row.
func ActivityToEntity(d *domain.CardActivity) *entity.CardActivity {
	return &entity.CardActivity{
		Base:         entity.Base{ID: d.ID, CreatedAt: d.CreatedAt, UpdatedAt: d.UpdatedAt},
		CardScoped:   entity.CardScoped{CardID: d.CardID},
		ActivityType: d.ActivityType,
		Description:  d.Description,
		Channel:      d.Channel,
		Amount:       d.Amount,
		Currency:     d.Currency,
		MerchantID:   d.MerchantID,
		OccurredAt:   d.OccurredAt,
	}
}

// ActivityToDTO maps a CardActivity row to its DTO.
func ActivityToDTO(e *entity.CardActivity) *domain.CardActivity {
	return &domain.CardActivity{
		ID:           e.ID,
		CardID:       e.CardID,
		ActivityType: e.ActivityType,
		Description:  e.Description,
		Channel:      e.Channel,
		Amount:       e.Amount,
		Currency:     e.Currency,
		MerchantID:   e.MerchantID,
		OccurredAt:   e.OccurredAt,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}
