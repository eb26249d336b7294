package mapper

import (
	"github.com/boddenberg/cards-api-go/internal/domain"
	"github.com/boddenberg/cards-api-go/internal/entity"
)

// BINToEntity maps a BIN DTO to its row.
func BINToEntity(d *domain.BIN) *entity.BIN {
	return &entity.BIN{
		Base:      entity.Base{ID: d.ID, CreatedAt: d.CreatedAt, UpdatedAt: d.UpdatedAt},
		Prefix:    d.Prefix,
		NetworkID: d.NetworkID,
		IssuerID:  d.IssuerID,
		CardType:  d.CardType,
		Country:   d.Country,
	}
}

// BINToDTO maps a BIN row to its DTO.
func BINToDTO(e *entity.BIN) *domain.BIN {
	return &domain.BIN{
		ID:        e.ID,
		Prefix:    e.Prefix,
		NetworkID: e.NetworkID,
		IssuerID:  e.IssuerID,
		CardType:  e.CardType,
		Country:   e.Country,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

// NetworkToEntity maps a CardNetwork DTO to its row.
func NetworkToEntity(d *domain.CardNetwork) *entity.CardNetwork {
	return &entity.CardNetwork{
		Base:     entity.Base{ID: d.ID, CreatedAt: d.CreatedAt, UpdatedAt: d.UpdatedAt},
		Name:     d.Name,
		Code:     d.Code,
		IsActive: d.IsActive,
	}
}

// NetworkToDTO maps a CardNetwork row to its DTO.
func NetworkToDTO(e *entity.CardNetwork) *domain.CardNetwork {
	return &domain.CardNetwork{
		ID:        e.ID,
		Name:      e.Name,
		Code:      e.Code,
		IsActive:  e.IsActive,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

// IssuerToEntity maps an Issuer DTO to its row.
func IssuerToEntity(d *domain.Issuer) *entity.Issuer {
	return &entity.Issuer{
		Base:         entity.Base{ID: d.ID, CreatedAt: d.CreatedAt, UpdatedAt: d.UpdatedAt},
		Name:         d.Name,
		Country:      d.Country,
		SwiftCode:    d.SwiftCode,
		ContactEmail: d.ContactEmail,
	}
}

// IssuerToDTO maps an Issuer row to its DTO.
func IssuerToDTO(e *entity.Issuer) *domain.Issuer {
	return &domain.Issuer{
		ID:           e.ID,
		Name:         e.Name,
		Country:      e.Country,
		SwiftCode:    e.SwiftCode,
		ContactEmail: e.ContactEmail,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}

// MerchantToEntity maps a CardMerchant DTO to its row.
func MerchantToEntity(d *domain.CardMerchant) *entity.CardMerchant {
	return &entity.CardMerchant{
		Base:       entity.Base{ID: d.ID, CreatedAt: d.CreatedAt, UpdatedAt: d.UpdatedAt},
		Name:       d.Name,
		MCC:        d.MCC,
		Country:    d.Country,
		City:       d.City,
		AcquirerID: d.AcquirerID,
	}
}

// MerchantToDTO maps a CardMerchant row to its DTO.
func MerchantToDTO(e *entity.CardMerchant) *domain.CardMerchant {
	return &domain.CardMerchant{
		ID:         e.ID,
		Name:       e.Name,
		MCC:        e.MCC,
		Country:    e.Country,
		City:       e.City,
		AcquirerID: e.AcquirerID,
		CreatedAt:  e.CreatedAt,
		UpdatedAt:  e.UpdatedAt,
	}
}

// AcquirerToEntity maps a CardAcquirer DTO to its row.
func AcquirerToEntity(d *domain.CardAcquirer) *entity.CardAcquirer {
	return &entity.CardAcquirer{
		Base:         entity.Base{ID: d.ID, CreatedAt: d.CreatedAt, UpdatedAt: d.UpdatedAt},
		Name:         d.Name,
		AcquirerCode: d.AcquirerCode,
		Country:      d.Country,
		IsActive:     d.IsActive,
	}
}

// AcquirerToDTO maps a CardAcquirer row to its DTO.
func AcquirerToDTO(e *entity.CardAcquirer) *domain.CardAcquirer {
	return &domain.CardAcquirer{
		ID:           e.ID,
		Name:         e.Name,
		AcquirerCode: e.AcquirerCode,
		Country:      e.Country,
		IsActive:     e.IsActive,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}

// GatewayToEntity maps a CardGateway DTO to its row.
func GatewayToEntity(d *domain.CardGateway) *entity.CardGateway {
	return &entity.CardGateway{
		Base:        entity.Base{ID: d.ID, CreatedAt: d.CreatedAt, UpdatedAt: d.UpdatedAt},
		Name:        d.Name,
		EndpointURL: d.EndpointURL,
		Protocol:    d.Protocol,
		IsActive:    d.IsActive,
	}
}

// GatewayToDTO maps a CardGateway row to its DTO.
func GatewayToDTO(e *entity.CardGateway) *domain.CardGateway {
	return &domain.CardGateway{
		ID:          e.ID,
		Name:        e.Name,
		EndpointURL: e.EndpointURL,
		Protocol:    e.Protocol,
		IsActive:    e.IsActive,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

// ProcessorToEntity maps a CardProcessor DTO to its row.
func ProcessorToEntity(d *domain.CardProcessor) *entity.CardProcessor {
	return &entity.CardProcessor{
		Base:         entity.Base{ID: d.ID, CreatedAt: d.CreatedAt, UpdatedAt: d.UpdatedAt},
		Name:         d.Name,
		Region:       d.Region,
		ContactEmail: d.ContactEmail,
		IsActive:     d.IsActive,
	}
}

// ProcessorToDTO maps a CardProcessor row to its DTO.
func ProcessorToDTO(e *entity.CardProcessor) *domain.CardProcessor {
	return &domain.CardProcessor{
		ID:           e.ID,
		Name:         e.Name,
		Region:       e.Region,
		ContactEmail: e.ContactEmail,
		IsActive:     e.IsActive,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}

// TerminalToEntity maps a CardTerminal DTO to its row.
func TerminalToEntity(d *domain.CardTerminal) *entity.CardTerminal {
	return &entity.CardTerminal{
		Base:         entity.Base{ID: d.ID, CreatedAt: d.CreatedAt, UpdatedAt: d.UpdatedAt},
		TerminalCode: d.TerminalCode,
		MerchantID:   d.MerchantID,
		TerminalType: d.TerminalType,
		Location:     d.Location,
		Status:       d.Status,
		IsActive:     d.IsActive,
	}
}

// TerminalToDTO maps a CardTerminal row to its DTO.
func TerminalToDTO(e *entity.CardTerminal) *domain.CardTerminal {
	return &domain.CardTerminal{
		ID:           e.ID,
		TerminalCode: e.TerminalCode,
		MerchantID:   e.MerchantID,
		TerminalType: e.TerminalType,
		Location:     e.Location,
		Status:       e.Status,
		IsActive:     e.IsActive,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}
