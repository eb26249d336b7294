// Package service provides the business logic layer: one generic engine for
// card-scoped resources (Scoped) and one for top-level resources (CRUD),
// instantiated per resource with its mapping functions.
package service

import (
	"github.com/boddenberg/cards-api-go/internal/domain"
	"github.com/boddenberg/cards-api-go/internal/entity"
	"github.com/boddenberg/cards-api-go/internal/infra/observability"
	"github.com/boddenberg/cards-api-go/internal/mapper"
	"github.com/boddenberg/cards-api-go/internal/port"

	"go.uber.org/zap"
)

// Services holds one engine per resource.
type Services struct {
	Cards *CardService

	Balances    *Scoped[domain.CardBalance, entity.CardBalance, *entity.CardBalance]
	Disputes    *Scoped[domain.CardDispute, entity.CardDispute, *entity.CardDispute]
	Enrollments *Scoped[domain.CardEnrollment, entity.CardEnrollment, *entity.CardEnrollment]
	Interests   *Scoped[domain.CardInterest, entity.CardInterest, *entity.CardInterest]
	Promotions  *Scoped[domain.CardPromotion, entity.CardPromotion, *entity.CardPromotion]
	Payments    *Scoped[domain.CardPayment, entity.CardPayment, *entity.CardPayment]
	Activities  *Scoped[domain.CardActivity, entity.CardActivity, *entity.CardActivity]

	BINs       *CRUD[domain.BIN, entity.BIN, *entity.BIN]
	Networks   *CRUD[domain.CardNetwork, entity.CardNetwork, *entity.CardNetwork]
	Issuers    *CRUD[domain.Issuer, entity.Issuer, *entity.Issuer]
	Merchants  *CRUD[domain.CardMerchant, entity.CardMerchant, *entity.CardMerchant]
	Acquirers  *CRUD[domain.CardAcquirer, entity.CardAcquirer, *entity.CardAcquirer]
	Gateways   *CRUD[domain.CardGateway, entity.CardGateway, *entity.CardGateway]
	Processors *CRUD[domain.CardProcessor, entity.CardProcessor, *entity.CardProcessor]
	Terminals  *CRUD[domain.CardTerminal, entity.CardTerminal, *entity.CardTerminal]
}

// NewServices wires every engine to its repository. catalogCache may be
// nil, in which case reference lookups always hit the store.
func NewServices(repos port.Repositories, pan *PANProtector, catalogCache port.Cache[any], metrics *observability.Metrics, logger *zap.Logger) *Services {
	s := &Services{
		Cards: NewCardService(repos.Cards, pan, metrics, logger),

		Balances:    NewScoped[domain.CardBalance, entity.CardBalance]("balance", repos.Balances, mapper.BalanceToEntity, mapper.BalanceToDTO, metrics, logger),
		Disputes:    NewScoped[domain.CardDispute, entity.CardDispute]("dispute", repos.Disputes, mapper.DisputeToEntity, mapper.DisputeToDTO, metrics, logger),
		Enrollments: NewScoped[domain.CardEnrollment, entity.CardEnrollment]("enrollment", repos.Enrollments, mapper.EnrollmentToEntity, mapper.EnrollmentToDTO, metrics, logger),
		Interests:   NewScoped[domain.CardInterest, entity.CardInterest]("interest", repos.Interests, mapper.InterestToEntity, mapper.InterestToDTO, metrics, logger),
		Promotions:  NewScoped[domain.CardPromotion, entity.CardPromotion]("promotion", repos.Promotions, mapper.PromotionToEntity, mapper.PromotionToDTO, metrics, logger),
		Payments:    NewScoped[domain.CardPayment, entity.CardPayment]("payment", repos.Payments, mapper.PaymentToEntity, mapper.PaymentToDTO, metrics, logger),
		Activities:  NewScoped[domain.CardActivity, entity.CardActivity]("activity", repos.Activities, mapper.ActivityToEntity, mapper.ActivityToDTO, metrics, logger),

		BINs:       NewCRUD[domain.BIN, entity.BIN]("bin", repos.BINs, mapper.BINToEntity, mapper.BINToDTO, metrics, logger),
		Networks:   NewCRUD[domain.CardNetwork, entity.CardNetwork]("network", repos.Networks, mapper.NetworkToEntity, mapper.NetworkToDTO, metrics, logger),
		Issuers:    NewCRUD[domain.Issuer, entity.Issuer]("issuer", repos.Issuers, mapper.IssuerToEntity, mapper.IssuerToDTO, metrics, logger),
		Merchants:  NewCRUD[domain.CardMerchant, entity.CardMerchant]("merchant", repos.Merchants, mapper.MerchantToEntity, mapper.MerchantToDTO, metrics, logger),
		Acquirers:  NewCRUD[domain.CardAcquirer, entity.CardAcquirer]("acquirer", repos.Acquirers, mapper.AcquirerToEntity, mapper.AcquirerToDTO, metrics, logger),
		Gateways:   NewCRUD[domain.CardGateway, entity.CardGateway]("gateway", repos.Gateways, mapper.GatewayToEntity, mapper.GatewayToDTO, metrics, logger),
		Processors: NewCRUD[domain.CardProcessor, entity.CardProcessor]("processor", repos.Processors, mapper.ProcessorToEntity, mapper.ProcessorToDTO, metrics, logger),
		Terminals:  NewCRUD[domain.CardTerminal, entity.CardTerminal]("terminal", repos.Terminals, mapper.TerminalToEntity, mapper.TerminalToDTO, metrics, logger),
	}

	if catalogCache != nil {
		s.BINs.WithCache(catalogCache)
		s.Networks.WithCache(catalogCache)
		s.Issuers.WithCache(catalogCache)
		s.Merchants.WithCache(catalogCache)
		s.Acquirers.WithCache(catalogCache)
		s.Gateways.WithCache(catalogCache)
		s.Processors.WithCache(catalogCache)
		s.Terminals.WithCache(catalogCache)
	}

	return s
}
