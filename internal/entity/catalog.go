package entity

import "github.com/google/uuid"

// BIN is a row of the bins table.
type BIN struct {
	Base
	Prefix    string     `json:"prefix"`
	NetworkID *uuid.UUID `json:"network_id"`
	IssuerID  *uuid.UUID `json:"issuer_id"`
	CardType  string     `json:"card_type"`
	Country   string     `json:"country"`
}

func (*BIN) Table() string { return "bins" }

func (*BIN) Columns() []string {
	return []string{"id", "prefix", "network_id", "issuer_id", "card_type", "country", "created_at", "updated_at"}
}

func (b *BIN) Fields() []any {
	return []any{&b.ID, &b.Prefix, &b.NetworkID, &b.IssuerID, &b.CardType, &b.Country, &b.CreatedAt, &b.UpdatedAt}
}

// CardNetwork is a row of the card_networks table.
type CardNetwork struct {
	Base
	Name     string `json:"name"`
	Code     string `json:"code"`
	IsActive bool   `json:"is_active"`
}

func (*CardNetwork) Table() string { return "card_networks" }

func (*CardNetwork) Columns() []string {
	return []string{"id", "name", "code", "is_active", "created_at", "updated_at"}
}

func (n *CardNetwork) Fields() []any {
	return []any{&n.ID, &n.Name, &n.Code, &n.IsActive, &n.CreatedAt, &n.UpdatedAt}
}

// Issuer is a row of the issuers table.
type Issuer struct {
	Base
	Name         string `json:"name"`
	Country      string `json:"country"`
	SwiftCode    string `json:"swift_code"`
	ContactEmail string `json:"contact_email"`
}

func (*Issuer) Table() string { return "issuers" }

func (*Issuer) Columns() []string {
	return []string{"id", "name", "country", "swift_code", "contact_email", "created_at", "updated_at"}
}

func (i *Issuer) Fields() []any {
	return []any{&i.ID, &i.Name, &i.Country, &i.SwiftCode, &i.ContactEmail, &i.CreatedAt, &i.UpdatedAt}
}

// CardMerchant is a row of the card_merchants table.
type CardMerchant struct {
	Base
	Name       string     `json:"name"`
	MCC        string     `json:"mcc"`
	Country    string     `json:"country"`
	City       string     `json:"city"`
	AcquirerID *uuid.UUID `json:"acquirer_id"`
}

func (*CardMerchant) Table() string { return "card_merchants" }

func (*CardMerchant) Columns() []string {
	return []string{"id", "name", "mcc", "country", "city", "acquirer_id", "created_at", "updated_at"}
}

func (m *CardMerchant) Fields() []any {
	return []any{&m.ID, &m.Name, &m.MCC, &m.Country, &m.City, &m.AcquirerID, &m.CreatedAt, &m.UpdatedAt}
}

// CardAcquirer is a row of the card_acquirers table.
type CardAcquirer struct {
	Base
	Name         string `json:"name"`
	AcquirerCode string `json:"acquirer_code"`
	Country      string `json:"country"`
	IsActive     bool   `json:"is_active"`
}

func (*CardAcquirer) Table() string { return "card_acquirers" }

func (*CardAcquirer) Columns() []string {
	return []string{"id", "name", "acquirer_code", "country", "is_active", "created_at", "updated_at"}
}

func (a *CardAcquirer) Fields() []any {
	return []any{&a.ID, &a.Name, &a.AcquirerCode, &a.Country, &a.IsActive, &a.CreatedAt, &a.UpdatedAt}
}

// CardGateway is a row of the card_gateways table.
type CardGateway struct {
	Base
	Name        string `json:"name"`
	EndpointURL string `json:"endpoint_url"`
	Protocol    string `json:"protocol"`
	IsActive    bool   `json:"is_active"`
}

func (*CardGateway) Table() string { return "card_gateways" }

func (*CardGateway) Columns() []string {
	return []string{"id", "name", "endpoint_url", "protocol", "is_active", "created_at", "updated_at"}
}

func (g *CardGateway) Fields() []any {
	return []any{&g.ID, &g.Name, &g.EndpointURL, &g.Protocol, &g.IsActive, &g.CreatedAt, &g.UpdatedAt}
}

// CardProcessor is a row of the card_processors table.
type CardProcessor struct {
	Base
	Name         string `json:"name"`
	Region       string `json:"region"`
	ContactEmail string `json:"contact_email"`
	IsActive     bool   `json:"is_active"`
}

func (*CardProcessor) Table() string { return "card_processors" }

func (*CardProcessor) Columns() []string {
	return []string{"id", "name", "region", "contact_email", "is_active", "created_at", "updated_at"}
}

func (p *CardProcessor) Fields() []any {
	return []any{&p.ID, &p.Name, &p.Region, &p.ContactEmail, &p.IsActive, &p.CreatedAt, &p.UpdatedAt}
}

// CardTerminal is a row of the card_terminals table.
type CardTerminal struct {
	Base
	TerminalCode string     `json:"terminal_code"`
	MerchantID   *uuid.UUID `json:"merchant_id"`
	TerminalType string     `json:"terminal_type"`
	Location     string     `json:"location"`
	Status       string     `json:"status"`
	IsActive     bool       `json:"is_active"`
}

func (*CardTerminal) Table() string { return "card_terminals" }

func (*CardTerminal) Columns() []string {
	return []string{"id", "terminal_code", "merchant_id", "terminal_type", "location", "status", "is_active", "created_at", "updated_at"}
}

func (t *CardTerminal) Fields() []any {
	return []any{&t.ID, &t.TerminalCode, &t.MerchantID, &t.TerminalType, &t.Location, &t.Status, &t.IsActive, &t.CreatedAt, &t.UpdatedAt}
}
