package postgres_test

import (
	"strings"
	"testing"

	"github.com/boddenberg/cards-api-go/internal/entity"
	"github.com/boddenberg/cards-api-go/internal/infra/postgres"
)

func TestBuildQueries(t *testing.T) {
	q := postgres.BuildQueries("card_payments", []string{"id", "card_id", "amount", "created_at", "updated_at"})

	tests := []struct {
		name string
		got  string
		want string
	}{
		{"find", q.Find, "SELECT id, card_id, amount, created_at, updated_at FROM card_payments WHERE id = $1"},
		{"list", q.List, "SELECT id, card_id, amount, created_at, updated_at FROM card_payments ORDER BY created_at, id LIMIT $1 OFFSET $2"},
		{"list owned", q.ListOwned, "SELECT id, card_id, amount, created_at, updated_at FROM card_payments WHERE card_id = $1 ORDER BY created_at, id LIMIT $2 OFFSET $3"},
		{"count", q.Count, "SELECT COUNT(*) FROM card_payments"},
		{"count owned", q.CountOwned, "SELECT COUNT(*) FROM card_payments WHERE card_id = $1"},
		{"insert", q.Insert, "INSERT INTO card_payments (id, card_id, amount, created_at, updated_at) VALUES ($1, $2, $3, $4, $5)"},
		{"update", q.Update, "UPDATE card_payments SET card_id = $2, amount = $3, created_at = $4, updated_at = $5 WHERE id = $1"},
		{"delete", q.Delete, "DELETE FROM card_payments WHERE id = $1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got  %q\nwant %q", tt.got, tt.want)
			}
		})
	}
}

// Every entity must hand out exactly one field per column, id first.
func TestEntities_ColumnsMatchFields(t *testing.T) {
	entities := []entity.Entity{
		&entity.Card{}, &entity.CardBalance{}, &entity.CardDispute{}, &entity.CardEnrollment{},
		&entity.CardInterest{}, &entity.CardPromotion{}, &entity.CardPayment{}, &entity.CardActivity{},
		&entity.BIN{}, &entity.CardNetwork{}, &entity.Issuer{}, &entity.CardMerchant{},
		&entity.CardAcquirer{}, &entity.CardGateway{}, &entity.CardProcessor{}, &entity.CardTerminal{},
	}

	for _, e := range entities {
		t.Run(e.Table(), func(t *testing.T) {
			cols := e.Columns()
			if len(cols) != len(e.Fields()) {
				t.Fatalf("%d columns but %d fields", len(cols), len(e.Fields()))
			}
			if cols[0] != "id" {
				t.Errorf("expected id first, got %s", cols[0])
			}
			schema := schemaFor(t)
			if !strings.Contains(schema, "CREATE TABLE IF NOT EXISTS "+e.Table()+" (") {
				t.Errorf("table %s missing from schema", e.Table())
			}
			for _, c := range cols {
				if !strings.Contains(schema, "\n    "+c+" ") {
					t.Errorf("column %s missing from schema", c)
				}
			}
		})
	}
}

func schemaFor(t *testing.T) string {
	t.Helper()
	return postgres.Schema
}
