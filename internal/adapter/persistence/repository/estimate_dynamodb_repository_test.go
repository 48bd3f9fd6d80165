package repository

import (
	"testing"
	"time"

	"electripro/internal/domain/entities"
)

func TestEstimateItemRoundTrip(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Millisecond)
	e := entities.Estimate{
		ID:            "est-1",
		OwnerID:       "owner-1",
		ProjectTitle:  "Kitchen Rewiring",
		ClientName:    "John Smith",
		ClientAddress: "123 Main Street",
		Brand:         "AG",
		Date:          "2026-03-01",
		Materials: []entities.MaterialLine{
			{ID: "m-1", Name: "12 AWG Wire", Quantity: 2, UnitCost: 5.50, Total: 11},
			{ID: "m-2", Name: "Outlet", Brand: "Leviton", Quantity: 4, UnitCost: 2.25, Total: 9},
		},
		Labor: []entities.LaborLine{
			{ID: "l-1", Description: "Installation", Hours: 3, HourlyRate: 65, Total: 195},
		},
		TaxRate:  8.5,
		Notes:    "valid 30 days",
		Currency: entities.Currencies[1],
		Status:   entities.EstimateStatusDraft,
		Totals: entities.Totals{
			MaterialsCost: 20,
			LaborCost:     195,
			Subtotal:      215,
			TaxAmount:     18.275,
			GrandTotal:    233.275,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}

	it, err := toEstimateItem(e)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, err := fromEstimateItem(it)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got.ID != e.ID || got.OwnerID != e.OwnerID || got.Date != e.Date || got.Status != e.Status {
		t.Fatalf("identity fields changed: %+v", got)
	}
	if got.Currency != e.Currency {
		t.Fatalf("currency changed: %+v", got.Currency)
	}
	if got.TaxRate != e.TaxRate || got.Totals != e.Totals {
		t.Fatalf("derived values changed: rate=%v totals=%+v", got.TaxRate, got.Totals)
	}
	if len(got.Materials) != 2 || len(got.Labor) != 1 {
		t.Fatalf("line counts changed: %+v", got)
	}
	for i := range e.Materials {
		if got.Materials[i] != e.Materials[i] {
			t.Fatalf("material %d changed: %+v vs %+v", i, got.Materials[i], e.Materials[i])
		}
	}
	if got.Labor[0] != e.Labor[0] {
		t.Fatalf("labor changed: %+v", got.Labor[0])
	}
	if !got.CreatedAt.Equal(e.CreatedAt) || !got.UpdatedAt.Equal(e.UpdatedAt) {
		t.Fatalf("timestamps changed: %+v", got)
	}
}

func TestEstimateItemUnknownCurrencyFallsBack(t *testing.T) {
	it := estimateItem{ID: "est-1", CurrencyCode: "XXX"}
	got, err := fromEstimateItem(it)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Currency != entities.DefaultCurrency() {
		t.Fatalf("expected default currency fallback, got %+v", got.Currency)
	}
}
