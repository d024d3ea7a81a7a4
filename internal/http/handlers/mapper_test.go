package handlers

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mparraf99/inventory-api/internal/models"
)

func TestToProductTransfer_ProjectsOnlyExposedFields(t *testing.T) {
	entryDate := time.Date(2024, 2, 1, 12, 0, 0, 0, time.UTC)
	p := models.Product{
		ID:          3,
		Name:        "Widget",
		Description: "a widget",
		Batches: []models.Batch{
			{
				ID:        11,
				LotNumber: "LOT-1",
				EntryDate: entryDate,
				Price:     decimal.RequireFromString("9.99"),
				Quantity:  decimal.RequireFromString("120.5"),
				ProductID: 3,
			},
		},
	}

	transfer := toProductTransfer(p)

	if transfer.Id != 3 || transfer.Name != "Widget" || transfer.Description != "a widget" {
		t.Errorf("unexpected product projection: %+v", transfer)
	}
	if len(transfer.Batches) != 1 {
		t.Fatalf("expected 1 batch, got %d", len(transfer.Batches))
	}
	b := transfer.Batches[0]
	if b.Id != 11 || b.LotNumber != "LOT-1" || !b.EntryDate.Equal(entryDate) {
		t.Errorf("unexpected batch projection: %+v", b)
	}
	if !b.Price.Equal(decimal.RequireFromString("9.99")) {
		t.Errorf("expected price 9.99, got %v", b.Price)
	}

	// Quantity must never leak into the wire shape.
	out, err := json.Marshal(transfer)
	if err != nil {
		t.Fatalf("error marshalling transfer: %v", err)
	}
	if strings.Contains(strings.ToLower(string(out)), "quantity") {
		t.Errorf("quantity leaked into transfer JSON: %s", out)
	}
}

func TestToProductTransfer_NilBatchesBecomesEmptySlice(t *testing.T) {
	transfer := toProductTransfer(models.Product{ID: 1, Name: "Bare"})

	if transfer.Batches == nil {
		t.Fatal("expected a non-nil batches slice")
	}
	if len(transfer.Batches) != 0 {
		t.Errorf("expected empty batches, got %d", len(transfer.Batches))
	}

	out, err := json.Marshal(transfer)
	if err != nil {
		t.Fatalf("error marshalling transfer: %v", err)
	}
	if !strings.Contains(string(out), `"batches":[]`) {
		t.Errorf("expected batches to serialize as [], got %s", out)
	}
}
