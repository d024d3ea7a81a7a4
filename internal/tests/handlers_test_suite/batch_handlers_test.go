package handlers_test_suite

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	handler "github.com/mparraf99/inventory-api/internal/http/handlers"
)

func createOwningProduct(t *testing.T) handler.ProductTransfer {
	t.Helper()
	w := createProduct(router, handler.ProductRequest{Name: "Owner"})
	if w.Code != http.StatusCreated {
		t.Fatalf("failed to create owning product: %d", w.Code)
	}
	var created handler.ProductTransfer
	json.NewDecoder(w.Body).Decode(&created)
	return created
}

func TestCreateBatch_Valid(t *testing.T) {
	t.Cleanup(clearAllProducts)
	owner := createOwningProduct(t)

	req := handler.BatchRequest{
		LotNumber: "LOT-42",
		EntryDate: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		Price:     decimal.RequireFromString("7.77"),
		ProductId: owner.Id,
	}
	w := createBatch(router, req)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 Created, got %d", w.Code)
	}

	var created handler.BatchResponse
	if err := json.NewDecoder(w.Body).Decode(&created); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if created.Id == 0 {
		t.Error("expected a store-assigned batch id")
	}
	if created.ProductId != owner.Id {
		t.Errorf("expected product id %d, got %d", owner.Id, created.ProductId)
	}

	location := w.Header().Get("Location")
	expected := fmt.Sprintf("/api/products-batches/%d", created.Id)
	if location != expected {
		t.Errorf("expected Location %q, got %q", expected, location)
	}
}

func TestCreateBatch_UnknownProduct(t *testing.T) {
	t.Cleanup(clearAllProducts)

	req := handler.BatchRequest{
		LotNumber: "LOT-X",
		EntryDate: time.Now().UTC(),
		Price:     decimal.New(1, 0),
		ProductId: 999999,
	}
	w := createBatch(router, req)
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 Not Found, got %d", w.Code)
	}
}

func TestGetAllBatches(t *testing.T) {
	t.Cleanup(clearAllProducts)
	owner := createOwningProduct(t)

	for i := 1; i <= 3; i++ {
		req := handler.BatchRequest{
			LotNumber: fmt.Sprintf("LOT-%d", i),
			EntryDate: time.Date(2024, 6, i, 0, 0, 0, 0, time.UTC),
			Price:     decimal.New(int64(i), 0),
			ProductId: owner.Id,
		}
		if w := createBatch(router, req); w.Code != http.StatusCreated {
			t.Fatalf("failed to create batch %d: %d", i, w.Code)
		}
	}

	w := doJSON(router, http.MethodGet, "/api/products-batches", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var batches []handler.BatchResponse
	if err := json.NewDecoder(w.Body).Decode(&batches); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if len(batches) != 3 {
		t.Errorf("expected 3 batches, got %d", len(batches))
	}
}

func TestGetBatchByID_NotFound(t *testing.T) {
	w := doJSON(router, http.MethodGet, "/api/products-batches/999999", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 Not Found, got %d", w.Code)
	}
}

func TestUpdateBatch_Valid(t *testing.T) {
	t.Cleanup(clearAllProducts)
	owner := createOwningProduct(t)

	w := createBatch(router, handler.BatchRequest{
		LotNumber: "before",
		EntryDate: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		Price:     decimal.RequireFromString("1.00"),
		ProductId: owner.Id,
	})
	var created handler.BatchResponse
	json.NewDecoder(w.Body).Decode(&created)

	update := handler.BatchRequest{
		Id:        created.Id,
		LotNumber: "after",
		EntryDate: time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC),
		Price:     decimal.RequireFromString("2.00"),
		ProductId: owner.Id,
	}
	uw := doJSON(router, http.MethodPut, fmt.Sprintf("/api/products-batches/%d", created.Id), update)
	if uw.Code != http.StatusNoContent {
		t.Fatalf("expected 204 No Content, got %d", uw.Code)
	}

	gw := doJSON(router, http.MethodGet, fmt.Sprintf("/api/products-batches/%d", created.Id), nil)
	var got handler.BatchResponse
	json.NewDecoder(gw.Body).Decode(&got)
	if got.LotNumber != "after" {
		t.Errorf("expected lot number 'after', got %q", got.LotNumber)
	}
	if !got.Price.Equal(decimal.RequireFromString("2.00")) {
		t.Errorf("expected price 2.00, got %v", got.Price)
	}
}

func TestUpdateBatch_IDMismatch(t *testing.T) {
	t.Cleanup(clearAllProducts)
	owner := createOwningProduct(t)

	w := createBatch(router, handler.BatchRequest{
		LotNumber: "any",
		EntryDate: time.Now().UTC(),
		Price:     decimal.New(1, 0),
		ProductId: owner.Id,
	})
	var created handler.BatchResponse
	json.NewDecoder(w.Body).Decode(&created)

	update := handler.BatchRequest{Id: created.Id + 1, LotNumber: "other", ProductId: owner.Id}
	uw := doJSON(router, http.MethodPut, fmt.Sprintf("/api/products-batches/%d", created.Id), update)
	if uw.Code != http.StatusBadRequest {
		t.Errorf("expected 400 Bad Request, got %d", uw.Code)
	}
}

func TestUpdateBatch_NotFound(t *testing.T) {
	t.Cleanup(clearAllProducts)
	owner := createOwningProduct(t)

	update := handler.BatchRequest{Id: 999999, LotNumber: "ghost", ProductId: owner.Id}
	w := doJSON(router, http.MethodPut, "/api/products-batches/999999", update)
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 Not Found, got %d", w.Code)
	}
}

func TestDeleteBatch(t *testing.T) {
	t.Cleanup(clearAllProducts)
	owner := createOwningProduct(t)

	w := createBatch(router, handler.BatchRequest{
		LotNumber: "gone",
		EntryDate: time.Now().UTC(),
		Price:     decimal.New(1, 0),
		ProductId: owner.Id,
	})
	var created handler.BatchResponse
	json.NewDecoder(w.Body).Decode(&created)

	dw := doJSON(router, http.MethodDelete, fmt.Sprintf("/api/products-batches/%d", created.Id), nil)
	if dw.Code != http.StatusNoContent {
		t.Fatalf("expected 204 No Content, got %d", dw.Code)
	}

	gw := doJSON(router, http.MethodGet, fmt.Sprintf("/api/products-batches/%d", created.Id), nil)
	if gw.Code != http.StatusNotFound {
		t.Errorf("expected 404 after delete, got %d", gw.Code)
	}
}

func TestDeleteBatch_NotFound(t *testing.T) {
	w := doJSON(router, http.MethodDelete, "/api/products-batches/999999", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 Not Found, got %d", w.Code)
	}
}
