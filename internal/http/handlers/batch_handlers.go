package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/mparraf99/inventory-api/internal/repo"
)

// BatchHandler serves the /api/products-batches endpoints. Unlike the
// product PUT there is no nested reconciliation here; batches are plain rows.
type BatchHandler struct {
	batches repo.BatchRepository
}

func NewBatchHandler(batches repo.BatchRepository) *BatchHandler {
	return &BatchHandler{batches: batches}
}

// GetAll godoc
// @Summary List all batches
// @Tags batches
// @Produce json
// @Security BearerAuth
// @Success 200 {array} BatchResponse
// @Failure 500 {string} string "Internal error"
// @Router /api/products-batches [get]
func (h *BatchHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	batches, err := h.batches.GetAll()
	if err != nil {
		http.Error(w, "could not fetch batches", http.StatusInternalServerError)
		return
	}

	response := make([]BatchResponse, 0, len(batches))
	for _, b := range batches {
		response = append(response, toBatchResponse(b))
	}
	mustWriteJSON(w, http.StatusOK, response)
}

// GetByID godoc
// @Summary Get a batch by ID
// @Tags batches
// @Produce json
// @Security BearerAuth
// @Param id path int true "Batch ID"
// @Success 200 {object} BatchResponse
// @Failure 400 {string} string "Invalid ID"
// @Failure 404 {string} string "Not found"
// @Failure 500 {string} string "Internal error"
// @Router /api/products-batches/{id} [get]
func (h *BatchHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid batch ID", http.StatusBadRequest)
		return
	}

	batch, err := h.batches.GetByID(id)
	if err != nil {
		if errors.Is(err, repo.ErrBatchNotFound) {
			http.Error(w, "batch not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not fetch batch", http.StatusInternalServerError)
		return
	}
	mustWriteJSON(w, http.StatusOK, toBatchResponse(batch))
}

// Create godoc
// @Summary Create a batch for an existing product
// @Tags batches
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param batch body BatchRequest true "Batch to add"
// @Success 201 {object} BatchResponse
// @Failure 400 {string} string "Invalid input"
// @Failure 404 {string} string "Owning product not found"
// @Failure 500 {string} string "Internal error"
// @Router /api/products-batches [post]
func (h *BatchHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req BatchRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	batch := fromBatchRequest(req)
	batch.ID = 0
	created, err := h.batches.Create(batch)
	if err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			http.Error(w, "product not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not create batch", http.StatusInternalServerError)
		return
	}

	headers := http.Header{"Location": []string{fmt.Sprintf("/api/products-batches/%d", created.ID)}}
	mustWriteJSON(w, http.StatusCreated, toBatchResponse(created), headers)
}

// Update godoc
// @Summary Update a batch's fields
// @Tags batches
// @Accept json
// @Security BearerAuth
// @Param id path int true "Batch ID"
// @Param batch body BatchRequest true "Replacement batch state"
// @Success 204 "Updated"
// @Failure 400 {string} string "Invalid input or id mismatch"
// @Failure 404 {string} string "Not found"
// @Failure 500 {string} string "Internal error"
// @Router /api/products-batches/{id} [put]
func (h *BatchHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid batch ID", http.StatusBadRequest)
		return
	}

	var req BatchRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}
	if req.Id != id {
		http.Error(w, "batch ID mismatch", http.StatusBadRequest)
		return
	}

	if _, err := h.batches.Update(fromBatchRequest(req)); err != nil {
		switch {
		case errors.Is(err, repo.ErrBatchNotFound):
			http.Error(w, "batch not found", http.StatusNotFound)
		case errors.Is(err, repo.ErrProductNotFound):
			http.Error(w, "product not found", http.StatusNotFound)
		default:
			http.Error(w, "could not update batch", http.StatusInternalServerError)
		}
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Delete godoc
// @Summary Delete a batch
// @Tags batches
// @Security BearerAuth
// @Param id path int true "Batch ID"
// @Success 204 "Deleted"
// @Failure 400 {string} string "Invalid ID"
// @Failure 404 {string} string "Not found"
// @Failure 500 {string} string "Internal error"
// @Router /api/products-batches/{id} [delete]
func (h *BatchHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid batch ID", http.StatusBadRequest)
		return
	}

	if err := h.batches.Delete(id); err != nil {
		if errors.Is(err, repo.ErrBatchNotFound) {
			http.Error(w, "batch not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not delete batch", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
