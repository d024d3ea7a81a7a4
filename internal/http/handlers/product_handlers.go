package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/mparraf99/inventory-api/internal/models"
	"github.com/mparraf99/inventory-api/internal/reconcile"
	"github.com/mparraf99/inventory-api/internal/repo"
)

// ProductHandler serves the /api/products endpoints.
type ProductHandler struct {
	products repo.ProductRepository
}

func NewProductHandler(products repo.ProductRepository) *ProductHandler {
	return &ProductHandler{products: products}
}

const (
	defaultPage     = 1
	defaultPageSize = 10
)

// List godoc
// @Summary List products with their batches, paginated
// @Tags products
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number, starting at 1"
// @Param pageSize query int false "Items per page"
// @Success 200 {object} ProductPage
// @Failure 400 {string} string "Invalid pagination"
// @Failure 500 {string} string "Internal error"
// @Router /api/products [get]
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	page, err := queryInt(r, "page", defaultPage)
	if err != nil {
		http.Error(w, "invalid page", http.StatusBadRequest)
		return
	}
	pageSize, err := queryInt(r, "pageSize", defaultPageSize)
	if err != nil {
		http.Error(w, "invalid pageSize", http.StatusBadRequest)
		return
	}
	if page <= 0 || pageSize <= 0 {
		http.Error(w, "page and pageSize must be greater than zero", http.StatusBadRequest)
		return
	}

	products, total, err := h.products.List(page, pageSize)
	if err != nil {
		http.Error(w, "could not fetch products", http.StatusInternalServerError)
		return
	}

	items := make([]ProductTransfer, 0, len(products))
	for _, p := range products {
		items = append(items, toProductTransfer(p))
	}

	mustWriteJSON(w, http.StatusOK, ProductPage{
		TotalItems: total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: (total + pageSize - 1) / pageSize,
		Items:      items,
	})
}

// GetByID godoc
// @Summary Get a product with its batches by ID
// @Tags products
// @Produce json
// @Security BearerAuth
// @Param id path int true "Product ID"
// @Success 200 {object} ProductTransfer
// @Failure 400 {string} string "Invalid ID"
// @Failure 404 {string} string "Not found"
// @Failure 500 {string} string "Internal error"
// @Router /api/products/{id} [get]
func (h *ProductHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid product ID", http.StatusBadRequest)
		return
	}

	product, err := h.products.GetByID(id)
	if err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			http.Error(w, "product not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not fetch product", http.StatusInternalServerError)
		return
	}
	mustWriteJSON(w, http.StatusOK, toProductTransfer(product))
}

// Create godoc
// @Summary Create a product, optionally with nested batches
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param product body ProductRequest true "Product to add"
// @Success 201 {object} ProductTransfer
// @Failure 400 {string} string "Invalid input"
// @Failure 500 {string} string "Internal error"
// @Router /api/products [post]
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req ProductRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	product := models.Product{
		Name:        req.Name,
		Description: req.Description,
		Batches:     fromBatchRequests(req.Batches),
	}
	created, err := h.products.Create(product)
	if err != nil {
		http.Error(w, "could not create product", http.StatusInternalServerError)
		return
	}

	headers := http.Header{"Location": []string{fmt.Sprintf("/api/products/%d", created.ID)}}
	mustWriteJSON(w, http.StatusCreated, toProductTransfer(created), headers)
}

// Update godoc
// @Summary Update a product and reconcile its batch collection
// @Description Replaces the product's fields and diffs the supplied batch
// @Description list against the stored one: batches missing from the payload
// @Description are deleted, batches with a matching id are updated in place,
// @Description and batches with a zero or unknown id are inserted.
// @Tags products
// @Accept json
// @Security BearerAuth
// @Param id path int true "Product ID"
// @Param product body ProductRequest true "Replacement product state"
// @Success 204 "Updated"
// @Failure 400 {string} string "Invalid input or id mismatch"
// @Failure 404 {string} string "Not found"
// @Failure 500 {string} string "Internal error"
// @Router /api/products/{id} [put]
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid product ID", http.StatusBadRequest)
		return
	}

	var req ProductRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}
	if req.Id != id {
		http.Error(w, "product ID mismatch", http.StatusBadRequest)
		return
	}

	existing, err := h.products.GetByID(id)
	if err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			http.Error(w, "product not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not fetch product", http.StatusInternalServerError)
		return
	}

	plan := reconcile.Batches(existing.Batches, fromBatchRequests(req.Batches), id)
	product := models.Product{ID: id, Name: req.Name, Description: req.Description}
	if err := h.products.Update(product, plan); err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			http.Error(w, "product not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not update product", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Delete godoc
// @Summary Delete a product and, cascading, its batches
// @Tags products
// @Security BearerAuth
// @Param id path int true "Product ID"
// @Success 204 "Deleted"
// @Failure 400 {string} string "Invalid ID"
// @Failure 404 {string} string "Not found"
// @Failure 500 {string} string "Internal error"
// @Router /api/products/{id} [delete]
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid product ID", http.StatusBadRequest)
		return
	}

	if err := h.products.Delete(id); err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			http.Error(w, "product not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not delete product", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func queryInt(r *http.Request, name string, fallback int) (int, error) {
	s := r.URL.Query().Get(name)
	if s == "" {
		return fallback, nil
	}
	return strconv.Atoi(s)
}
