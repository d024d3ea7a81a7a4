package repo

import (
	"github.com/mparraf99/inventory-api/internal/models"
	"github.com/mparraf99/inventory-api/internal/reconcile"
)

// InMemoryProductRepository is an in-memory implementation of
// ProductRepository. It also owns the batch rows so that an
// InMemoryBatchRepository can share state with it, mirroring the two tables
// of the Postgres implementation.
type InMemoryProductRepository struct {
	products    []models.Product // Batches left nil; batch rows live below
	batches     []models.Batch
	nextID      int
	nextBatchID int
}

// NewInMemoryProductRepository creates a new instance of InMemoryProductRepository.
func NewInMemoryProductRepository() *InMemoryProductRepository {
	return &InMemoryProductRepository{
		products:    []models.Product{},
		batches:     []models.Batch{},
		nextID:      1,
		nextBatchID: 1,
	}
}

// Create adds a new product, and any nested batches, to the repository.
func (r *InMemoryProductRepository) Create(product models.Product) (models.Product, error) {
	nested := product.Batches
	product.Batches = nil
	product.ID = r.nextID
	r.nextID++
	r.products = append(r.products, product)

	created := []models.Batch{}
	for _, b := range nested {
		b.ID = r.nextBatchID
		r.nextBatchID++
		b.ProductID = product.ID
		r.batches = append(r.batches, b)
		created = append(created, b)
	}
	product.Batches = created
	return product, nil
}

// List returns one page of products in insertion order with their batches,
// plus the total product count.
func (r *InMemoryProductRepository) List(page, pageSize int) ([]models.Product, int, error) {
	total := len(r.products)

	start := (page - 1) * pageSize
	if start >= total {
		return []models.Product{}, total, nil
	}
	end := start + pageSize
	if end > total {
		end = total
	}

	items := make([]models.Product, 0, end-start)
	for _, p := range r.products[start:end] {
		p.Batches = r.batchesOf(p.ID)
		items = append(items, p)
	}
	return items, total, nil
}

// GetByID retrieves a product, with its batches, by its ID.
func (r *InMemoryProductRepository) GetByID(id int) (models.Product, error) {
	for _, p := range r.products {
		if p.ID == id {
			p.Batches = r.batchesOf(id)
			return p, nil
		}
	}
	return models.Product{}, ErrProductNotFound
}

// Update saves the product's own fields and applies the reconciliation plan
// against the batch rows.
func (r *InMemoryProductRepository) Update(product models.Product, plan reconcile.Plan) error {
	found := false
	for i, p := range r.products {
		if p.ID == product.ID {
			r.products[i].Name = product.Name
			r.products[i].Description = product.Description
			found = true
			break
		}
	}
	if !found {
		return ErrProductNotFound
	}

	for _, id := range plan.Delete {
		r.deleteBatchRow(id)
	}
	for _, b := range plan.Update {
		for i := range r.batches {
			if r.batches[i].ID == b.ID {
				r.batches[i].LotNumber = b.LotNumber
				r.batches[i].EntryDate = b.EntryDate
				r.batches[i].Price = b.Price
				break
			}
		}
	}
	for _, b := range plan.Insert {
		b.ID = r.nextBatchID
		r.nextBatchID++
		b.ProductID = product.ID
		r.batches = append(r.batches, b)
	}
	return nil
}

// Delete removes a product and, cascading, all batches that reference it.
func (r *InMemoryProductRepository) Delete(id int) error {
	for i, p := range r.products {
		if p.ID == id {
			r.products = append(r.products[:i], r.products[i+1:]...)

			kept := r.batches[:0]
			for _, b := range r.batches {
				if b.ProductID != id {
					kept = append(kept, b)
				}
			}
			r.batches = kept
			return nil
		}
	}
	return ErrProductNotFound
}

func (r *InMemoryProductRepository) Clear() {
	r.products = []models.Product{}
	r.batches = []models.Batch{}
}

func (r *InMemoryProductRepository) batchesOf(productID int) []models.Batch {
	batches := []models.Batch{}
	for _, b := range r.batches {
		if b.ProductID == productID {
			batches = append(batches, b)
		}
	}
	return batches
}

func (r *InMemoryProductRepository) deleteBatchRow(id int) bool {
	for i, b := range r.batches {
		if b.ID == id {
			r.batches = append(r.batches[:i], r.batches[i+1:]...)
			return true
		}
	}
	return false
}
