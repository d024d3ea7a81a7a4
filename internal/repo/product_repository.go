package repo

import (
	"github.com/mparraf99/inventory-api/internal/models"
	"github.com/mparraf99/inventory-api/internal/reconcile"
)

// ProductRepository defines the interface for product data operations.
// List and GetByID load products together with their batch relation.
type ProductRepository interface {
	Create(product models.Product) (models.Product, error)
	List(page, pageSize int) ([]models.Product, int, error)
	GetByID(id int) (models.Product, error)
	Update(product models.Product, plan reconcile.Plan) error
	Delete(id int) error
}
