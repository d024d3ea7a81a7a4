package repo

import "github.com/mparraf99/inventory-api/internal/models"

// BatchRepository defines the interface for batch data operations.
type BatchRepository interface {
	Create(batch models.Batch) (models.Batch, error)
	GetAll() ([]models.Batch, error)
	GetByID(id int) (models.Batch, error)
	Update(batch models.Batch) (models.Batch, error)
	Delete(id int) error
}
