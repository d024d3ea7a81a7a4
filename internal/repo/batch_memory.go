package repo

import "github.com/mparraf99/inventory-api/internal/models"

// InMemoryBatchRepository is an in-memory implementation of BatchRepository.
// It operates on the batch rows held by an InMemoryProductRepository so the
// two repositories see the same state, as the Postgres ones do.
type InMemoryBatchRepository struct {
	store *InMemoryProductRepository
}

func NewInMemoryBatchRepository(store *InMemoryProductRepository) *InMemoryBatchRepository {
	return &InMemoryBatchRepository{store: store}
}

func (r *InMemoryBatchRepository) Create(batch models.Batch) (models.Batch, error) {
	if !r.productExists(batch.ProductID) {
		return models.Batch{}, ErrProductNotFound
	}
	batch.ID = r.store.nextBatchID
	r.store.nextBatchID++
	r.store.batches = append(r.store.batches, batch)
	return batch, nil
}

func (r *InMemoryBatchRepository) GetAll() ([]models.Batch, error) {
	batches := make([]models.Batch, len(r.store.batches))
	copy(batches, r.store.batches)
	return batches, nil
}

func (r *InMemoryBatchRepository) GetByID(id int) (models.Batch, error) {
	for _, b := range r.store.batches {
		if b.ID == id {
			return b, nil
		}
	}
	return models.Batch{}, ErrBatchNotFound
}

func (r *InMemoryBatchRepository) Update(batch models.Batch) (models.Batch, error) {
	if !r.productExists(batch.ProductID) {
		return models.Batch{}, ErrProductNotFound
	}
	for i, b := range r.store.batches {
		if b.ID == batch.ID {
			r.store.batches[i].LotNumber = batch.LotNumber
			r.store.batches[i].EntryDate = batch.EntryDate
			r.store.batches[i].Price = batch.Price
			r.store.batches[i].ProductID = batch.ProductID
			return r.store.batches[i], nil
		}
	}
	return models.Batch{}, ErrBatchNotFound
}

func (r *InMemoryBatchRepository) Delete(id int) error {
	if !r.store.deleteBatchRow(id) {
		return ErrBatchNotFound
	}
	return nil
}

func (r *InMemoryBatchRepository) productExists(id int) bool {
	for _, p := range r.store.products {
		if p.ID == id {
			return true
		}
	}
	return false
}
