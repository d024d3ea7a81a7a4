package handlers

import "github.com/mparraf99/inventory-api/internal/models"

// toProductTransfer projects a product aggregate into its transfer shape.
// Only id, name and description are carried from the product, and only id,
// lot number, entry date and price from each batch. Batches is always a
// non-nil slice, even when the source collection is empty or unloaded.
func toProductTransfer(p models.Product) ProductTransfer {
	batches := make([]BatchTransfer, 0, len(p.Batches))
	for _, b := range p.Batches {
		batches = append(batches, toBatchTransfer(b))
	}
	return ProductTransfer{
		Id:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Batches:     batches,
	}
}

func toBatchTransfer(b models.Batch) BatchTransfer {
	return BatchTransfer{
		Id:        b.ID,
		LotNumber: b.LotNumber,
		EntryDate: b.EntryDate,
		Price:     b.Price,
	}
}

func toBatchResponse(b models.Batch) BatchResponse {
	return BatchResponse{
		Id:        b.ID,
		LotNumber: b.LotNumber,
		EntryDate: b.EntryDate,
		Price:     b.Price,
		ProductId: b.ProductID,
	}
}

func fromBatchRequest(req BatchRequest) models.Batch {
	return models.Batch{
		ID:        req.Id,
		LotNumber: req.LotNumber,
		EntryDate: req.EntryDate,
		Price:     req.Price,
		ProductID: req.ProductId,
	}
}

func fromBatchRequests(reqs []BatchRequest) []models.Batch {
	batches := make([]models.Batch, 0, len(reqs))
	for _, req := range reqs {
		batches = append(batches, fromBatchRequest(req))
	}
	return batches
}
