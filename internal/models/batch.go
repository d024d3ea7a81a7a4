package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Batch is a lot-tracked stock entry. It cannot exist without an owning
// product; deleting the product cascades to its batches.
type Batch struct {
	ID        int             `json:"id"`
	LotNumber string          `json:"lotNumber"`
	EntryDate time.Time       `json:"entryDate"`
	Price     decimal.Decimal `json:"price"`
	ProductID int             `json:"productId"`

	// Quantity is persisted but not exposed or updated by any endpoint.
	// TODO: confirm with product owner whether quantity tracking is wanted
	// before wiring it into the DTOs.
	Quantity decimal.Decimal `json:"-"`
}
