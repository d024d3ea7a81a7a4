package models

// Product represents a catalogued item owning zero or more lot-tracked batches.
// Batches is only populated when the product was loaded together with its
// relation; a nil slice means the relation was not loaded.
type Product struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Batches     []Batch `json:"batches,omitempty"`
}
