// Package reconcile computes the row changes needed to make a product's
// persisted batch collection match a caller-supplied replacement collection.
// It is pure: callers apply the resulting plan against the store themselves.
package reconcile

import "github.com/mparraf99/inventory-api/internal/models"

// Plan partitions the outcome of a batch diff. The three sets act on
// disjoint rows, so they can be applied in any order within a transaction.
type Plan struct {
	// Delete holds ids of persisted batches absent from the replacement.
	Delete []int
	// Update holds persisted batches with lot number, entry date and price
	// copied from the replacement. Identity and product reference are kept.
	Update []models.Batch
	// Insert holds replacement batches with no persisted counterpart, with
	// ProductID forced to the owning product and identity cleared so the
	// store assigns it.
	Insert []models.Batch
}

// Batches diffs existing against replacement, matching purely by batch id.
// A replacement batch with a zero or unknown id becomes an insert; duplicate
// ids within replacement resolve last-write-wins for the update field values,
// while unmatched duplicates each produce their own insert.
func Batches(existing, replacement []models.Batch, productID int) Plan {
	replacementByID := make(map[int]models.Batch, len(replacement))
	for _, b := range replacement {
		if b.ID != 0 {
			replacementByID[b.ID] = b
		}
	}

	existingIDs := make(map[int]struct{}, len(existing))
	for _, b := range existing {
		existingIDs[b.ID] = struct{}{}
	}

	var plan Plan
	for _, cur := range existing {
		repl, ok := replacementByID[cur.ID]
		if !ok {
			plan.Delete = append(plan.Delete, cur.ID)
			continue
		}
		cur.LotNumber = repl.LotNumber
		cur.EntryDate = repl.EntryDate
		cur.Price = repl.Price
		plan.Update = append(plan.Update, cur)
	}

	for _, b := range replacement {
		if _, ok := existingIDs[b.ID]; ok {
			continue
		}
		b.ID = 0
		b.ProductID = productID
		plan.Insert = append(plan.Insert, b)
	}

	return plan
}
