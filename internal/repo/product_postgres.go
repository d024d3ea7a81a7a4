package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mparraf99/inventory-api/internal/models"
	"github.com/mparraf99/inventory-api/internal/reconcile"
)

type PostgresProductRepository struct {
	db *sql.DB
}

func NewPostgresProductRepository(db *sql.DB) *PostgresProductRepository {
	return &PostgresProductRepository{db: db}
}

// Create inserts the product and any nested batches in a single transaction.
func (r *PostgresProductRepository) Create(p models.Product) (models.Product, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return models.Product{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `INSERT INTO products (name, description) VALUES ($1, $2) RETURNING id`
	if err := tx.QueryRowContext(ctx, query, p.Name, p.Description).Scan(&p.ID); err != nil {
		return models.Product{}, err
	}

	batchQuery := `INSERT INTO product_batches (lot_number, entry_date, price, quantity, product_id)
		VALUES ($1, $2, $3, $4, $5) RETURNING id`
	for i := range p.Batches {
		b := &p.Batches[i]
		b.ProductID = p.ID
		if err := tx.QueryRowContext(ctx, batchQuery,
			b.LotNumber, b.EntryDate, b.Price, b.Quantity, b.ProductID).Scan(&b.ID); err != nil {
			return models.Product{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		return models.Product{}, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return p, nil
}

// List returns one page of products with their batches, plus the total
// product count across all pages. Order is by id.
func (r *PostgresProductRepository) List(page, pageSize int) ([]models.Product, int, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM products`).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT id, name, description FROM products ORDER BY id LIMIT $1 OFFSET $2`
	rows, err := r.db.QueryContext(ctx, query, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	products := []models.Product{}
	ids := []int{}
	for rows.Next() {
		var p models.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Description); err != nil {
			return nil, 0, err
		}
		p.Batches = []models.Batch{}
		products = append(products, p)
		ids = append(ids, p.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	byProduct, err := r.batchesByProductIDs(ctx, ids)
	if err != nil {
		return nil, 0, err
	}
	for i := range products {
		if batches, ok := byProduct[products[i].ID]; ok {
			products[i].Batches = batches
		}
	}

	return products, total, nil
}

func (r *PostgresProductRepository) GetByID(id int) (models.Product, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var p models.Product
	query := `SELECT id, name, description FROM products WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&p.ID, &p.Name, &p.Description)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Product{}, ErrProductNotFound
	}
	if err != nil {
		return models.Product{}, err
	}

	byProduct, err := r.batchesByProductIDs(ctx, []int{p.ID})
	if err != nil {
		return models.Product{}, err
	}
	p.Batches = []models.Batch{}
	if batches, ok := byProduct[p.ID]; ok {
		p.Batches = batches
	}
	return p, nil
}

// Update saves the product's own fields and applies the batch reconciliation
// plan, all within one transaction: either every row change lands or none do.
func (r *PostgresProductRepository) Update(p models.Product, plan reconcile.Plan) error {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`UPDATE products SET name = $1, description = $2 WHERE id = $3`,
		p.Name, p.Description, p.ID)
	if err != nil {
		return err
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return ErrProductNotFound
	}

	for _, id := range plan.Delete {
		if _, err := tx.ExecContext(ctx, `DELETE FROM product_batches WHERE id = $1`, id); err != nil {
			return err
		}
	}
	for _, b := range plan.Update {
		_, err := tx.ExecContext(ctx,
			`UPDATE product_batches SET lot_number = $1, entry_date = $2, price = $3 WHERE id = $4`,
			b.LotNumber, b.EntryDate, b.Price, b.ID)
		if err != nil {
			return err
		}
	}
	for _, b := range plan.Insert {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO product_batches (lot_number, entry_date, price, quantity, product_id)
				VALUES ($1, $2, $3, $4, $5)`,
			b.LotNumber, b.EntryDate, b.Price, b.Quantity, p.ID)
		if err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// Delete removes the product; its batches go with it via ON DELETE CASCADE.
func (r *PostgresProductRepository) Delete(id int) error {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return ErrProductNotFound
	}
	return nil
}

func (r *PostgresProductRepository) batchesByProductIDs(ctx context.Context, ids []int) (map[int][]models.Batch, error) {
	byProduct := make(map[int][]models.Batch, len(ids))
	if len(ids) == 0 {
		return byProduct, nil
	}

	placeholders := make([]string, len(ids))
	args := make([]any, len(ids))
	for i, id := range ids {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		args[i] = id
	}

	query := fmt.Sprintf(
		`SELECT id, lot_number, entry_date, price, quantity, product_id
			FROM product_batches WHERE product_id IN (%s) ORDER BY id`,
		strings.Join(placeholders, ", "))

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var b models.Batch
		if err := rows.Scan(&b.ID, &b.LotNumber, &b.EntryDate, &b.Price, &b.Quantity, &b.ProductID); err != nil {
			return nil, err
		}
		byProduct[b.ProductID] = append(byProduct[b.ProductID], b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return byProduct, nil
}
