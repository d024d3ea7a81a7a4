package repo

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mparraf99/inventory-api/internal/models"
)

// pgForeignKeyViolation is the Postgres error code for FK constraint failures.
const pgForeignKeyViolation = "23503"

type PostgresBatchRepository struct {
	db *sql.DB
}

func NewPostgresBatchRepository(db *sql.DB) *PostgresBatchRepository {
	return &PostgresBatchRepository{db: db}
}

func (r *PostgresBatchRepository) Create(b models.Batch) (models.Batch, error) {
	query := `INSERT INTO product_batches (lot_number, entry_date, price, quantity, product_id)
		VALUES ($1, $2, $3, $4, $5) RETURNING id`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err := r.db.QueryRowContext(ctx, query,
		b.LotNumber, b.EntryDate, b.Price, b.Quantity, b.ProductID).Scan(&b.ID)
	if isForeignKeyViolation(err) {
		return models.Batch{}, ErrProductNotFound
	}
	if err != nil {
		return models.Batch{}, err
	}
	return b, nil
}

func (r *PostgresBatchRepository) GetAll() ([]models.Batch, error) {
	query := `SELECT id, lot_number, entry_date, price, quantity, product_id
		FROM product_batches ORDER BY id`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	batches := []models.Batch{}
	for rows.Next() {
		var b models.Batch
		if err := rows.Scan(&b.ID, &b.LotNumber, &b.EntryDate, &b.Price, &b.Quantity, &b.ProductID); err != nil {
			return nil, err
		}
		batches = append(batches, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return batches, nil
}

func (r *PostgresBatchRepository) GetByID(id int) (models.Batch, error) {
	query := `SELECT id, lot_number, entry_date, price, quantity, product_id
		FROM product_batches WHERE id = $1`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var b models.Batch
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&b.ID, &b.LotNumber, &b.EntryDate, &b.Price, &b.Quantity, &b.ProductID)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Batch{}, ErrBatchNotFound
	}
	if err != nil {
		return models.Batch{}, err
	}
	return b, nil
}

func (r *PostgresBatchRepository) Update(b models.Batch) (models.Batch, error) {
	query := `UPDATE product_batches SET lot_number = $1, entry_date = $2, price = $3, product_id = $4
		WHERE id = $5`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx, query, b.LotNumber, b.EntryDate, b.Price, b.ProductID, b.ID)
	if isForeignKeyViolation(err) {
		return models.Batch{}, ErrProductNotFound
	}
	if err != nil {
		return models.Batch{}, err
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return models.Batch{}, ErrBatchNotFound
	}
	return b, nil
}

func (r *PostgresBatchRepository) Delete(id int) error {
	query := `DELETE FROM product_batches WHERE id = $1`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return ErrBatchNotFound
	}
	return nil
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation
}
