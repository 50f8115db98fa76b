package order

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, o *Order) error {
	customer, err := json.Marshal(o.Customer)
	if err != nil {
		return err
	}
	lines, err := json.Marshal(o.Lines)
	if err != nil {
		return err
	}
	totals, err := json.Marshal(o.Totals)
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, `
		INSERT INTO orders (id, customer, lines, payment_mode, totals, status, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, o.ID, customer, lines, o.PaymentMode, totals, o.Status, o.Notes, o.CreatedAt)
	return err
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*Order, error) {
	o := &Order{}
	var customer, lines, totals []byte

	err := r.db.QueryRow(ctx, `
		SELECT id, customer, lines, payment_mode, totals, status, notes, created_at
		FROM orders
		WHERE id = $1
	`, id).Scan(&o.ID, &customer, &lines, &o.PaymentMode, &totals, &o.Status, &o.Notes, &o.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if err := json.Unmarshal(customer, &o.Customer); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(lines, &o.Lines); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(totals, &o.Totals); err != nil {
		return nil, err
	}
	return o, nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]Order, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, customer, lines, payment_mode, totals, status, notes, created_at
		FROM orders
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []Order
	for rows.Next() {
		var o Order
		var customer, lines, totals []byte

		if err := rows.Scan(&o.ID, &customer, &lines, &o.PaymentMode, &totals, &o.Status, &o.Notes, &o.CreatedAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(customer, &o.Customer); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(lines, &o.Lines); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(totals, &o.Totals); err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

func (r *PostgresRepository) UpdateStatus(ctx context.Context, id string, status Status) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE orders SET status = $2 WHERE id = $1
	`, id, status)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
