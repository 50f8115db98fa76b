package catering

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

func (r *PostgresRepository) Create(ctx context.Context, opt *Option) error {
	configs, err := json.Marshal(opt.ItemConfigurations)
	if err != nil {
		return err
	}
	rules, err := json.Marshal(opt.SelectionRules)
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, `
		INSERT INTO catering_options
			(id, title, slug, description, price_type, price, min_people,
			 item_configs, selection_rules, is_active, sort_order)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`, opt.ID, opt.Title, opt.Slug, opt.Description, opt.PriceType, opt.Price,
		opt.MinPeople, configs, rules, opt.IsActive, opt.SortOrder)
	return err
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*Option, error) {
	return r.getOne(ctx, `WHERE id = $1`, id)
}

func (r *PostgresRepository) GetBySlug(ctx context.Context, slug string) (*Option, error) {
	return r.getOne(ctx, `WHERE slug = $1`, slug)
}

func (r *PostgresRepository) getOne(ctx context.Context, where string, arg any) (*Option, error) {
	opt := &Option{}
	var configs, rules []byte

	err := r.db.QueryRow(ctx, `
		SELECT id, title, slug, description, price_type, price, min_people,
		       item_configs, selection_rules, is_active, sort_order, created_at
		FROM catering_options
	`+where, arg).Scan(
		&opt.ID, &opt.Title, &opt.Slug, &opt.Description, &opt.PriceType,
		&opt.Price, &opt.MinPeople, &configs, &rules, &opt.IsActive,
		&opt.SortOrder, &opt.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if err := json.Unmarshal(configs, &opt.ItemConfigurations); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(rules, &opt.SelectionRules); err != nil {
		return nil, err
	}
	opt.SyncItems()

	return opt, nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]Option, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, title, slug, description, price_type, price, min_people,
		       item_configs, selection_rules, is_active, sort_order, created_at
		FROM catering_options
		ORDER BY sort_order, title
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var opts []Option
	for rows.Next() {
		var opt Option
		var configs, rules []byte

		if err := rows.Scan(
			&opt.ID, &opt.Title, &opt.Slug, &opt.Description, &opt.PriceType,
			&opt.Price, &opt.MinPeople, &configs, &rules, &opt.IsActive,
			&opt.SortOrder, &opt.CreatedAt,
		); err != nil {
			return nil, err
		}

		if err := json.Unmarshal(configs, &opt.ItemConfigurations); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(rules, &opt.SelectionRules); err != nil {
			return nil, err
		}
		opt.SyncItems()

		opts = append(opts, opt)
	}
	return opts, rows.Err()
}

func (r *PostgresRepository) Update(ctx context.Context, opt *Option) error {
	configs, err := json.Marshal(opt.ItemConfigurations)
	if err != nil {
		return err
	}
	rules, err := json.Marshal(opt.SelectionRules)
	if err != nil {
		return err
	}

	tag, err := r.db.Exec(ctx, `
		UPDATE catering_options
		SET title = $2, slug = $3, description = $4, price_type = $5,
		    price = $6, min_people = $7, item_configs = $8,
		    selection_rules = $9, is_active = $10, sort_order = $11
		WHERE id = $1
	`, opt.ID, opt.Title, opt.Slug, opt.Description, opt.PriceType, opt.Price,
		opt.MinPeople, configs, rules, opt.IsActive, opt.SortOrder)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM catering_options WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
