package catalog

import (
	"context"
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

// --------------------------------------------------
// MENU ITEMS
// --------------------------------------------------

func (r *PostgresRepository) CreateItem(ctx context.Context, item *MenuItem) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO menu_items (id, name, description, price, category_id, image, is_available)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''), $6, $7)
	`, item.ID, item.Name, item.Description, item.Price, item.CategoryID, item.Image, item.IsAvailable)
	return err
}

func (r *PostgresRepository) GetItem(ctx context.Context, id string) (*MenuItem, error) {
	item := &MenuItem{}
	var categoryID *string

	err := r.db.QueryRow(ctx, `
		SELECT id, name, description, price, category_id, image, is_available, created_at
		FROM menu_items
		WHERE id = $1
	`, id).Scan(
		&item.ID, &item.Name, &item.Description, &item.Price,
		&categoryID, &item.Image, &item.IsAvailable, &item.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if categoryID != nil {
		item.CategoryID = *categoryID
	}
	return item, nil
}

func (r *PostgresRepository) ListItems(ctx context.Context) ([]MenuItem, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name, description, price, category_id, image, is_available, created_at
		FROM menu_items
		ORDER BY name
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []MenuItem
	for rows.Next() {
		var item MenuItem
		var categoryID *string
		if err := rows.Scan(
			&item.ID, &item.Name, &item.Description, &item.Price,
			&categoryID, &item.Image, &item.IsAvailable, &item.CreatedAt,
		); err != nil {
			return nil, err
		}
		if categoryID != nil {
			item.CategoryID = *categoryID
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *PostgresRepository) UpdateItem(ctx context.Context, item *MenuItem) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE menu_items
		SET name = $2, description = $3, price = $4,
		    category_id = NULLIF($5, ''), image = $6, is_available = $7
		WHERE id = $1
	`, item.ID, item.Name, item.Description, item.Price, item.CategoryID, item.Image, item.IsAvailable)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresRepository) DeleteItem(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM menu_items WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// --------------------------------------------------
// CATEGORIES
// --------------------------------------------------

func (r *PostgresRepository) CreateCategory(ctx context.Context, cat *Category) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO categories (id, name, slug, sort_order)
		VALUES ($1, $2, $3, $4)
	`, cat.ID, cat.Name, cat.Slug, cat.SortOrder)
	return err
}

func (r *PostgresRepository) GetCategory(ctx context.Context, id string) (*Category, error) {
	cat := &Category{}
	err := r.db.QueryRow(ctx, `
		SELECT id, name, slug, sort_order FROM categories WHERE id = $1
	`, id).Scan(&cat.ID, &cat.Name, &cat.Slug, &cat.SortOrder)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return cat, nil
}

func (r *PostgresRepository) ListCategories(ctx context.Context) ([]Category, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name, slug, sort_order
		FROM categories
		ORDER BY sort_order, name
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cats []Category
	for rows.Next() {
		var cat Category
		if err := rows.Scan(&cat.ID, &cat.Name, &cat.Slug, &cat.SortOrder); err != nil {
			return nil, err
		}
		cats = append(cats, cat)
	}
	return cats, rows.Err()
}

func (r *PostgresRepository) UpdateCategory(ctx context.Context, cat *Category) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE categories SET name = $2, slug = $3, sort_order = $4 WHERE id = $1
	`, cat.ID, cat.Name, cat.Slug, cat.SortOrder)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresRepository) DeleteCategory(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// --------------------------------------------------
// SAUCES
// --------------------------------------------------

func (r *PostgresRepository) CreateSauce(ctx context.Context, sauce *Sauce) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO sauces (id, name, price, image, is_available)
		VALUES ($1, $2, $3, $4, $5)
	`, sauce.ID, sauce.Name, sauce.Price, sauce.Image, sauce.IsAvailable)
	return err
}

func (r *PostgresRepository) GetSauce(ctx context.Context, id string) (*Sauce, error) {
	sauce := &Sauce{}
	err := r.db.QueryRow(ctx, `
		SELECT id, name, price, image, is_available FROM sauces WHERE id = $1
	`, id).Scan(&sauce.ID, &sauce.Name, &sauce.Price, &sauce.Image, &sauce.IsAvailable)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return sauce, nil
}

func (r *PostgresRepository) ListSauces(ctx context.Context) ([]Sauce, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name, price, image, is_available
		FROM sauces
		ORDER BY name
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sauces []Sauce
	for rows.Next() {
		var sauce Sauce
		if err := rows.Scan(&sauce.ID, &sauce.Name, &sauce.Price, &sauce.Image, &sauce.IsAvailable); err != nil {
			return nil, err
		}
		sauces = append(sauces, sauce)
	}
	return sauces, rows.Err()
}

func (r *PostgresRepository) UpdateSauce(ctx context.Context, sauce *Sauce) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE sauces SET name = $2, price = $3, image = $4, is_available = $5 WHERE id = $1
	`, sauce.ID, sauce.Name, sauce.Price, sauce.Image, sauce.IsAvailable)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresRepository) DeleteSauce(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM sauces WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
