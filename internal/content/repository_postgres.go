package content

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// --------------------------------------------------
// BANNERS
// --------------------------------------------------

func (r *PostgresRepository) CreateBanner(ctx context.Context, b *Banner) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO banners (id, title, image, link, is_active, sort_order)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, b.ID, b.Title, b.Image, b.Link, b.IsActive, b.SortOrder)
	return err
}

func (r *PostgresRepository) ListBanners(ctx context.Context) ([]Banner, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, title, image, link, is_active, sort_order
		FROM banners
		ORDER BY sort_order, title
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var banners []Banner
	for rows.Next() {
		var b Banner
		if err := rows.Scan(&b.ID, &b.Title, &b.Image, &b.Link, &b.IsActive, &b.SortOrder); err != nil {
			return nil, err
		}
		banners = append(banners, b)
	}
	return banners, rows.Err()
}

func (r *PostgresRepository) UpdateBanner(ctx context.Context, b *Banner) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE banners
		SET title = $2, image = $3, link = $4, is_active = $5, sort_order = $6
		WHERE id = $1
	`, b.ID, b.Title, b.Image, b.Link, b.IsActive, b.SortOrder)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresRepository) DeleteBanner(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM banners WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// --------------------------------------------------
// NOTICES
// --------------------------------------------------

func (r *PostgresRepository) CreateNotice(ctx context.Context, n *Notice) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO notices (id, title, body, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, n.ID, n.Title, n.Body, n.IsActive, n.CreatedAt)
	return err
}

func (r *PostgresRepository) ListNotices(ctx context.Context) ([]Notice, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, title, body, is_active, created_at
		FROM notices
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notices []Notice
	for rows.Next() {
		var n Notice
		if err := rows.Scan(&n.ID, &n.Title, &n.Body, &n.IsActive, &n.CreatedAt); err != nil {
			return nil, err
		}
		notices = append(notices, n)
	}
	return notices, rows.Err()
}

func (r *PostgresRepository) UpdateNotice(ctx context.Context, n *Notice) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE notices SET title = $2, body = $3, is_active = $4 WHERE id = $1
	`, n.ID, n.Title, n.Body, n.IsActive)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresRepository) DeleteNotice(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM notices WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// --------------------------------------------------
// SLIDES
// --------------------------------------------------

func (r *PostgresRepository) CreateSlide(ctx context.Context, s *Slide) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO slides (id, title, subtitle, image, is_active, sort_order)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, s.ID, s.Title, s.Subtitle, s.Image, s.IsActive, s.SortOrder)
	return err
}

func (r *PostgresRepository) ListSlides(ctx context.Context) ([]Slide, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, title, subtitle, image, is_active, sort_order
		FROM slides
		ORDER BY sort_order, title
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var slides []Slide
	for rows.Next() {
		var s Slide
		if err := rows.Scan(&s.ID, &s.Title, &s.Subtitle, &s.Image, &s.IsActive, &s.SortOrder); err != nil {
			return nil, err
		}
		slides = append(slides, s)
	}
	return slides, rows.Err()
}

func (r *PostgresRepository) UpdateSlide(ctx context.Context, s *Slide) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE slides
		SET title = $2, subtitle = $3, image = $4, is_active = $5, sort_order = $6
		WHERE id = $1
	`, s.ID, s.Title, s.Subtitle, s.Image, s.IsActive, s.SortOrder)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresRepository) DeleteSlide(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM slides WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
