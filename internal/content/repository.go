package content

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("not found")

// Repository defines all database operations for site content
type Repository interface {
	CreateBanner(ctx context.Context, b *Banner) error
	ListBanners(ctx context.Context) ([]Banner, error)
	UpdateBanner(ctx context.Context, b *Banner) error
	DeleteBanner(ctx context.Context, id string) error

	CreateNotice(ctx context.Context, n *Notice) error
	ListNotices(ctx context.Context) ([]Notice, error)
	UpdateNotice(ctx context.Context, n *Notice) error
	DeleteNotice(ctx context.Context, id string) error

	CreateSlide(ctx context.Context, s *Slide) error
	ListSlides(ctx context.Context) ([]Slide, error)
	UpdateSlide(ctx context.Context, s *Slide) error
	DeleteSlide(ctx context.Context, id string) error
}
