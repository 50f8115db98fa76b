package content

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// --------------------------------------------------
// Public lists (active records only)
// --------------------------------------------------

func (s *Service) ActiveBanners(ctx context.Context) ([]Banner, error) {
	banners, err := s.repo.ListBanners(ctx)
	if err != nil {
		return nil, err
	}
	out := banners[:0]
	for _, b := range banners {
		if b.IsActive {
			out = append(out, b)
		}
	}
	return out, nil
}

func (s *Service) ActiveNotices(ctx context.Context) ([]Notice, error) {
	notices, err := s.repo.ListNotices(ctx)
	if err != nil {
		return nil, err
	}
	out := notices[:0]
	for _, n := range notices {
		if n.IsActive {
			out = append(out, n)
		}
	}
	return out, nil
}

func (s *Service) ActiveSlides(ctx context.Context) ([]Slide, error) {
	slides, err := s.repo.ListSlides(ctx)
	if err != nil {
		return nil, err
	}
	out := slides[:0]
	for _, sl := range slides {
		if sl.IsActive {
			out = append(out, sl)
		}
	}
	return out, nil
}

// --------------------------------------------------
// Admin CRUD
// --------------------------------------------------

func (s *Service) ListBanners(ctx context.Context) ([]Banner, error) {
	return s.repo.ListBanners(ctx)
}

func (s *Service) CreateBanner(ctx context.Context, b *Banner) (*Banner, error) {
	if strings.TrimSpace(b.Title) == "" {
		return nil, errors.New("title is required")
	}
	b.ID = uuid.New().String()
	if err := s.repo.CreateBanner(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *Service) UpdateBanner(ctx context.Context, b *Banner) error {
	if strings.TrimSpace(b.Title) == "" {
		return errors.New("title is required")
	}
	return s.repo.UpdateBanner(ctx, b)
}

func (s *Service) DeleteBanner(ctx context.Context, id string) error {
	return s.repo.DeleteBanner(ctx, id)
}

func (s *Service) ListNotices(ctx context.Context) ([]Notice, error) {
	return s.repo.ListNotices(ctx)
}

func (s *Service) CreateNotice(ctx context.Context, n *Notice) (*Notice, error) {
	if strings.TrimSpace(n.Title) == "" {
		return nil, errors.New("title is required")
	}
	n.ID = uuid.New().String()
	n.CreatedAt = time.Now().UTC()
	if err := s.repo.CreateNotice(ctx, n); err != nil {
		return nil, err
	}
	return n, nil
}

func (s *Service) UpdateNotice(ctx context.Context, n *Notice) error {
	if strings.TrimSpace(n.Title) == "" {
		return errors.New("title is required")
	}
	return s.repo.UpdateNotice(ctx, n)
}

func (s *Service) DeleteNotice(ctx context.Context, id string) error {
	return s.repo.DeleteNotice(ctx, id)
}

func (s *Service) ListSlides(ctx context.Context) ([]Slide, error) {
	return s.repo.ListSlides(ctx)
}

func (s *Service) CreateSlide(ctx context.Context, sl *Slide) (*Slide, error) {
	if strings.TrimSpace(sl.Title) == "" {
		return nil, errors.New("title is required")
	}
	sl.ID = uuid.New().String()
	if err := s.repo.CreateSlide(ctx, sl); err != nil {
		return nil, err
	}
	return sl, nil
}

func (s *Service) UpdateSlide(ctx context.Context, sl *Slide) error {
	if strings.TrimSpace(sl.Title) == "" {
		return errors.New("title is required")
	}
	return s.repo.UpdateSlide(ctx, sl)
}

func (s *Service) DeleteSlide(ctx context.Context, id string) error {
	return s.repo.DeleteSlide(ctx, id)
}
