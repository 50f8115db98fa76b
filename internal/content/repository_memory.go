package content

import (
	"context"
	"sort"
)

type InMemoryRepository struct {
	banners map[string]*Banner
	notices map[string]*Notice
	slides  map[string]*Slide
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		banners: make(map[string]*Banner),
		notices: make(map[string]*Notice),
		slides:  make(map[string]*Slide),
	}
}

func (r *InMemoryRepository) CreateBanner(_ context.Context, b *Banner) error {
	cp := *b
	r.banners[b.ID] = &cp
	return nil
}

func (r *InMemoryRepository) ListBanners(_ context.Context) ([]Banner, error) {
	var banners []Banner
	for _, b := range r.banners {
		banners = append(banners, *b)
	}
	sort.Slice(banners, func(i, j int) bool {
		if banners[i].SortOrder != banners[j].SortOrder {
			return banners[i].SortOrder < banners[j].SortOrder
		}
		return banners[i].Title < banners[j].Title
	})
	return banners, nil
}

func (r *InMemoryRepository) UpdateBanner(_ context.Context, b *Banner) error {
	if _, ok := r.banners[b.ID]; !ok {
		return ErrNotFound
	}
	cp := *b
	r.banners[b.ID] = &cp
	return nil
}

func (r *InMemoryRepository) DeleteBanner(_ context.Context, id string) error {
	if _, ok := r.banners[id]; !ok {
		return ErrNotFound
	}
	delete(r.banners, id)
	return nil
}

func (r *InMemoryRepository) CreateNotice(_ context.Context, n *Notice) error {
	cp := *n
	r.notices[n.ID] = &cp
	return nil
}

func (r *InMemoryRepository) ListNotices(_ context.Context) ([]Notice, error) {
	var notices []Notice
	for _, n := range r.notices {
		notices = append(notices, *n)
	}
	sort.Slice(notices, func(i, j int) bool {
		return notices[i].CreatedAt.After(notices[j].CreatedAt)
	})
	return notices, nil
}

func (r *InMemoryRepository) UpdateNotice(_ context.Context, n *Notice) error {
	if _, ok := r.notices[n.ID]; !ok {
		return ErrNotFound
	}
	cp := *n
	r.notices[n.ID] = &cp
	return nil
}

func (r *InMemoryRepository) DeleteNotice(_ context.Context, id string) error {
	if _, ok := r.notices[id]; !ok {
		return ErrNotFound
	}
	delete(r.notices, id)
	return nil
}

func (r *InMemoryRepository) CreateSlide(_ context.Context, s *Slide) error {
	cp := *s
	r.slides[s.ID] = &cp
	return nil
}

func (r *InMemoryRepository) ListSlides(_ context.Context) ([]Slide, error) {
	var slides []Slide
	for _, s := range r.slides {
		slides = append(slides, *s)
	}
	sort.Slice(slides, func(i, j int) bool {
		if slides[i].SortOrder != slides[j].SortOrder {
			return slides[i].SortOrder < slides[j].SortOrder
		}
		return slides[i].Title < slides[j].Title
	})
	return slides, nil
}

func (r *InMemoryRepository) UpdateSlide(_ context.Context, s *Slide) error {
	if _, ok := r.slides[s.ID]; !ok {
		return ErrNotFound
	}
	cp := *s
	r.slides[s.ID] = &cp
	return nil
}

func (r *InMemoryRepository) DeleteSlide(_ context.Context, id string) error {
	if _, ok := r.slides[id]; !ok {
		return ErrNotFound
	}
	delete(r.slides, id)
	return nil
}
