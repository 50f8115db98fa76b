package catalog

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

var slugCleaner = regexp.MustCompile(`[^a-z0-9]+`)

func slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = slugCleaner.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// --------------------------------------------------
// Public menu
// --------------------------------------------------

// Menu groups available items under their categories, in display order.
func (s *Service) Menu(ctx context.Context) ([]CategoryMenu, error) {
	cats, err := s.repo.ListCategories(ctx)
	if err != nil {
		return nil, err
	}

	items, err := s.repo.ListItems(ctx)
	if err != nil {
		return nil, err
	}

	byCategory := make(map[string][]MenuItem)
	for _, item := range items {
		if !item.IsAvailable {
			continue
		}
		byCategory[item.CategoryID] = append(byCategory[item.CategoryID], item)
	}

	menu := make([]CategoryMenu, 0, len(cats))
	for _, cat := range cats {
		menu = append(menu, CategoryMenu{
			Category: cat,
			Items:    byCategory[cat.ID],
		})
	}
	return menu, nil
}

func (s *Service) GetItem(ctx context.Context, id string) (*MenuItem, error) {
	return s.repo.GetItem(ctx, id)
}

func (s *Service) GetCategory(ctx context.Context, id string) (*Category, error) {
	return s.repo.GetCategory(ctx, id)
}

func (s *Service) ListItems(ctx context.Context) ([]MenuItem, error) {
	return s.repo.ListItems(ctx)
}

func (s *Service) ListSauces(ctx context.Context) ([]Sauce, error) {
	return s.repo.ListSauces(ctx)
}

// AvailableSauces filters out anything the kitchen has switched off.
func (s *Service) AvailableSauces(ctx context.Context) ([]Sauce, error) {
	sauces, err := s.repo.ListSauces(ctx)
	if err != nil {
		return nil, err
	}

	out := sauces[:0]
	for _, sauce := range sauces {
		if sauce.IsAvailable {
			out = append(out, sauce)
		}
	}
	return out, nil
}

// --------------------------------------------------
// Admin: menu items
// --------------------------------------------------

func (s *Service) CreateItem(ctx context.Context, item *MenuItem) (*MenuItem, error) {
	if strings.TrimSpace(item.Name) == "" {
		return nil, errors.New("name is required")
	}
	if item.Price < 0 {
		return nil, errors.New("price must not be negative")
	}

	item.ID = uuid.New().String()
	if err := s.repo.CreateItem(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *Service) UpdateItem(ctx context.Context, item *MenuItem) error {
	if strings.TrimSpace(item.Name) == "" {
		return errors.New("name is required")
	}
	if item.Price < 0 {
		return errors.New("price must not be negative")
	}
	return s.repo.UpdateItem(ctx, item)
}

func (s *Service) DeleteItem(ctx context.Context, id string) error {
	return s.repo.DeleteItem(ctx, id)
}

// --------------------------------------------------
// Admin: categories
// --------------------------------------------------

func (s *Service) ListCategories(ctx context.Context) ([]Category, error) {
	return s.repo.ListCategories(ctx)
}

func (s *Service) CreateCategory(ctx context.Context, cat *Category) (*Category, error) {
	if strings.TrimSpace(cat.Name) == "" {
		return nil, errors.New("name is required")
	}

	cat.ID = uuid.New().String()
	if cat.Slug == "" {
		cat.Slug = slugify(cat.Name)
	}

	if err := s.repo.CreateCategory(ctx, cat); err != nil {
		return nil, err
	}
	return cat, nil
}

func (s *Service) UpdateCategory(ctx context.Context, cat *Category) error {
	if strings.TrimSpace(cat.Name) == "" {
		return errors.New("name is required")
	}
	if cat.Slug == "" {
		cat.Slug = slugify(cat.Name)
	}
	return s.repo.UpdateCategory(ctx, cat)
}

func (s *Service) DeleteCategory(ctx context.Context, id string) error {
	return s.repo.DeleteCategory(ctx, id)
}

// --------------------------------------------------
// Admin: sauces
// --------------------------------------------------

func (s *Service) CreateSauce(ctx context.Context, sauce *Sauce) (*Sauce, error) {
	if strings.TrimSpace(sauce.Name) == "" {
		return nil, errors.New("name is required")
	}
	if sauce.Price < 0 {
		return nil, errors.New("price must not be negative")
	}

	sauce.ID = uuid.New().String()
	if err := s.repo.CreateSauce(ctx, sauce); err != nil {
		return nil, err
	}
	return sauce, nil
}

func (s *Service) UpdateSauce(ctx context.Context, sauce *Sauce) error {
	if strings.TrimSpace(sauce.Name) == "" {
		return errors.New("name is required")
	}
	if sauce.Price < 0 {
		return errors.New("price must not be negative")
	}
	return s.repo.UpdateSauce(ctx, sauce)
}

func (s *Service) DeleteSauce(ctx context.Context, id string) error {
	return s.repo.DeleteSauce(ctx, id)
}
