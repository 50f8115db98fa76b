package catering

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"github.com/kevin272/MomsCharcoalGrill-sub000/internal/catalog"

	"github.com/google/uuid"
)

// Catalog is the slice of the catalog the catering flow needs.
type Catalog interface {
	GetItem(ctx context.Context, id string) (*catalog.MenuItem, error)
	GetCategory(ctx context.Context, id string) (*catalog.Category, error)
}

type Service struct {
	repo    Repository
	catalog Catalog
}

func NewService(repo Repository, cat Catalog) *Service {
	return &Service{repo: repo, catalog: cat}
}

var slugCleaner = regexp.MustCompile(`[^a-z0-9]+`)

func slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = slugCleaner.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// --------------------------------------------------
// Public
// --------------------------------------------------

func (s *Service) ListActive(ctx context.Context) ([]Option, error) {
	opts, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	out := opts[:0]
	for _, opt := range opts {
		if opt.IsActive {
			out = append(out, opt)
		}
	}
	return out, nil
}

// Detail resolves the option's configured menu items and classifies
// them for quota display. Configurations pointing at deleted items are
// skipped rather than failing the page.
func (s *Service) Detail(ctx context.Context, slug string) (*OptionDetail, error) {
	opt, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	items, categoryNames, err := s.resolveItems(ctx, opt)
	if err != nil {
		return nil, err
	}

	return &OptionDetail{
		Option:  opt,
		Items:   items,
		Buckets: ClassifyItems(items, categoryNames),
	}, nil
}

// ValidateSelection answers whether the given selection may be added
// to the cart for the option identified by slug.
func (s *Service) ValidateSelection(ctx context.Context, slug string, sel *Selection) (ValidationResult, error) {
	opt, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		return ValidationResult{}, err
	}

	items, categoryNames, err := s.resolveItems(ctx, opt)
	if err != nil {
		return ValidationResult{}, err
	}

	result := ValidateSelection(opt, ClassifyItems(items, categoryNames), sel)

	if result.Ready() {
		return result, nil
	}
	if !opt.SelectionRules.Enabled {
		return result, ErrEmptySelection
	}
	return result, &QuotaUnmetError{Unmet: result.Unmet}
}

func (s *Service) resolveItems(ctx context.Context, opt *Option) ([]catalog.MenuItem, map[string]string, error) {
	items := make([]catalog.MenuItem, 0, len(opt.ItemConfigurations))
	categoryNames := make(map[string]string)

	for _, cfg := range opt.ItemConfigurations {
		item, err := s.catalog.GetItem(ctx, cfg.MenuItemID)
		if err != nil {
			if errors.Is(err, catalog.ErrNotFound) {
				continue
			}
			return nil, nil, err
		}
		items = append(items, *item)

		if item.CategoryID == "" {
			continue
		}
		if _, ok := categoryNames[item.CategoryID]; ok {
			continue
		}
		cat, err := s.catalog.GetCategory(ctx, item.CategoryID)
		if err != nil {
			if errors.Is(err, catalog.ErrNotFound) {
				continue
			}
			return nil, nil, err
		}
		categoryNames[item.CategoryID] = cat.Name
	}

	return items, categoryNames, nil
}

// --------------------------------------------------
// Admin CRUD
// --------------------------------------------------

func (s *Service) List(ctx context.Context) ([]Option, error) {
	return s.repo.List(ctx)
}

func (s *Service) GetBySlug(ctx context.Context, slug string) (*Option, error) {
	return s.repo.GetBySlug(ctx, slug)
}

func (s *Service) Create(ctx context.Context, opt *Option) (*Option, error) {
	if err := normalize(opt); err != nil {
		return nil, err
	}

	opt.ID = uuid.New().String()
	if err := s.repo.Create(ctx, opt); err != nil {
		return nil, err
	}
	return opt, nil
}

func (s *Service) Update(ctx context.Context, opt *Option) error {
	if err := normalize(opt); err != nil {
		return err
	}
	return s.repo.Update(ctx, opt)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func normalize(opt *Option) error {
	if strings.TrimSpace(opt.Title) == "" {
		return errors.New("title is required")
	}
	if opt.Slug == "" {
		opt.Slug = slugify(opt.Title)
	}
	if !opt.PriceType.Valid() {
		return errors.New("price_type must be per-person, per-tray or fixed")
	}
	if opt.Price < 0 {
		return errors.New("price must not be negative")
	}
	if opt.MinPeople < 0 {
		return errors.New("min_people must not be negative")
	}
	for _, cfg := range opt.ItemConfigurations {
		if cfg.MenuItemID == "" {
			return errors.New("every item configuration needs a menu_item_id")
		}
	}
	if opt.SelectionRules.Enabled {
		for key, limit := range opt.SelectionRules.CategoryLimits {
			if limit < 0 {
				return errors.New("category quota must not be negative: " + key)
			}
		}
	}

	// keep the legacy id list in lockstep with the configurations
	opt.SyncItems()
	return nil
}
