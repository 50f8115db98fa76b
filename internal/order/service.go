package order

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/kevin272/MomsCharcoalGrill-sub000/internal/cart"
	"github.com/kevin272/MomsCharcoalGrill-sub000/internal/catalog"

	"github.com/google/uuid"
)

var (
	ErrNameRequired  = errors.New("customer name is required")
	ErrPhoneRequired = errors.New("customer phone is required")
	ErrEmptyCart     = errors.New("cart is empty")
	ErrPaymentMode   = errors.New("invalid payment mode")
	ErrBadTransition = errors.New("invalid status transition")
)

// IsValidation reports whether err is a caller mistake rather than a
// server failure.
func IsValidation(err error) bool {
	return errors.Is(err, ErrNameRequired) ||
		errors.Is(err, ErrPhoneRequired) ||
		errors.Is(err, ErrEmptyCart) ||
		errors.Is(err, ErrPaymentMode)
}

// CatalogReader resolves current prices server-side at submission.
type CatalogReader interface {
	GetItem(ctx context.Context, id string) (*catalog.MenuItem, error)
}

// Settings supplies the configured delivery flat fee.
type Settings interface {
	DeliveryFee(ctx context.Context) float64
}

// Notifier sends the customer-facing confirmation. Failures must not
// fail the order.
type Notifier interface {
	OrderPlaced(ctx context.Context, o *Order) error
}

type Service struct {
	repo     Repository
	catalog  CatalogReader
	settings Settings
	notifier Notifier
}

func NewService(repo Repository, cat CatalogReader, settings Settings, notifier Notifier) *Service {
	return &Service{repo: repo, catalog: cat, settings: settings, notifier: notifier}
}

type SubmitRequest struct {
	Customer    Customer    `json:"customer"`
	Lines       []cart.Line `json:"lines"`
	PaymentMode PaymentMode `json:"payment_mode"`
	Notes       string      `json:"notes"`
}

// Submit validates the checkout, re-resolves catalog-backed line
// prices server-side, computes totals and persists the order with
// status new.
func (s *Service) Submit(ctx context.Context, req SubmitRequest) (*Order, error) {
	if req.Customer.Name == "" {
		return nil, ErrNameRequired
	}
	if req.Customer.Phone == "" {
		return nil, ErrPhoneRequired
	}
	if req.PaymentMode == "" {
		req.PaymentMode = PayCash
	}
	if !req.PaymentMode.Valid() {
		return nil, ErrPaymentMode
	}

	lines := make([]cart.Line, 0, len(req.Lines))
	for _, line := range req.Lines {
		if line.Quantity <= 0 {
			continue
		}
		lines = append(lines, line)
	}
	if len(lines) == 0 {
		return nil, ErrEmptyCart
	}

	resolved, err := s.resolveLines(ctx, lines)
	if err != nil {
		return nil, err
	}

	o := &Order{
		ID:          uuid.New().String(),
		Customer:    req.Customer,
		Lines:       resolved,
		PaymentMode: req.PaymentMode,
		Totals:      ComputeTotals(resolved, s.settings.DeliveryFee(ctx)),
		Status:      StatusNew,
		Notes:       req.Notes,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, o); err != nil {
		return nil, fmt.Errorf("could not save order: %w", err)
	}

	if s.notifier != nil {
		if err := s.notifier.OrderPlaced(ctx, o); err != nil {
			log.Printf("order %s: confirmation email failed: %v", o.ID, err)
		}
	}

	return o, nil
}

// resolveLines swaps in the current catalog price, name and image for
// any line that references a menu item. Client-submitted values are
// trusted only for ad hoc lines and for references the catalog no
// longer knows.
func (s *Service) resolveLines(ctx context.Context, lines []cart.Line) ([]cart.Line, error) {
	out := make([]cart.Line, len(lines))
	for i, line := range lines {
		if line.MenuItemID != "" {
			item, err := s.catalog.GetItem(ctx, line.MenuItemID)
			if err == nil {
				line.UnitPrice = item.Price
				line.Name = item.Name
				line.Image = item.Image
			} else if !errors.Is(err, catalog.ErrNotFound) {
				return nil, err
			}
		}
		out[i] = line
	}
	return out, nil
}

func (s *Service) Get(ctx context.Context, id string) (*Order, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]Order, error) {
	return s.repo.List(ctx)
}

// UpdateStatus enforces the status machine before persisting.
func (s *Service) UpdateStatus(ctx context.Context, id string, next Status) (*Order, error) {
	if !next.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", ErrBadTransition, next)
	}

	o, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !o.Status.CanTransitionTo(next) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrBadTransition, o.Status, next)
	}

	if err := s.repo.UpdateStatus(ctx, id, next); err != nil {
		return nil, err
	}

	o.Status = next
	return o, nil
}
