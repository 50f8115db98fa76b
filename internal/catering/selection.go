package catering

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/kevin272/MomsCharcoalGrill-sub000/internal/catalog"
)

// Status describes how far a selection has progressed.
type Status string

const (
	StatusEmpty   Status = "empty"
	StatusPartial Status = "partial"
	StatusReady   Status = "ready"
)

var ErrEmptySelection = errors.New("pick at least one item")

// Selection holds in-progress quantity and extras choices for one
// catering option view. It is plain state: no I/O, no UI.
type Selection struct {
	Quantities map[string]int      `json:"quantities"`
	Extras     map[string][]string `json:"extras"`
}

func NewSelection() *Selection {
	return &Selection{
		Quantities: make(map[string]int),
		Extras:     make(map[string][]string),
	}
}

func (s *Selection) Increment(itemID string) {
	s.Quantities[itemID]++
}

// Decrement clamps at zero; going below is not an error.
func (s *Selection) Decrement(itemID string) {
	if s.Quantities[itemID] > 0 {
		s.Quantities[itemID]--
	}
	if s.Quantities[itemID] == 0 {
		delete(s.Quantities, itemID)
	}
}

func (s *Selection) SetQuantity(itemID string, qty int) {
	if qty <= 0 {
		delete(s.Quantities, itemID)
		return
	}
	s.Quantities[itemID] = qty
}

// ToggleExtra adds the extra if absent and removes it if present, so
// toggling twice restores the original set.
func (s *Selection) ToggleExtra(itemID, extra string) {
	current := s.Extras[itemID]
	for i, e := range current {
		if e == extra {
			s.Extras[itemID] = append(current[:i], current[i+1:]...)
			return
		}
	}
	s.Extras[itemID] = append(current, extra)
}

// SkipExtras records an explicit "no extras" choice so the prompt is
// not shown again.
func (s *Selection) SkipExtras(itemID string) {
	if _, ok := s.Extras[itemID]; !ok {
		s.Extras[itemID] = []string{}
	}
}

// HasExtrasChoice reports whether the buyer already answered the
// extras prompt for this item (including skipping it).
func (s *Selection) HasExtrasChoice(itemID string) bool {
	_, ok := s.Extras[itemID]
	return ok
}

func (s *Selection) TotalUnits() int {
	total := 0
	for _, qty := range s.Quantities {
		if qty > 0 {
			total += qty
		}
	}
	return total
}

// --------------------------------------------------
// Quota validation
// --------------------------------------------------

// CategoryCount reports progress against one category quota.
type CategoryCount struct {
	Bucket   string `json:"bucket"`
	Selected int    `json:"selected"`
	Required int    `json:"required"`
}

func (c CategoryCount) String() string {
	return fmt.Sprintf("%s: %d/%d", c.Bucket, c.Selected, c.Required)
}

// QuotaUnmetError names every under-quota category with its counts.
type QuotaUnmetError struct {
	Unmet []CategoryCount
}

func (e *QuotaUnmetError) Error() string {
	parts := make([]string, 0, len(e.Unmet))
	for _, c := range e.Unmet {
		parts = append(parts, c.String())
	}
	return "select required items first (" + strings.Join(parts, ", ") + ")"
}

// ValidationResult is the outcome of checking a selection against an
// option's rules.
type ValidationResult struct {
	Status Status          `json:"status"`
	Unmet  []CategoryCount `json:"unmet,omitempty"`
}

func (r ValidationResult) Ready() bool {
	return r.Status == StatusReady
}

// ClassifyItems buckets each menu item using its name, category name
// and image path.
func ClassifyItems(items []catalog.MenuItem, categoryNames map[string]string) map[string]string {
	out := make(map[string]string, len(items))
	for _, item := range items {
		out[item.ID] = Classify(item.Name, categoryNames[item.CategoryID], item.Image)
	}
	return out
}

// ValidateSelection checks quotas for quota-mode options, or "at least
// one unit" for everything else. Over-quota categories pass: only
// under-selection blocks.
func ValidateSelection(opt *Option, itemBuckets map[string]string, sel *Selection) ValidationResult {
	total := sel.TotalUnits()

	if !opt.SelectionRules.Enabled {
		if total == 0 {
			return ValidationResult{Status: StatusEmpty}
		}
		return ValidationResult{Status: StatusReady}
	}

	selected := make(map[string]int)
	for itemID, qty := range sel.Quantities {
		if qty <= 0 {
			continue
		}
		if b := itemBuckets[itemID]; b != "" {
			selected[b] += qty
		}
	}

	var unmet []CategoryCount
	for _, key := range quotaKeys(opt.SelectionRules.CategoryLimits) {
		limit := opt.SelectionRules.CategoryLimits[key]
		if limit <= 0 {
			continue
		}
		if selected[key] < limit {
			unmet = append(unmet, CategoryCount{
				Bucket:   key,
				Selected: selected[key],
				Required: limit,
			})
		}
	}

	switch {
	case len(unmet) == 0:
		return ValidationResult{Status: StatusReady}
	case total == 0:
		return ValidationResult{Status: StatusEmpty, Unmet: unmet}
	default:
		return ValidationResult{Status: StatusPartial, Unmet: unmet}
	}
}

// quotaKeys orders category keys by bucket priority so error messages
// are stable; unknown keys follow alphabetically.
func quotaKeys(limits map[string]int) []string {
	known := make(map[string]bool, len(buckets))
	keys := make([]string, 0, len(limits))

	for _, b := range buckets {
		if _, ok := limits[b.key]; ok {
			keys = append(keys, b.key)
			known[b.key] = true
		}
	}

	var rest []string
	for key := range limits {
		if !known[key] {
			rest = append(rest, key)
		}
	}
	sort.Strings(rest)

	return append(keys, rest...)
}
