package catering

import (
	"time"

	"github.com/kevin272/MomsCharcoalGrill-sub000/internal/catalog"
)

type PriceType string

const (
	PricePerPerson PriceType = "per-person"
	PricePerTray   PriceType = "per-tray"
	PriceFixed     PriceType = "fixed"
)

func (p PriceType) Valid() bool {
	switch p {
	case PricePerPerson, PricePerTray, PriceFixed:
		return true
	}
	return false
}

// ItemConfig ties a menu item into a catering package.
type ItemConfig struct {
	MenuItemID       string   `json:"menu_item_id"`
	ExtraOptions     []string `json:"extra_options,omitempty"`
	UseMenuItemPrice bool     `json:"use_menu_item_price"`
}

// SelectionRules turn an option into a quota-based "general" package:
// the buyer must fill every category quota before checkout.
type SelectionRules struct {
	Enabled        bool           `json:"enabled"`
	CategoryLimits map[string]int `json:"category_limits,omitempty"`
}

type Option struct {
	ID                 string         `json:"id"`
	Title              string         `json:"title"`
	Slug               string         `json:"slug"`
	Description        string         `json:"description"`
	PriceType          PriceType      `json:"price_type"`
	Price              float64        `json:"price"`
	MinPeople          int            `json:"min_people"`
	ItemConfigurations []ItemConfig   `json:"item_configurations"`
	// Items mirrors ItemConfigurations[].MenuItemID for older clients.
	Items          []string       `json:"items"`
	SelectionRules SelectionRules `json:"selection_rules"`
	IsActive       bool           `json:"is_active"`
	SortOrder      int            `json:"sort_order"`
	CreatedAt      time.Time      `json:"created_at"`
}

// SyncItems rebuilds the legacy id list from the item configurations.
func (o *Option) SyncItems() {
	o.Items = make([]string, 0, len(o.ItemConfigurations))
	for _, cfg := range o.ItemConfigurations {
		o.Items = append(o.Items, cfg.MenuItemID)
	}
}

// OptionDetail is the populated payload for the option page: the option
// plus the resolved menu items and their classification buckets.
type OptionDetail struct {
	Option  *Option            `json:"option"`
	Items   []catalog.MenuItem `json:"items"`
	Buckets map[string]string  `json:"buckets"`
}
