package catalog

import "time"

// MenuItem is a single orderable product on the public menu.
// Catering options reference menu items by ID but never own them.
type MenuItem struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	CategoryID  string    `json:"category_id"`
	Image       string    `json:"image"`
	IsAvailable bool      `json:"is_available"`
	CreatedAt   time.Time `json:"created_at"`
}

type Category struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Slug      string `json:"slug"`
	SortOrder int    `json:"sort_order"`
}

// Sauce is a standalone add-on sold next to regular items.
type Sauce struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
	IsAvailable bool    `json:"is_available"`
}

// CategoryMenu is the public menu payload: a category with its items.
type CategoryMenu struct {
	Category Category   `json:"category"`
	Items    []MenuItem `json:"items"`
}
