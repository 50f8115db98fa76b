package content

import "time"

// Banner is a promotional strip shown on the storefront.
type Banner struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Image     string `json:"image"`
	Link      string `json:"link"`
	IsActive  bool   `json:"is_active"`
	SortOrder int    `json:"sort_order"`
}

// Notice is a dated announcement (holiday hours, closures).
type Notice struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// Slide is one frame of the homepage carousel.
type Slide struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Subtitle  string `json:"subtitle"`
	Image     string `json:"image"`
	IsActive  bool   `json:"is_active"`
	SortOrder int    `json:"sort_order"`
}
