package cart

// Line is one cart entry. UnitPrice and Quantity are the only inputs
// to the order subtotal: the cart never carries hidden discount state.
type Line struct {
	Key        string  `json:"key"`
	Name       string  `json:"name"`
	UnitPrice  float64 `json:"unit_price"`
	Quantity   int     `json:"quantity"`
	Image      string  `json:"image,omitempty"`
	Extra      string  `json:"extra,omitempty"`
	MenuItemID string  `json:"menu_item_id,omitempty"`
}

// Cart is an ordered collection keyed by composite line key.
// Insertion order is preserved; same-key additions merge quantities.
type Cart struct {
	lines []*Line
	index map[string]*Line
}

func New() *Cart {
	return &Cart{index: make(map[string]*Line)}
}

// Add merges into an existing line with the same key, otherwise
// appends. A zero quantity counts as one unit.
func (c *Cart) Add(line Line) {
	if line.Quantity <= 0 {
		line.Quantity = 1
	}

	if existing, ok := c.index[line.Key]; ok {
		existing.Quantity += line.Quantity
		return
	}

	cp := line
	c.lines = append(c.lines, &cp)
	c.index[line.Key] = &cp
}

// SetQuantity replaces the stored quantity. Zero or less removes the
// line entirely.
func (c *Cart) SetQuantity(key string, qty int) {
	if qty <= 0 {
		c.Remove(key)
		return
	}
	if line, ok := c.index[key]; ok {
		line.Quantity = qty
	}
}

func (c *Cart) Remove(key string) {
	if _, ok := c.index[key]; !ok {
		return
	}
	delete(c.index, key)

	for i, line := range c.lines {
		if line.Key == key {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

func (c *Cart) Clear() {
	c.lines = nil
	c.index = make(map[string]*Line)
}

// Lines returns a snapshot in insertion order.
func (c *Cart) Lines() []Line {
	out := make([]Line, 0, len(c.lines))
	for _, line := range c.lines {
		out = append(out, *line)
	}
	return out
}

func (c *Cart) Len() int {
	return len(c.lines)
}

// Subtotal is always recomputed from unit price times quantity.
func (c *Cart) Subtotal() float64 {
	total := 0.0
	for _, line := range c.lines {
		total += line.UnitPrice * float64(line.Quantity)
	}
	return total
}
