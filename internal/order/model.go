package order

import (
	"time"

	"github.com/kevin272/MomsCharcoalGrill-sub000/internal/cart"
)

type Status string

const (
	StatusNew       Status = "new"
	StatusPaid      Status = "paid"
	StatusPreparing Status = "preparing"
	StatusDelivered Status = "delivered"
	StatusCancelled Status = "cancelled"
)

// transitions is the full status machine; delivered and cancelled are
// terminal.
var transitions = map[Status][]Status{
	StatusNew:       {StatusPaid, StatusPreparing, StatusCancelled},
	StatusPaid:      {StatusPreparing, StatusDelivered, StatusCancelled},
	StatusPreparing: {StatusDelivered, StatusCancelled},
}

func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

func (s Status) Valid() bool {
	switch s {
	case StatusNew, StatusPaid, StatusPreparing, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

type PaymentMode string

const (
	PayCash   PaymentMode = "cash"
	PayCard   PaymentMode = "card"
	PayOnline PaymentMode = "online"
)

func (p PaymentMode) Valid() bool {
	switch p {
	case PayCash, PayCard, PayOnline:
		return true
	}
	return false
}

type Customer struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email,omitempty"`
	Address string `json:"address,omitempty"`
}

// Order is an immutable snapshot of a checkout: customer, cart lines
// and totals as computed at submission. Only the status ever changes.
type Order struct {
	ID          string      `json:"id"`
	Customer    Customer    `json:"customer"`
	Lines       []cart.Line `json:"lines"`
	PaymentMode PaymentMode `json:"payment_mode"`
	Totals      Totals      `json:"totals"`
	Status      Status      `json:"status"`
	Notes       string      `json:"notes,omitempty"`
	CreatedAt   time.Time   `json:"created_at"`
}
