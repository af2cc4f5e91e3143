package domain

import "time"

// Money holds an amount in minor units (cents).
type Money struct {
	Currency string `json:"currency"`
	Amount   int64  `json:"amount"`
}

// Major returns the amount in major units, the form the cart works with.
func (m Money) Major() float64 {
	return float64(m.Amount) / 100
}

type Product struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Price       Money     `json:"price"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
