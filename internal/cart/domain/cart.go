package domain

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// DeliveryCost is the flat surcharge added once per order.
const DeliveryCost float64 = 10

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrInvalidPrice = errors.New("invalid price")
)

type CartLine struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Qty   int     `json:"qty"`
}

// Cart maps product id to line. Lines iterate in insertion order.
type Cart struct {
	lines map[string]CartLine
	order []string
}

func NewCart() Cart {
	return Cart{lines: make(map[string]CartLine)}
}

func (c Cart) Len() int { return len(c.order) }

func (c Cart) IsEmpty() bool { return len(c.order) == 0 }

func (c Cart) Line(id string) (CartLine, bool) {
	line, ok := c.lines[id]
	return line, ok
}

func (c Cart) Lines() []CartLine {
	out := make([]CartLine, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.lines[id])
	}
	return out
}

func (c Cart) clone() Cart {
	out := Cart{
		lines: make(map[string]CartLine, len(c.lines)),
		order: make([]string, len(c.order)),
	}
	copy(out.order, c.order)
	for id, line := range c.lines {
		out.lines[id] = line
	}
	return out
}

func (c *Cart) put(line CartLine) {
	if c.lines == nil {
		c.lines = make(map[string]CartLine)
	}
	if _, ok := c.lines[line.ID]; !ok {
		c.order = append(c.order, line.ID)
	}
	c.lines[line.ID] = line
}

func (c *Cart) delete(id string) {
	if _, ok := c.lines[id]; !ok {
		return
	}
	delete(c.lines, id)
	for i, v := range c.order {
		if v == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
}

// AddItem inserts id with qty 1 or bumps an existing line by one. Name and
// price of an existing line keep their first-seen values.
func AddItem(c Cart, id, name string, price float64) (Cart, error) {
	if strings.TrimSpace(id) == "" {
		return c, ErrInvalidInput
	}
	if err := validatePrice(price); err != nil {
		return c, err
	}

	out := c.clone()
	line, ok := out.lines[id]
	if !ok {
		line = CartLine{ID: id, Name: name, Price: price}
	}
	line.Qty++
	out.put(line)
	return out, nil
}

// ChangeQty adds delta to the line's qty, deleting the line once qty drops
// to zero or below. Unknown ids leave the cart unchanged.
func ChangeQty(c Cart, id string, delta int) Cart {
	line, ok := c.lines[id]
	if !ok {
		return c
	}

	out := c.clone()
	line.Qty += delta
	if line.Qty <= 0 {
		out.delete(id)
		return out
	}
	out.put(line)
	return out
}

func RemoveItem(c Cart, id string) Cart {
	if _, ok := c.lines[id]; !ok {
		return c
	}
	out := c.clone()
	out.delete(id)
	return out
}

func TotalCount(c Cart) int {
	n := 0
	for _, line := range c.lines {
		n += line.Qty
	}
	return n
}

func LineTotal(line CartLine) float64 {
	return line.Price * float64(line.Qty)
}

func Subtotal(c Cart) float64 {
	var sum float64
	for _, line := range c.Lines() {
		sum += LineTotal(line)
	}
	return sum
}

func GrandTotal(c Cart) float64 {
	return Subtotal(c) + DeliveryCost
}

// ParsePrice converts a catalog price attribute into a unit price.
func ParsePrice(raw string) (float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, ErrInvalidPrice
	}
	p, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, ErrInvalidPrice
	}
	if err := validatePrice(p); err != nil {
		return 0, err
	}
	return p, nil
}

func validatePrice(p float64) error {
	if math.IsNaN(p) || math.IsInf(p, 0) || p < 0 {
		return ErrInvalidPrice
	}
	return nil
}
