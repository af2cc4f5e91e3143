package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// MarshalJSON writes the cart as an object keyed by product id, keeping
// insertion order.
func (c Cart) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, id := range c.order {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(id)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(c.lines[id])
		if err != nil {
			return nil, fmt.Errorf("cart line %q: %w", id, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads the persisted layout. Lines that would break the cart
// invariants are dropped, and every line's id is forced to its key.
func (c *Cart) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	out := NewCart()
	if tok == nil {
		*c = out
		return nil
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("cart: expected object, got %v", tok)
	}

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("cart: unexpected key %v", tok)
		}

		var line CartLine
		if err := dec.Decode(&line); err != nil {
			return fmt.Errorf("cart line %q: %w", key, err)
		}
		if line.Qty <= 0 || validatePrice(line.Price) != nil {
			continue
		}
		line.ID = key
		out.put(line)
	}
	if _, err := dec.Token(); err != nil {
		return err
	}

	*c = out
	return nil
}
