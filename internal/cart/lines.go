package cart

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/Tyyuu55/Crave-Now/internal/domain"
)

// Lines maps item id to cart line, remembering the order lines were first
// added. Values are never modified in place: put and remove return copies.
type Lines struct {
	ids  []domain.ID
	byID map[domain.ID]domain.CartLine
}

func (l Lines) Len() int {
	return len(l.ids)
}

func (l Lines) Get(id domain.ID) (domain.CartLine, bool) {
	line, ok := l.byID[id]
	return line, ok
}

// Slice returns the lines in insertion order.
func (l Lines) Slice() []domain.CartLine {
	out := make([]domain.CartLine, 0, len(l.ids))
	for _, id := range l.ids {
		out = append(out, l.byID[id])
	}
	return out
}

// First is the earliest-added line still in the cart.
func (l Lines) First() (domain.CartLine, bool) {
	if len(l.ids) == 0 {
		return domain.CartLine{}, false
	}
	return l.byID[l.ids[0]], true
}

func (l Lines) put(line domain.CartLine) Lines {
	_, exists := l.byID[line.ItemID]

	next := Lines{
		ids:  make([]domain.ID, 0, len(l.ids)+1),
		byID: make(map[domain.ID]domain.CartLine, len(l.byID)+1),
	}
	next.ids = append(next.ids, l.ids...)
	if !exists {
		next.ids = append(next.ids, line.ItemID)
	}
	for id, existing := range l.byID {
		next.byID[id] = existing
	}
	next.byID[line.ItemID] = line
	return next
}

func (l Lines) remove(id domain.ID) Lines {
	if _, ok := l.byID[id]; !ok {
		return l
	}

	next := Lines{
		ids:  make([]domain.ID, 0, len(l.ids)),
		byID: make(map[domain.ID]domain.CartLine, len(l.byID)),
	}
	for _, existing := range l.ids {
		if existing != id {
			next.ids = append(next.ids, existing)
			next.byID[existing] = l.byID[existing]
		}
	}
	return next
}

// MarshalJSON writes a JSON object keyed by item id, in insertion order.
func (l Lines) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, id := range l.ids {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(string(id))
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(l.byID[id])
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads a JSON object keyed by item id, keeping document order.
// Lines with a non-positive quantity are dropped.
func (l *Lines) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("decode cart lines: %w", err)
	}
	if tok == nil {
		*l = Lines{}
		return nil
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("decode cart lines: expected object, got %v", tok)
	}

	next := Lines{byID: make(map[domain.ID]domain.CartLine)}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("decode cart lines: %w", err)
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("decode cart lines: unexpected key %v", tok)
		}

		var line domain.CartLine
		if err := dec.Decode(&line); err != nil {
			return fmt.Errorf("decode cart line %q: %w", key, err)
		}
		if line.Quantity < 1 {
			continue
		}
		id := domain.ID(key)
		line.ItemID = id
		if _, dup := next.byID[id]; !dup {
			next.ids = append(next.ids, id)
		}
		next.byID[id] = line
	}

	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("decode cart lines: %w", err)
	}

	*l = next
	return nil
}
