package todo

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoSuchItem is returned when an ID or index does not address an item.
// The list returned alongside it is the input, unchanged.
var ErrNoSuchItem = errors.New("no such item")

// List is the ordered sequence of items. Operations never modify their
// receiver; they return a fresh List.
type List []Item

// Defaults is the seed used when nothing has been saved yet.
func Defaults() List {
	return List{
		NewItem("list 1"),
		NewItem("list 2"),
		NewItem("list 3"),
	}
}

func (l List) clone() List {
	out := make(List, len(l))
	copy(out, l)
	return out
}

// Index returns the position of the item with id, or -1.
func (l List) Index(id string) int {
	for i, it := range l {
		if it.ID == id {
			return i
		}
	}
	return -1
}

// At returns the item at display position i.
func (l List) At(i int) (Item, bool) {
	if i < 0 || i >= len(l) {
		return Item{}, false
	}
	return l[i], true
}

// IDAt returns the ID of the item at display position i.
func (l List) IDAt(i int) (string, error) {
	it, ok := l.At(i)
	if !ok {
		return "", fmt.Errorf("index %d of %d: %w", i, len(l), ErrNoSuchItem)
	}
	return it.ID, nil
}

// Stats counts done and pending items.
func (l List) Stats() (done, pending int) {
	for _, it := range l {
		if it.Done {
			done++
		} else {
			pending++
		}
	}
	return
}

// Add appends a pending item holding the trimmed text. Blank text is a
// no-op and returns l itself.
func Add(l List, raw string) List {
	text := strings.TrimSpace(raw)
	if text == "" {
		return l
	}
	out := make(List, len(l), len(l)+1)
	copy(out, l)
	return append(out, NewItem(text))
}

// Toggle flips Done on the item with id.
func Toggle(l List, id string) (List, error) {
	i := l.Index(id)
	if i < 0 {
		return l, fmt.Errorf("toggle %q: %w", id, ErrNoSuchItem)
	}
	out := l.clone()
	out[i].Done = !out[i].Done
	return out, nil
}

// Remove drops the item with id, keeping the relative order of the rest.
func Remove(l List, id string) (List, error) {
	i := l.Index(id)
	if i < 0 {
		return l, fmt.Errorf("remove %q: %w", id, ErrNoSuchItem)
	}
	out := make(List, 0, len(l)-1)
	out = append(out, l[:i]...)
	return append(out, l[i+1:]...), nil
}

// ToggleAt is Toggle addressed by display position.
func ToggleAt(l List, i int) (List, error) {
	id, err := l.IDAt(i)
	if err != nil {
		return l, err
	}
	return Toggle(l, id)
}

// RemoveAt is Remove addressed by display position.
func RemoveAt(l List, i int) (List, error) {
	id, err := l.IDAt(i)
	if err != nil {
		return l, err
	}
	return Remove(l, id)
}

// Equal reports whether both lists hold the same items in the same order.
func Equal(a, b List) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
