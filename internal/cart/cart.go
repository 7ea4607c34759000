package cart

import "github.com/nhutquangnguyen/beautipick-booking-sub001/internal/catalog"

// Cart is an ordered sequence of entries, unique by (type, id). It is an
// immutable value: every mutation returns a new Cart and leaves the receiver
// untouched, so consumers always see whole-state replacement.
type Cart struct {
	entries []Entry
}

// FromEntries builds a cart from untrusted entries, dropping duplicates by
// (type, id) and clamping service quantities to 1. Entries that fail
// validation are rejected by the snapshot decoder before this runs.
func FromEntries(entries []Entry) Cart {
	c := Cart{}
	for _, e := range entries {
		if c.indexOf(e.Type, e.ID) >= 0 {
			continue
		}
		if e.Type == EntryService {
			e.Quantity = 1
		}
		c.entries = append(c.entries, e)
	}
	return c
}

// Entries returns a copy of the entry sequence.
func (c Cart) Entries() []Entry {
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

func (c Cart) Len() int      { return len(c.entries) }
func (c Cart) IsEmpty() bool { return len(c.entries) == 0 }

// Total is the sum of unit price times quantity over all entries.
func (c Cart) Total() float64 {
	total := 0.0
	for _, e := range c.entries {
		total += e.UnitPrice() * float64(e.Quantity)
	}
	return total
}

func (c Cart) indexOf(t EntryType, id string) int {
	for i, e := range c.entries {
		if e.Type == t && e.ID == id {
			return i
		}
	}
	return -1
}

func (c Cart) HasService(id string) bool { return c.indexOf(EntryService, id) >= 0 }
func (c Cart) HasProduct(id string) bool { return c.indexOf(EntryProduct, id) >= 0 }

// ProductQuantity returns the quantity of the product line, or 0 if absent.
func (c Cart) ProductQuantity(id string) int {
	if i := c.indexOf(EntryProduct, id); i >= 0 {
		return c.entries[i].Quantity
	}
	return 0
}

// AddService appends a service line with quantity 1. Adding a service that is
// already in the cart is a no-op: service presence is binary.
func (c Cart) AddService(svc catalog.Service) Cart {
	if c.HasService(svc.ID) {
		return c
	}
	next := c.clone()
	next.entries = append(next.entries, Entry{
		Type:     EntryService,
		ID:       svc.ID,
		Service:  &svc,
		Quantity: 1,
	})
	return next
}

// AddProduct increments the quantity of an existing product line by 1, or
// appends a new line with quantity 1.
func (c Cart) AddProduct(p catalog.Product) Cart {
	next := c.clone()
	if i := next.indexOf(EntryProduct, p.ID); i >= 0 {
		next.entries[i].Quantity++
		return next
	}
	next.entries = append(next.entries, Entry{
		Type:     EntryProduct,
		ID:       p.ID,
		Product:  &p,
		Quantity: 1,
	})
	return next
}

// SetProductQuantity sets the product line's quantity to qty exactly.
// A non-positive qty removes the line; a quantity of zero or below is never
// representable. Setting the quantity of an absent product is a no-op.
func (c Cart) SetProductQuantity(id string, qty int) Cart {
	i := c.indexOf(EntryProduct, id)
	if i < 0 {
		return c
	}
	next := c.clone()
	if qty <= 0 {
		next.entries = append(next.entries[:i], next.entries[i+1:]...)
		return next
	}
	next.entries[i].Quantity = qty
	return next
}

// Remove drops the entry matching id regardless of type. No-op if absent.
func (c Cart) Remove(id string) Cart {
	for i, e := range c.entries {
		if e.ID == id {
			next := c.clone()
			next.entries = append(next.entries[:i], next.entries[i+1:]...)
			return next
		}
	}
	return c
}

// Clear returns an empty cart.
func (c Cart) Clear() Cart {
	return Cart{}
}

func (c Cart) clone() Cart {
	cp := make([]Entry, len(c.entries))
	copy(cp, c.entries)
	return Cart{entries: cp}
}
