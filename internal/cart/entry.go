package cart

import (
	"fmt"

	"github.com/nhutquangnguyen/beautipick-booking-sub001/internal/catalog"
)

// EntryType discriminates the two cart entry variants.
type EntryType string

const (
	EntryService EntryType = "service"
	EntryProduct EntryType = "product"
)

// Entry is one line in the cart. Exactly one of Service/Product is set,
// matching Type. A service line always has Quantity 1; a product line has
// Quantity >= 1.
type Entry struct {
	Type     EntryType        `json:"type"`
	ID       string           `json:"id"`
	Service  *catalog.Service `json:"service,omitempty"`
	Product  *catalog.Product `json:"product,omitempty"`
	Quantity int              `json:"quantity"`
}

// UnitPrice returns the price of the referenced catalog item.
func (e Entry) UnitPrice() float64 {
	switch e.Type {
	case EntryService:
		if e.Service != nil {
			return e.Service.Price
		}
	case EntryProduct:
		if e.Product != nil {
			return e.Product.Price
		}
	}
	return 0
}

// Validate checks the structural invariants of a single entry. It is used on
// the hydration path, where persisted data is untrusted.
func (e Entry) Validate() error {
	if e.ID == "" {
		return fmt.Errorf("entry has empty id")
	}
	switch e.Type {
	case EntryService:
		if e.Service == nil {
			return fmt.Errorf("service entry %s missing service ref", e.ID)
		}
	case EntryProduct:
		if e.Product == nil {
			return fmt.Errorf("product entry %s missing product ref", e.ID)
		}
		if e.Quantity < 1 {
			return fmt.Errorf("product entry %s has quantity %d", e.ID, e.Quantity)
		}
	default:
		return fmt.Errorf("unknown entry type %q", e.Type)
	}
	return nil
}
