package theme

import (
	"io"

	"github.com/nhutquangnguyen/beautipick-booking-sub001/internal/cart"
	"github.com/nhutquangnguyen/beautipick-booking-sub001/internal/catalog"
)

// Data is the read-only bundle a theme renders from. Themes never mutate it;
// anything stateful goes through the cart handler surface instead.
type Data struct {
	Merchant catalog.Merchant
	Services []catalog.Service
	Products []catalog.Product
	Staff    []catalog.StaffMember
	Gallery  []catalog.GalleryImage
	Social   catalog.SocialLinks
}

func DataFromBundle(b *catalog.StorefrontBundle) Data {
	return Data{
		Merchant: b.Merchant,
		Services: b.Services,
		Products: b.Products,
		Staff:    b.Staff,
		Gallery:  b.Gallery,
		Social:   b.Social,
	}
}

// Props is the full input contract for one render: immutable data and colors,
// the cart mutation/query surface, and request-scoped locale/currency.
// CartPath is where the rendered page submits cart actions (and where the
// cart drawer opens from).
type Props struct {
	Data     Data
	Colors   Colors
	Cart     *cart.Handlers
	Locale   string
	Currency string
	CartPath string
}

// Theme is one complete visual presentation strategy. Implementations are
// stateless: all per-render input arrives in Props.
type Theme interface {
	Name() string
	Render(w io.Writer, p Props) error
}
