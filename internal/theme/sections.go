package theme

import (
	"fmt"
	"html/template"
	"io"

	"github.com/nhutquangnguyen/beautipick-booking-sub001/internal/catalog"
)

// Every theme is composed from the same section templates; only the page
// layout (section order, wrapper markup) differs per theme. The section
// view model is built once per render from Props, and all cart affordances
// are derived through the cart query surface, never from theme-local state.

type serviceView struct {
	catalog.Service
	InCart   bool
	Price    string
	Duration string
}

type productView struct {
	catalog.Product
	Quantity int
	Price    string
}

type pageView struct {
	Merchant  catalog.Merchant
	Colors    Colors
	Services  []serviceView
	Products  []productView
	Staff     []catalog.StaffMember
	Gallery   []catalog.GalleryImage
	Social    catalog.SocialLinks
	Locale    string
	CartPath  string
	CartCount int
	CartTotal string
}

func buildPage(p Props) pageView {
	view := pageView{
		Merchant: p.Data.Merchant,
		Colors:   p.Colors,
		Staff:    p.Data.Staff,
		Gallery:  p.Data.Gallery,
		Social:   p.Data.Social,
		Locale:   p.Locale,
		CartPath: p.CartPath,
	}

	for _, svc := range p.Data.Services {
		view.Services = append(view.Services, serviceView{
			Service:  svc,
			InCart:   p.Cart.IsServiceInCart(svc.ID),
			Price:    formatMoney(p.Currency, svc.Price),
			Duration: fmt.Sprintf("%d min", svc.DurationMinutes),
		})
	}
	for _, prod := range p.Data.Products {
		view.Products = append(view.Products, productView{
			Product:  prod,
			Quantity: p.Cart.GetProductQuantityInCart(prod.ID),
			Price:    formatMoney(p.Currency, prod.Price),
		})
	}

	view.CartCount = len(p.Cart.Cart())
	view.CartTotal = formatMoney(p.Currency, p.Cart.Total())
	return view
}

func formatMoney(currency string, v float64) string {
	switch currency {
	case "USD":
		return fmt.Sprintf("$%.2f", v)
	case "EUR":
		return fmt.Sprintf("€%.2f", v)
	case "GBP":
		return fmt.Sprintf("£%.2f", v)
	case "VND":
		return fmt.Sprintf("%.0f₫", v)
	default:
		return fmt.Sprintf("%.2f %s", v, currency)
	}
}

// sectionDefs holds the shared section templates. Layouts include them with
// {{template "services" .}} etc. in whatever order the theme wants.
const sectionDefs = `
{{define "hero"}}
<header class="hero" style="background:{{.Colors.Primary}};color:{{.Colors.Background}}">
  <h1>{{.Merchant.Name}}</h1>
  {{with .Merchant.Address}}<p class="address">{{.}}</p>{{end}}
  <a class="cart-toggle {{.Colors.ButtonClass}} {{.Colors.RadiusClass}}" href="{{.CartPath}}">Cart ({{.CartCount}}) · {{.CartTotal}}</a>
</header>
{{end}}

{{define "about"}}
{{with .Merchant.About}}
<section class="about">
  <h2>About</h2>
  <p>{{.}}</p>
</section>
{{end}}
{{end}}

{{define "services"}}
{{if .Services}}
<section class="services">
  <h2>Services</h2>
  <ul>
  {{range .Services}}
    <li class="service-card {{$.Colors.RadiusClass}}">
      {{with .ImageURL}}<img src="{{.}}" alt="{{$.Merchant.Name}}">{{end}}
      <h3>{{.Name}}</h3>
      <p class="meta">{{.Duration}} · {{.Price}}</p>
      {{if .InCart}}
      <form method="post" action="{{$.CartPath}}/items/{{.ID}}/remove">
        <button class="{{$.Colors.ButtonClass}} {{$.Colors.RadiusClass}} in-cart">Booked · Remove</button>
      </form>
      {{else}}
      <form method="post" action="{{$.CartPath}}/services/{{.ID}}">
        <button class="{{$.Colors.ButtonClass}} {{$.Colors.RadiusClass}}">Book</button>
      </form>
      {{end}}
    </li>
  {{end}}
  </ul>
</section>
{{end}}
{{end}}

{{define "products"}}
{{if .Products}}
<section class="products">
  <h2>Products</h2>
  <ul>
  {{range .Products}}
    <li class="product-card {{$.Colors.RadiusClass}}">
      {{with .ImageURL}}<img src="{{.}}" alt="{{$.Merchant.Name}}">{{end}}
      <h3>{{.Name}}</h3>
      <p class="meta">{{.Price}}</p>
      {{if gt .Quantity 0}}
      <form method="post" action="{{$.CartPath}}/products/{{.ID}}/quantity" class="qty">
        <input type="number" name="quantity" min="0" value="{{.Quantity}}">
        <button class="{{$.Colors.ButtonClass}} {{$.Colors.RadiusClass}}">Update</button>
      </form>
      {{else}}
      <form method="post" action="{{$.CartPath}}/products/{{.ID}}">
        <button class="{{$.Colors.ButtonClass}} {{$.Colors.RadiusClass}}">Add to cart</button>
      </form>
      {{end}}
    </li>
  {{end}}
  </ul>
</section>
{{end}}
{{end}}

{{define "staff"}}
{{if .Staff}}
<section class="staff">
  <h2>Our team</h2>
  <ul>
  {{range .Staff}}
    <li>{{with .ImageURL}}<img src="{{.}}" alt="">{{end}}<span>{{.Name}}</span>{{with .Role}}<em>{{.}}</em>{{end}}</li>
  {{end}}
  </ul>
</section>
{{end}}
{{end}}

{{define "gallery"}}
{{if .Gallery}}
<section class="gallery">
  <h2>Gallery</h2>
  {{range .Gallery}}<img src="{{.URL}}" alt="{{.Alt}}" class="{{$.Colors.RadiusClass}}">{{end}}
</section>
{{end}}
{{end}}

{{define "contact"}}
<section class="contact">
  <h2>Contact</h2>
  {{with .Merchant.Phone}}<p>{{.}}</p>{{end}}
  {{with .Merchant.Email}}<p>{{.}}</p>{{end}}
  {{with .Merchant.Address}}<p>{{.}}</p>{{end}}
</section>
{{end}}

{{define "social"}}
<footer class="social">
  {{with .Social.Instagram}}<a href="{{.}}">Instagram</a>{{end}}
  {{with .Social.Facebook}}<a href="{{.}}">Facebook</a>{{end}}
  {{with .Social.TikTok}}<a href="{{.}}">TikTok</a>{{end}}
  {{with .Social.Website}}<a href="{{.}}">Website</a>{{end}}
</footer>
{{end}}
`

// sectionTheme is the shared strategy implementation: a named page layout
// parsed together with the section definitions.
type sectionTheme struct {
	name string
	tmpl *template.Template
}

func newSectionTheme(name, layout string) Theme {
	tmpl := template.Must(template.New(name).Parse(sectionDefs + `{{define "page"}}` + layout + `{{end}}`))
	return &sectionTheme{name: name, tmpl: tmpl}
}

func (t *sectionTheme) Name() string { return t.name }

func (t *sectionTheme) Render(w io.Writer, p Props) error {
	if err := t.tmpl.ExecuteTemplate(w, "page", buildPage(p)); err != nil {
		return fmt.Errorf("render theme %s: %w", t.name, err)
	}
	return nil
}
