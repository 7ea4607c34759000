package theme

// Luxury leads with the team and an editorial about block before the
// service list; an accent band separates retail from booking.
func NewLuxury() Theme {
	return newSectionTheme("luxury", `<!DOCTYPE html>
<html lang="{{.Locale}}">
<head><meta charset="utf-8"><title>{{.Merchant.Name}}</title></head>
<body class="theme-luxury" style="background:{{.Colors.Background}};color:{{.Colors.Text}};font-family:{{.Colors.FontFamily}}">
  {{template "hero" .}}
  <div class="editorial" style="border-color:{{.Colors.Accent}}">
    {{template "about" .}}
    {{template "staff" .}}
  </div>
  {{template "services" .}}
  {{template "gallery" .}}
  <div class="retail-band" style="background:{{.Colors.Secondary}}">
    {{template "products" .}}
  </div>
  {{template "contact" .}}
  {{template "social" .}}
</body>
</html>`)
}
