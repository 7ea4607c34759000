package theme

// Portfolio puts the gallery first; booking and retail follow the work.
func NewPortfolio() Theme {
	return newSectionTheme("portfolio", `<!DOCTYPE html>
<html lang="{{.Locale}}">
<head><meta charset="utf-8"><title>{{.Merchant.Name}}</title></head>
<body class="theme-portfolio" style="background:{{.Colors.Background}};color:{{.Colors.Text}};font-family:{{.Colors.FontFamily}}">
  {{template "hero" .}}
  {{template "gallery" .}}
  {{template "about" .}}
  <div class="booking">
    {{template "services" .}}
    {{template "products" .}}
  </div>
  {{template "social" .}}
  {{template "contact" .}}
</body>
</html>`)
}
