package theme

// Grid renders services, products and gallery as one continuous tile board.
func NewGrid() Theme {
	return newSectionTheme("grid", `<!DOCTYPE html>
<html lang="{{.Locale}}">
<head><meta charset="utf-8"><title>{{.Merchant.Name}}</title></head>
<body class="theme-grid" style="background:{{.Colors.Background}};color:{{.Colors.Text}};font-family:{{.Colors.FontFamily}}">
  {{template "hero" .}}
  <div class="tile-board">
    {{template "services" .}}
    {{template "products" .}}
    {{template "gallery" .}}
  </div>
  {{template "contact" .}}
</body>
</html>`)
}
