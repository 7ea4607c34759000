package theme

// Christmas is the seasonal skin: a festive banner above the classic flow.
func NewChristmas() Theme {
	return newSectionTheme("christmas", `<!DOCTYPE html>
<html lang="{{.Locale}}">
<head><meta charset="utf-8"><title>{{.Merchant.Name}}</title></head>
<body class="theme-christmas" style="background:{{.Colors.Background}};color:{{.Colors.Text}};font-family:{{.Colors.FontFamily}}">
  <div class="festive-banner" style="background:{{.Colors.Accent}}">Holiday hours — book your spot early 🎄</div>
  {{template "hero" .}}
  {{template "services" .}}
  <div class="gift-shop">
    {{template "products" .}}
  </div>
  {{template "gallery" .}}
  {{template "contact" .}}
</body>
</html>`)
}
