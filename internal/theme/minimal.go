package theme

// Minimal drops the hero entirely; a plain text header, then services,
// products and contact.
func NewMinimal() Theme {
	return newSectionTheme("minimal", `<!DOCTYPE html>
<html lang="{{.Locale}}">
<head><meta charset="utf-8"><title>{{.Merchant.Name}}</title></head>
<body class="theme-minimal" style="background:{{.Colors.Background}};color:{{.Colors.Text}};font-family:{{.Colors.FontFamily}}">
  <header class="plain">
    <h1>{{.Merchant.Name}}</h1>
    <a href="{{.CartPath}}">Cart ({{.CartCount}})</a>
  </header>
  {{template "about" .}}
  {{template "services" .}}
  {{template "products" .}}
  {{template "contact" .}}
</body>
</html>`)
}
