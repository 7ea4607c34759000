package theme

// Blossom is the soft full-feature theme: every section, with staff between
// retail and contact.
func NewBlossom() Theme {
	return newSectionTheme("blossom", `<!DOCTYPE html>
<html lang="{{.Locale}}">
<head><meta charset="utf-8"><title>{{.Merchant.Name}}</title></head>
<body class="theme-blossom" style="background:{{.Colors.Background}};color:{{.Colors.Text}};font-family:{{.Colors.FontFamily}}">
  {{template "hero" .}}
  <main class="petal" style="border-color:{{.Colors.Secondary}}">
    {{template "about" .}}
    {{template "services" .}}
    {{template "gallery" .}}
    {{template "products" .}}
    {{template "staff" .}}
  </main>
  {{template "contact" .}}
  {{template "social" .}}
</body>
</html>`)
}
