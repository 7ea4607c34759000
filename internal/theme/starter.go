package theme

// Starter is the minimal launch theme: hero, bookable services, retail
// products and a contact block, nothing else.
func NewStarter() Theme {
	return newSectionTheme("starter", `<!DOCTYPE html>
<html lang="{{.Locale}}">
<head><meta charset="utf-8"><title>{{.Merchant.Name}}</title></head>
<body class="theme-starter" style="background:{{.Colors.Background}};color:{{.Colors.Text}};font-family:{{.Colors.FontFamily}}">
  {{template "hero" .}}
  <main class="single-column">
    {{template "services" .}}
    {{template "products" .}}
  </main>
  {{template "contact" .}}
</body>
</html>`)
}
