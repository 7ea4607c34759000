package theme

// Modern uses a split layout: booking on the left rail, retail and gallery
// on the right.
func NewModern() Theme {
	return newSectionTheme("modern", `<!DOCTYPE html>
<html lang="{{.Locale}}">
<head><meta charset="utf-8"><title>{{.Merchant.Name}}</title></head>
<body class="theme-modern" style="background:{{.Colors.Background}};color:{{.Colors.Text}};font-family:{{.Colors.FontFamily}}">
  {{template "hero" .}}
  <div class="split">
    <aside class="rail">
      {{template "services" .}}
      {{template "staff" .}}
    </aside>
    <main>
      {{template "products" .}}
      {{template "gallery" .}}
    </main>
  </div>
  {{template "social" .}}
  {{template "contact" .}}
</body>
</html>`)
}
