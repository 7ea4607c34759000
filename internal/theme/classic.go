package theme

// Classic is the default theme and the registry fallback: every section in
// conventional order under a centered column.
func NewClassic() Theme {
	return newSectionTheme("classic", `<!DOCTYPE html>
<html lang="{{.Locale}}">
<head><meta charset="utf-8"><title>{{.Merchant.Name}}</title></head>
<body class="theme-classic" style="background:{{.Colors.Background}};color:{{.Colors.Text}};font-family:{{.Colors.FontFamily}}">
  <div class="page-column">
    {{template "hero" .}}
    {{template "about" .}}
    {{template "services" .}}
    {{template "products" .}}
    {{template "gallery" .}}
    {{template "contact" .}}
    {{template "social" .}}
  </div>
</body>
</html>`)
}
