package theme

import "log"

// FallbackTemplateID is the template every unknown identifier resolves to.
const FallbackTemplateID = "classic"

// Registry maps template identifiers to theme implementations. The table is
// built once at startup and never mutated; Resolve always returns a usable
// theme, falling back to classic for unknown identifiers.
type Registry struct {
	themes   map[string]Theme
	fallback Theme
	logger   *log.Logger
}

func NewRegistry(logger *log.Logger) *Registry {
	classic := NewClassic()

	themes := map[string]Theme{
		"starter":   NewStarter(),
		"luxury":    NewLuxury(),
		"modern":    NewModern(),
		"classic":   classic,
		"minimal":   NewMinimal(),
		"portfolio": NewPortfolio(),
		"christmas": NewChristmas(),
		"blossom":   NewBlossom(),
		"grid":      NewGrid(),
	}

	return &Registry{themes: themes, fallback: classic, logger: logger}
}

// Resolve looks up templateID, falling back to the classic theme for any
// unknown identifier. The fallback is logged for operators; the visitor just
// gets a working page.
func (r *Registry) Resolve(templateID string) Theme {
	if t, ok := r.themes[templateID]; ok {
		return t
	}
	r.logger.Printf("unknown template id %q, falling back to %s", templateID, FallbackTemplateID)
	return r.fallback
}

// TemplateIDs lists the registered identifiers.
func (r *Registry) TemplateIDs() []string {
	ids := make([]string, 0, len(r.themes))
	for id := range r.themes {
		ids = append(ids, id)
	}
	return ids
}
