package catalog

// Service is a bookable treatment offered by a merchant.
type Service struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Description     string  `json:"description,omitempty"`
	Price           float64 `json:"price"`
	DurationMinutes int     `json:"durationMinutes"`
	ImageURL        string  `json:"imageUrl,omitempty"`
}

// Product is a purchasable retail item.
type Product struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
	ImageURL    string  `json:"imageUrl,omitempty"`
}

type StaffMember struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Role     string `json:"role,omitempty"`
	ImageURL string `json:"imageUrl,omitempty"`
}

type GalleryImage struct {
	URL string `json:"url"`
	Alt string `json:"alt,omitempty"`
}

type SocialLinks struct {
	Instagram string `json:"instagram,omitempty"`
	Facebook  string `json:"facebook,omitempty"`
	TikTok    string `json:"tiktok,omitempty"`
	Website   string `json:"website,omitempty"`
}

// ThemeConfig is the raw per-merchant styling configuration as stored by the
// catalog service. Values are not validated here; the theme package normalizes
// them into its enumerated option set.
type ThemeConfig struct {
	TemplateID   string `json:"templateId"`
	Primary      string `json:"primaryColor"`
	Secondary    string `json:"secondaryColor"`
	Accent       string `json:"accentColor"`
	Background   string `json:"backgroundColor"`
	Text         string `json:"textColor"`
	FontFamily   string `json:"fontFamily"`
	BorderRadius string `json:"borderRadius"`
	ButtonStyle  string `json:"buttonStyle"`
}

type Merchant struct {
	ID      string      `json:"id"`
	Name    string      `json:"name"`
	About   string      `json:"about,omitempty"`
	Phone   string      `json:"phone,omitempty"`
	Email   string      `json:"email,omitempty"`
	Address string      `json:"address,omitempty"`
	Theme   ThemeConfig `json:"theme"`
}

// StorefrontBundle is everything needed to render one merchant's page.
// It is fetched once per page load and treated as immutable afterwards.
type StorefrontBundle struct {
	Merchant Merchant       `json:"merchant"`
	Services []Service      `json:"services"`
	Products []Product      `json:"products"`
	Staff    []StaffMember  `json:"staff"`
	Gallery  []GalleryImage `json:"gallery"`
	Social   SocialLinks    `json:"social"`
	Locale   string         `json:"locale"`
	Currency string         `json:"currency"`
}
