package models

type Team struct {
	ID        int     `json:"id"`
	Name      string  `json:"name"`
	ShortName string  `json:"short_name"`
	LogoKey   *string `json:"-"`
	LogoURL   *string `json:"logo_url,omitempty"`
	City      *string `json:"city,omitempty"`
	Colors    *string `json:"colors,omitempty"`
}
