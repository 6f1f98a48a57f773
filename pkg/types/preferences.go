package types

// Preferences holds per-user storefront settings, persisted as jsonb.
type Preferences struct {
	Language   string `json:"language"`
	Currency   string `json:"currency"`
	Newsletter bool   `json:"newsletter"`
}
