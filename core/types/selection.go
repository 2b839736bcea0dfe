// Package types - Selection input
package types

// Selection is the calculator's input state. The engine treats it as a
// read-only value and never mutates it; the owning UI replaces it wholesale
// on every interaction.
type Selection struct {
	// Category is the project category
	Category ProjectCategory `json:"category"`

	// Tier is the service tier
	Tier ServiceTier `json:"tier"`

	// Scale is the project scale level
	Scale ProjectScale `json:"scale"`

	// Speed is the delivery urgency level
	Speed DeliverySpeed `json:"speed"`

	// LanguageCount is the number of site languages (>= 1, first included)
	LanguageCount int `json:"language_count"`

	// IntegrationCount is the number of third-party integrations (>= 0)
	IntegrationCount int `json:"integration_count"`

	// AddOns holds the selected flat-cost add-on keys
	AddOns []AddOnKey `json:"add_ons,omitempty"`
}

// HasAddOn reports whether a flat add-on key is selected
func (s Selection) HasAddOn(key AddOnKey) bool {
	for _, k := range s.AddOns {
		if k == key {
			return true
		}
	}
	return false
}
