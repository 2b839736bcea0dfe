// Package types - Core domain types for quote estimation
// All selector values are closed enumerations: the UI renders exactly
// these sets and never introduces values outside them.
package types

// Currency represents a currency code
type Currency string

const (
	CurrencyUSD Currency = "USD"
)

// String returns the string representation
func (c Currency) String() string {
	return string(c)
}

// ProjectCategory identifies the kind of project being quoted
type ProjectCategory string

const (
	CategoryLanding   ProjectCategory = "landing"
	CategoryCorporate ProjectCategory = "corporate"
	CategoryEcommerce ProjectCategory = "ecommerce"
	CategoryMobile    ProjectCategory = "mobile"
	CategoryCRM       ProjectCategory = "crm"
	CategoryBot       ProjectCategory = "bot"
	CategoryWeb3      ProjectCategory = "web3"
)

// Categories returns all project categories in display order
func Categories() []ProjectCategory {
	return []ProjectCategory{
		CategoryLanding,
		CategoryCorporate,
		CategoryEcommerce,
		CategoryMobile,
		CategoryCRM,
		CategoryBot,
		CategoryWeb3,
	}
}

// Valid reports whether the category is a known enum member
func (c ProjectCategory) Valid() bool {
	switch c {
	case CategoryLanding, CategoryCorporate, CategoryEcommerce,
		CategoryMobile, CategoryCRM, CategoryBot, CategoryWeb3:
		return true
	}
	return false
}

// Label returns a human-readable label
func (c ProjectCategory) Label() string {
	switch c {
	case CategoryLanding:
		return "Landing page"
	case CategoryCorporate:
		return "Corporate website"
	case CategoryEcommerce:
		return "E-commerce store"
	case CategoryMobile:
		return "Mobile application"
	case CategoryCRM:
		return "CRM system"
	case CategoryBot:
		return "Chat bot"
	case CategoryWeb3:
		return "Web3 platform"
	default:
		return string(c)
	}
}

// ServiceTier is a named package of scope and features.
// Tiers are ordered by increasing scope; enterprise is a sentinel tier
// with no fixed price (quote on request only).
type ServiceTier string

const (
	TierStarter    ServiceTier = "starter"
	TierBusiness   ServiceTier = "business"
	TierPro        ServiceTier = "pro"
	TierEnterprise ServiceTier = "enterprise"
)

// Tiers returns all service tiers in ascending scope order
func Tiers() []ServiceTier {
	return []ServiceTier{TierStarter, TierBusiness, TierPro, TierEnterprise}
}

// PricedTiers returns the tiers that carry a rule-table price
func PricedTiers() []ServiceTier {
	return []ServiceTier{TierStarter, TierBusiness, TierPro}
}

// Valid reports whether the tier is a known enum member
func (t ServiceTier) Valid() bool {
	switch t {
	case TierStarter, TierBusiness, TierPro, TierEnterprise:
		return true
	}
	return false
}

// Priced reports whether the tier has a computed price
func (t ServiceTier) Priced() bool {
	return t.Valid() && t != TierEnterprise
}

// Label returns a human-readable label
func (t ServiceTier) Label() string {
	switch t {
	case TierStarter:
		return "Starter"
	case TierBusiness:
		return "Business"
	case TierPro:
		return "Pro"
	case TierEnterprise:
		return "Enterprise"
	default:
		return string(t)
	}
}

// ProjectScale is a project-size level applied to both price and duration
type ProjectScale string

const (
	ScaleSmall  ProjectScale = "small"
	ScaleMedium ProjectScale = "medium"
	ScaleLarge  ProjectScale = "large"
)

// Scales returns all scale levels in ascending order
func Scales() []ProjectScale {
	return []ProjectScale{ScaleSmall, ScaleMedium, ScaleLarge}
}

// Valid reports whether the scale is a known enum member
func (s ProjectScale) Valid() bool {
	switch s {
	case ScaleSmall, ScaleMedium, ScaleLarge:
		return true
	}
	return false
}

// Label returns a human-readable label
func (s ProjectScale) Label() string {
	switch s {
	case ScaleSmall:
		return "small"
	case ScaleMedium:
		return "medium"
	case ScaleLarge:
		return "large"
	default:
		return string(s)
	}
}

// DeliverySpeed is a delivery-urgency level trading price against duration
type DeliverySpeed string

const (
	SpeedRelaxed  DeliverySpeed = "relaxed"
	SpeedStandard DeliverySpeed = "standard"
	SpeedUrgent   DeliverySpeed = "urgent"
)

// Speeds returns all delivery speeds in ascending urgency order
func Speeds() []DeliverySpeed {
	return []DeliverySpeed{SpeedRelaxed, SpeedStandard, SpeedUrgent}
}

// Valid reports whether the speed is a known enum member
func (s DeliverySpeed) Valid() bool {
	switch s {
	case SpeedRelaxed, SpeedStandard, SpeedUrgent:
		return true
	}
	return false
}

// Label returns a human-readable label
func (s DeliverySpeed) Label() string {
	switch s {
	case SpeedRelaxed:
		return "relaxed"
	case SpeedStandard:
		return "standard"
	case SpeedUrgent:
		return "urgent"
	default:
		return string(s)
	}
}

// AddOnKey identifies an optional, separately priced capability
type AddOnKey string

const (
	// AddOnLanguages is per-unit; the first language is included in the base price
	AddOnLanguages AddOnKey = "languages"

	// AddOnIntegrations is per-unit; billed from the first unit
	AddOnIntegrations AddOnKey = "integrations"

	AddOnPayments   AddOnKey = "payments"
	AddOnContent    AddOnKey = "content"
	AddOnDataImport AddOnKey = "data_import"
	AddOnSupport    AddOnKey = "support"
)

// BooleanAddOns returns the flat-cost add-on keys in catalog order
func BooleanAddOns() []AddOnKey {
	return []AddOnKey{AddOnPayments, AddOnContent, AddOnDataImport, AddOnSupport}
}

// Valid reports whether the key is a known enum member
func (k AddOnKey) Valid() bool {
	switch k {
	case AddOnLanguages, AddOnIntegrations, AddOnPayments,
		AddOnContent, AddOnDataImport, AddOnSupport:
		return true
	}
	return false
}
