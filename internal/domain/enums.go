package domain

// ViewMode selects the financial lens for displayed amounts.
type ViewMode string

const (
	// ViewNet is the brand view: figures exclusive of tax/agency fee.
	ViewNet ViewMode = "net"
	// ViewGross is the agency view: figures inclusive of tax/agency fee.
	ViewGross ViewMode = "gross"
)

type Role string

const (
	// RoleGM is the top-level role: locks, unlocks and deletes projects.
	RoleGM Role = "gm"
	// RoleSM sees the full portfolio but cannot lock or delete.
	RoleSM Role = "sm"
	// RoleManager is SPOC-scoped and records performance actuals only.
	RoleManager Role = "manager"
)

// ValidRoles is the canonical set of accepted role strings.
var ValidRoles = map[string]bool{
	"gm": true, "sm": true, "manager": true,
}

type ProjectStatus string

const (
	ProjectPlanning ProjectStatus = "planning"
	ProjectActive   ProjectStatus = "active"
	ProjectClosed   ProjectStatus = "closed"
)

// Vertical is an acquisition channel contributing to overall booking value.
type Vertical string

const (
	VerticalDigital  Vertical = "digital"
	VerticalPresales Vertical = "presales"
	VerticalBrand    Vertical = "brand"
	VerticalReferral Vertical = "referral"
	VerticalCP       Vertical = "cp"
)

// AllVerticals lists the five verticals in reporting order.
var AllVerticals = []Vertical{
	VerticalDigital, VerticalPresales, VerticalBrand, VerticalReferral, VerticalCP,
}

type CalculationMode string

const (
	// ModeRevenue sizes the budget forward from the BV target.
	ModeRevenue CalculationMode = "revenue"
	// ModeBudget inverts the funnel chain from a fixed spending budget.
	ModeBudget CalculationMode = "budget"
)

// DeliveryStatus classifies a delivery percentage against plan.
type DeliveryStatus string

const (
	DeliveryOnTrack  DeliveryStatus = "on_track"
	DeliveryAtRisk   DeliveryStatus = "at_risk"
	DeliveryOffTrack DeliveryStatus = "off_track"
)

// ClassifyDelivery maps a delivery percentage to its status band:
// >=90 on_track, 70-89 at_risk, <70 off_track.
func ClassifyDelivery(pct float64) DeliveryStatus {
	switch {
	case pct >= 90:
		return DeliveryOnTrack
	case pct >= 70:
		return DeliveryAtRisk
	default:
		return DeliveryOffTrack
	}
}
