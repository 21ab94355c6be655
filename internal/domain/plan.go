package domain

// Domain constants. Amounts in the plan are denominated in currency-crore;
// CroreToUnit converts to base currency units.
const (
	CroreToUnit = 10_000_000.0

	// APPerAD is the planning rule of thumb that site-visit volume runs at
	// twice confirmed walk-in volume. A business assumption, not a derivation.
	APPerAD = 2.0

	WeekCount   = 13
	DaysPerWeek = 7
)

// PlanningData is the per-project business plan: revenue ambition, funnel
// conversion assumptions and cost assumptions the whole forecast derives from.
type PlanningData struct {
	OverallBV float64 // target gross sales value, Cr
	ATS       float64 // average ticket size, Cr
	CPL       float64 // planned cost per lead, stored net

	TaxPercent float64
	LTWPercent float64 // lead -> walk-in conversion
	WTBPercent float64 // walk-in -> booking conversion

	// Contribution of each acquisition vertical, as % of OverallBV.
	DigitalPercent  float64
	PresalesPercent float64
	BrandPercent    float64
	ReferralPercent float64
	CPPercent       float64

	// ReceivedBudget is cumulative funds released. Always stored gross.
	ReceivedBudget float64

	CalculationMode CalculationMode
	BudgetInput     float64 // net spending budget, used only in budget mode
}

// ContributionPercent returns the plan's contribution percent for a vertical.
func (p *PlanningData) ContributionPercent(v Vertical) float64 {
	switch v {
	case VerticalDigital:
		return p.DigitalPercent
	case VerticalPresales:
		return p.PresalesPercent
	case VerticalBrand:
		return p.BrandPercent
	case VerticalReferral:
		return p.ReferralPercent
	case VerticalCP:
		return p.CPPercent
	}
	return 0
}

// SetContributionPercent sets the plan's contribution percent for a vertical.
func (p *PlanningData) SetContributionPercent(v Vertical, pct float64) {
	switch v {
	case VerticalDigital:
		p.DigitalPercent = pct
	case VerticalPresales:
		p.PresalesPercent = pct
	case VerticalBrand:
		p.BrandPercent = pct
	case VerticalReferral:
		p.ReferralPercent = pct
	case VerticalCP:
		p.CPPercent = pct
	}
}

// TaxDivisor returns 1 + tax/100, the factor between net and gross amounts.
func (p *PlanningData) TaxDivisor() float64 {
	return 1 + p.TaxPercent/100
}

// DefaultPlan returns the planning parameters a new project starts with.
func DefaultPlan() PlanningData {
	return PlanningData{
		OverallBV:       350,
		ATS:             7,
		CPL:             4819,
		TaxPercent:      18,
		LTWPercent:      3.0,
		WTBPercent:      6.0,
		DigitalPercent:  12.5,
		PresalesPercent: 2.5,
		BrandPercent:    5.0,
		ReferralPercent: 5.0,
		CPPercent:       75.0,
		CalculationMode: ModeRevenue,
	}
}

// CalculatedMetrics is the full set of figures derived from a PlanningData.
// Never persisted; recomputed on every read.
type CalculatedMetrics struct {
	TotalUnits    float64
	DigitalUnits  float64
	PresalesUnits float64
	DigitalBV     float64 // Cr
	PresalesBV    float64 // Cr
	OverallBV     float64 // Cr; differs from plan input in budget mode

	TargetWalkins float64
	TargetLeads   float64

	BaseBudget  float64 // tax-exclusive
	TaxAmount   float64
	AllInBudget float64 // tax-inclusive

	CPW       float64 // base budget per target walk-in
	CPB       float64 // base budget per digital booking
	Revenue   float64 // OverallBV in base currency units
	TargetCOM float64 // all-in budget as % of digital BV
}
