package domain

// PlanField names one editable numeric field of the business plan.
type PlanField string

const (
	PlanOverallBV       PlanField = "overall_bv"
	PlanATS             PlanField = "ats"
	PlanCPL             PlanField = "cpl"
	PlanTaxPercent      PlanField = "tax_percent"
	PlanLTWPercent      PlanField = "ltw_percent"
	PlanWTBPercent      PlanField = "wtb_percent"
	PlanDigitalPercent  PlanField = "digital_percent"
	PlanPresalesPercent PlanField = "presales_percent"
	PlanBrandPercent    PlanField = "brand_percent"
	PlanReferralPercent PlanField = "referral_percent"
	PlanCPPercent       PlanField = "cp_percent"
	PlanBudgetInput     PlanField = "budget_input"
)

// ValidPlanFields is the canonical set of accepted plan field names.
var ValidPlanFields = map[string]bool{
	"overall_bv": true, "ats": true, "cpl": true, "tax_percent": true,
	"ltw_percent": true, "wtb_percent": true, "digital_percent": true,
	"presales_percent": true, "brand_percent": true, "referral_percent": true,
	"cp_percent": true, "budget_input": true,
}

// ApplyPlanField sets the named field, reporting whether the name was known.
// ReceivedBudget and the calculation mode have their own edit paths because
// they carry view-conversion and mode semantics a bare float cannot.
func ApplyPlanField(p *PlanningData, field PlanField, v float64) bool {
	switch field {
	case PlanOverallBV:
		p.OverallBV = v
	case PlanATS:
		p.ATS = v
	case PlanCPL:
		p.CPL = v
	case PlanTaxPercent:
		p.TaxPercent = v
	case PlanLTWPercent:
		p.LTWPercent = v
	case PlanWTBPercent:
		p.WTBPercent = v
	case PlanDigitalPercent:
		p.DigitalPercent = v
	case PlanPresalesPercent:
		p.PresalesPercent = v
	case PlanBrandPercent:
		p.BrandPercent = v
	case PlanReferralPercent:
		p.ReferralPercent = v
	case PlanCPPercent:
		p.CPPercent = v
	case PlanBudgetInput:
		p.BudgetInput = v
	default:
		return false
	}
	return true
}

// WeekSeedField names one editable seed field of a forecast week.
type WeekSeedField string

const (
	SeedSpendDistribution WeekSeedField = "spend_distribution"
	SeedLeadDistribution  WeekSeedField = "lead_distribution"
	SeedAdConversion      WeekSeedField = "ad_conversion"
)

// ValidWeekSeedFields is the canonical set of accepted week seed field names.
var ValidWeekSeedFields = map[string]bool{
	"spend_distribution": true, "lead_distribution": true, "ad_conversion": true,
}
