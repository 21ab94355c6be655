package engine

import "github.com/arjunshenoy/funnelcast/internal/domain"

// DeriveMetrics converts a business plan into the full set of calculated
// metrics. Deterministic and side-effect free; division by a zero funnel-stage
// input yields Inf/NaN rather than a panic, matching the tolerant-arithmetic
// posture of the rest of the engine.
//
// In revenue mode the budget flows forward from the BV ambition: revenue
// target -> digital units -> walk-ins (via WTB) -> leads (via LTW) -> spend
// (via CPL). In budget mode the same chain is inverted from a fixed net
// spending budget.
func DeriveMetrics(plan domain.PlanningData) domain.CalculatedMetrics {
	if plan.CalculationMode == domain.ModeBudget {
		return deriveFromBudget(plan)
	}
	return deriveFromRevenue(plan)
}

func deriveFromRevenue(plan domain.PlanningData) domain.CalculatedMetrics {
	digitalBV := plan.OverallBV * (plan.DigitalPercent / 100)
	presalesBV := plan.OverallBV * (plan.PresalesPercent / 100)

	totalUnits := plan.OverallBV / plan.ATS
	digitalUnits := digitalBV / plan.ATS
	presalesUnits := presalesBV / plan.ATS

	targetWalkins := digitalUnits / (plan.WTBPercent / 100)
	targetLeads := targetWalkins / (plan.LTWPercent / 100)

	baseBudget := targetLeads * plan.CPL

	return finishMetrics(plan, plan.OverallBV, digitalBV, presalesBV,
		totalUnits, digitalUnits, presalesUnits, targetWalkins, targetLeads, baseBudget)
}

func deriveFromBudget(plan domain.PlanningData) domain.CalculatedMetrics {
	baseBudget := plan.BudgetInput
	targetLeads := baseBudget / plan.CPL
	targetWalkins := targetLeads * (plan.LTWPercent / 100)
	digitalUnits := targetWalkins * (plan.WTBPercent / 100)
	digitalBV := digitalUnits * plan.ATS
	overallBV := digitalBV / (plan.DigitalPercent / 100)

	presalesBV := overallBV * (plan.PresalesPercent / 100)
	totalUnits := overallBV / plan.ATS
	presalesUnits := presalesBV / plan.ATS

	return finishMetrics(plan, overallBV, digitalBV, presalesBV,
		totalUnits, digitalUnits, presalesUnits, targetWalkins, targetLeads, baseBudget)
}

func finishMetrics(plan domain.PlanningData, overallBV, digitalBV, presalesBV,
	totalUnits, digitalUnits, presalesUnits, targetWalkins, targetLeads, baseBudget float64,
) domain.CalculatedMetrics {
	taxAmount := baseBudget * (plan.TaxPercent / 100)
	allInBudget := baseBudget + taxAmount

	return domain.CalculatedMetrics{
		TotalUnits:    totalUnits,
		DigitalUnits:  digitalUnits,
		PresalesUnits: presalesUnits,
		DigitalBV:     digitalBV,
		PresalesBV:    presalesBV,
		OverallBV:     overallBV,

		TargetWalkins: targetWalkins,
		TargetLeads:   targetLeads,

		BaseBudget:  baseBudget,
		TaxAmount:   taxAmount,
		AllInBudget: allInBudget,

		CPW:       baseBudget / targetWalkins,
		CPB:       baseBudget / digitalUnits,
		Revenue:   overallBV * domain.CroreToUnit,
		TargetCOM: allInBudget / (digitalBV * domain.CroreToUnit) * 100,
	}
}
