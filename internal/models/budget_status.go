package models

import "github.com/shopspring/decimal"

// BudgetStatus is the single classification used everywhere budget
// utilization is reported. Historically the dashboard and the alerts
// endpoints disagreed on the state set; every call site now goes through
// ClassifyBudgetStatus.
type BudgetStatus string

const (
	BudgetStatusOverBudget   BudgetStatus = "over_budget"
	BudgetStatusWarning      BudgetStatus = "warning"
	BudgetStatusWithinBudget BudgetStatus = "within_budget"
	BudgetStatusNoBudgetSet  BudgetStatus = "no_budget_set"
)

// WarningUtilizationPercent is the utilization above which a period is
// flagged as warning while still under budget.
const WarningUtilizationPercent = 80.0

// ClassifyBudgetStatus maps spend against a budget onto the canonical status
// enum. hasBudget distinguishes "no budget configured" from a zero budget
// coming out of arithmetic; utilization is the precomputed percentage so the
// caller controls rounding.
func ClassifyBudgetStatus(spent, budget decimal.Decimal, utilization float64, hasBudget bool) BudgetStatus {
	if !hasBudget {
		return BudgetStatusNoBudgetSet
	}
	if spent.GreaterThan(budget) {
		return BudgetStatusOverBudget
	}
	if utilization > WarningUtilizationPercent {
		return BudgetStatusWarning
	}
	return BudgetStatusWithinBudget
}
