package models

// PlanRequest captures the SIP planner inputs collected from the user.
type PlanRequest struct {
	Goal            string  `json:"goal"`
	RiskAppetite    string  `json:"risk_appetite"`
	HorizonYears    int     `json:"horizon_years"`
	MonthlyAmount   float64 `json:"monthly_amount"`
	AnnualReturnPct float64 `json:"annual_return_pct"`
}

// Projection is the closed-form growth projection for a PlanRequest.
type Projection struct {
	Corpus   float64 `json:"projected_corpus"`
	Invested float64 `json:"total_invested"`
	Gained   float64 `json:"wealth_gained"`
}

// FundPick is one recommended fund category with concrete examples.
type FundPick struct {
	Category string   `json:"fund_category"`
	Examples []string `json:"fund_examples"`
}

// PlanPhase is one phase of a multi-phase investment strategy.
type PlanPhase struct {
	Name        string     `json:"phase_name"`
	Duration    string     `json:"phase_duration"`
	Description string     `json:"phase_description"`
	Funds       []FundPick `json:"recommended_funds"`
}

// InvestmentPlan is the structured strategy generated by the model.
type InvestmentPlan struct {
	Summary string      `json:"strategy_summary"`
	Phases  []PlanPhase `json:"phases"`
}
