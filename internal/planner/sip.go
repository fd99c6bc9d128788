package planner

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"strings"

	"github.com/avikram/finnavigator/internal/models"
	"github.com/avikram/finnavigator/internal/utils"
)

const (
	MinHorizonYears = 1
	MaxHorizonYears = 40
	MinReturnPct    = 1.0
	MaxReturnPct    = 25.0
)

// ParseWarning annotates a plan that could not be parsed from the model
// output. The raw response is still shown to the user.
const ParseWarning = "The model response could not be parsed into a structured plan, showing the raw output instead."

var ErrInvalidRequest = errors.New("invalid plan request")

// Completer is the minimal language-model surface the planner needs.
type Completer interface {
	Converse(ctx context.Context, utterance string, history []models.ChatTurn) string
}

// Validate checks a plan request against the supported input ranges.
func Validate(req models.PlanRequest) error {
	if req.MonthlyAmount <= 0 {
		return fmt.Errorf("%w: monthly amount must be positive", ErrInvalidRequest)
	}
	if req.HorizonYears < MinHorizonYears || req.HorizonYears > MaxHorizonYears {
		return fmt.Errorf("%w: horizon must be between %d and %d years", ErrInvalidRequest, MinHorizonYears, MaxHorizonYears)
	}
	if req.AnnualReturnPct < MinReturnPct || req.AnnualReturnPct > MaxReturnPct {
		return fmt.Errorf("%w: expected return must be between %.1f%% and %.1f%%", ErrInvalidRequest, MinReturnPct, MaxReturnPct)
	}
	return nil
}

// FutureValue is the closed-form compound-growth projection of a monthly
// contribution: P * (((1+r)^n - 1) / r) * (1+r), with r the monthly rate.
// A non-positive rate degrades to the plain sum of contributions.
func FutureValue(monthly, annualRatePct float64, years int) float64 {
	if annualRatePct <= 0 {
		return monthly * 12 * float64(years)
	}

	r := annualRatePct / 100 / 12
	n := float64(years * 12)
	return monthly * ((math.Pow(1+r, n) - 1) / r) * (1 + r)
}

// Project computes the corpus, total invested and gains for a request.
func Project(req models.PlanRequest) models.Projection {
	corpus := FutureValue(req.MonthlyAmount, req.AnnualReturnPct, req.HorizonYears)
	invested := req.MonthlyAmount * 12 * float64(req.HorizonYears)
	return models.Projection{
		Corpus:   corpus,
		Invested: invested,
		Gained:   corpus - invested,
	}
}

// PlanResult carries the generated plan. When the model output could not be
// parsed, Plan is nil and Warning plus Raw describe the degraded result.
type PlanResult struct {
	Projection models.Projection
	Plan       *models.InvestmentPlan
	Raw        string
	Warning    string
}

// Planner generates phased SIP investment plans through a language model.
type Planner struct {
	llm Completer
}

func New(llm Completer) *Planner {
	return &Planner{llm: llm}
}

// GeneratePlan validates the request, projects the corpus and asks the model
// for a phased plan as JSON. Malformed model output degrades to the raw
// response with a warning; it never fails the request.
func (p *Planner) GeneratePlan(ctx context.Context, req models.PlanRequest) (*PlanResult, error) {
	if err := Validate(req); err != nil {
		return nil, err
	}

	result := &PlanResult{Projection: Project(req)}

	reply := p.llm.Converse(ctx, planPrompt(req, result.Projection), nil)
	result.Raw = reply

	var plan models.InvestmentPlan
	if err := utils.ExtractObject(reply, &plan); err != nil {
		log.Printf("Plan parsing failed: %v", err)
		result.Warning = ParseWarning
		return result, nil
	}

	result.Plan = &plan
	return result, nil
}

// planPrompt builds the generation instruction. The response contract is a
// single JSON object so ExtractObject can pull it out of surrounding prose.
func planPrompt(req models.PlanRequest, proj models.Projection) string {
	var b strings.Builder

	b.WriteString("Create a phased SIP investment plan for an investor in India.\n\n")
	fmt.Fprintf(&b, "Goal: %s\n", req.Goal)
	fmt.Fprintf(&b, "Risk appetite: %s\n", req.RiskAppetite)
	fmt.Fprintf(&b, "Monthly investment: %.2f INR\n", req.MonthlyAmount)
	fmt.Fprintf(&b, "Horizon: %d years\n", req.HorizonYears)
	fmt.Fprintf(&b, "Expected annual return: %.1f%%\n", req.AnnualReturnPct)
	fmt.Fprintf(&b, "Projected corpus: %.2f INR\n\n", proj.Corpus)

	b.WriteString(`Respond with exactly one JSON object, no other text, in this shape:
{
  "strategy_summary": "...",
  "phases": [
    {
      "phase_name": "...",
      "phase_duration": "...",
      "phase_description": "...",
      "recommended_funds": [
        {"fund_category": "...", "fund_examples": ["...", "..."]}
      ]
    }
  ]
}`)

	return b.String()
}
