package planner

import (
	"context"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/avikram/finnavigator/internal/models"
)

type stubCompleter struct {
	reply string
}

func (s *stubCompleter) Converse(ctx context.Context, utterance string, history []models.ChatTurn) string {
	return s.reply
}

func validRequest() models.PlanRequest {
	return models.PlanRequest{
		Goal:            "Retirement",
		RiskAppetite:    "Moderate",
		HorizonYears:    10,
		MonthlyAmount:   5000,
		AnnualReturnPct: 12,
	}
}

func TestFutureValueClosedForm(t *testing.T) {
	monthly, rate, years := 5000.0, 12.0, 10

	got := FutureValue(monthly, rate, years)

	// Closed form evaluated with the same inputs
	r := rate / 100 / 12
	n := float64(years * 12)
	want := monthly * ((math.Pow(1+r, n) - 1) / r) * (1 + r)

	if math.Abs(got-want) >= 0.005 {
		t.Errorf("FutureValue() = %.4f, want %.4f to the cent", got, want)
	}
}

func TestFutureValueZeroRate(t *testing.T) {
	got := FutureValue(5000, 0, 10)
	if got != 5000*12*10 {
		t.Errorf("FutureValue() with zero rate = %.2f, want plain contributions %.2f", got, 5000.0*12*10)
	}
}

func TestProject(t *testing.T) {
	proj := Project(validRequest())

	if proj.Invested != 5000*12*10 {
		t.Errorf("invested = %.2f, want %.2f", proj.Invested, 5000.0*12*10)
	}
	if math.Abs(proj.Corpus-(proj.Invested+proj.Gained)) > 0.001 {
		t.Errorf("corpus %.2f != invested %.2f + gained %.2f", proj.Corpus, proj.Invested, proj.Gained)
	}
	if proj.Gained <= 0 {
		t.Errorf("gained = %.2f, want positive at 12%% over 10 years", proj.Gained)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*models.PlanRequest)
		ok     bool
	}{
		{"valid", func(r *models.PlanRequest) {}, true},
		{"zero amount", func(r *models.PlanRequest) { r.MonthlyAmount = 0 }, false},
		{"horizon too short", func(r *models.PlanRequest) { r.HorizonYears = 0 }, false},
		{"horizon too long", func(r *models.PlanRequest) { r.HorizonYears = 41 }, false},
		{"return too low", func(r *models.PlanRequest) { r.AnnualReturnPct = 0.5 }, false},
		{"return too high", func(r *models.PlanRequest) { r.AnnualReturnPct = 30 }, false},
		{"boundary horizon", func(r *models.PlanRequest) { r.HorizonYears = 40 }, true},
		{"boundary return", func(r *models.PlanRequest) { r.AnnualReturnPct = 25.0 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)

			err := Validate(req)
			if tt.ok && err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
			if !tt.ok && !errors.Is(err, ErrInvalidRequest) {
				t.Errorf("Validate() = %v, want ErrInvalidRequest", err)
			}
		})
	}
}

func TestGeneratePlanParsesJSON(t *testing.T) {
	reply := `Here is your plan:
{
  "strategy_summary": "Growth first, then safety.",
  "phases": [
    {
      "phase_name": "Accumulation",
      "phase_duration": "Years 1-7",
      "phase_description": "Equity heavy allocation.",
      "recommended_funds": [
        {"fund_category": "Large Cap", "fund_examples": ["Fund A", "Fund B"]}
      ]
    }
  ]
}
Good luck!`

	p := New(&stubCompleter{reply: reply})

	result, err := p.GeneratePlan(context.Background(), validRequest())
	if err != nil {
		t.Fatalf("GeneratePlan() error: %v", err)
	}

	if result.Warning != "" {
		t.Errorf("unexpected warning: %s", result.Warning)
	}
	if result.Plan == nil {
		t.Fatal("plan not parsed")
	}
	if result.Plan.Summary != "Growth first, then safety." {
		t.Errorf("summary = %q", result.Plan.Summary)
	}
	if len(result.Plan.Phases) != 1 || result.Plan.Phases[0].Name != "Accumulation" {
		t.Errorf("phases = %+v", result.Plan.Phases)
	}
}

func TestGeneratePlanMalformedOutput(t *testing.T) {
	p := New(&stubCompleter{reply: "I cannot produce JSON today."})

	result, err := p.GeneratePlan(context.Background(), validRequest())
	if err != nil {
		t.Fatalf("GeneratePlan() must not fail on parse errors, got %v", err)
	}

	if result.Plan != nil {
		t.Error("plan should be nil for unparseable output")
	}
	if result.Warning != ParseWarning {
		t.Errorf("warning = %q, want %q", result.Warning, ParseWarning)
	}
	if result.Raw != "I cannot produce JSON today." {
		t.Errorf("raw output = %q", result.Raw)
	}
}

func TestGeneratePlanRejectsInvalidRequest(t *testing.T) {
	p := New(&stubCompleter{})

	req := validRequest()
	req.HorizonYears = 100

	if _, err := p.GeneratePlan(context.Background(), req); !errors.Is(err, ErrInvalidRequest) {
		t.Errorf("error = %v, want ErrInvalidRequest", err)
	}
}

func TestRenderResultWithPlan(t *testing.T) {
	result := &PlanResult{
		Projection: models.Projection{Corpus: 1161695.38, Invested: 600000, Gained: 561695.38},
		Plan: &models.InvestmentPlan{
			Summary: "Growth first.",
			Phases: []models.PlanPhase{
				{
					Name:        "Accumulation",
					Duration:    "Years 1-7",
					Description: "Equity heavy.",
					Funds:       []models.FundPick{{Category: "Large Cap", Examples: []string{"Fund A"}}},
				},
			},
		},
	}

	out := RenderResult(result)

	for _, want := range []string{"\u20b91161695.38", "Accumulation", "Large Cap", "Fund A", `<div class="phase-card">`} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRenderResultWithWarning(t *testing.T) {
	result := &PlanResult{
		Projection: models.Projection{Corpus: 600000, Invested: 600000},
		Raw:        "free text",
		Warning:    ParseWarning,
	}

	out := RenderResult(result)

	if !strings.Contains(out, ParseWarning) || !strings.Contains(out, "free text") {
		t.Errorf("degraded rendering incomplete:\n%s", out)
	}
}
