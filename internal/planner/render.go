package planner

import (
	"fmt"
	"strings"
)

// RenderResult formats a plan result as an HTML block: projection figures,
// then one card per phase, or the raw model output with a warning when
// parsing failed.
func RenderResult(result *PlanResult) string {
	var b strings.Builder

	b.WriteString("<h3>SIP Projection</h3>\n")
	fmt.Fprintf(&b, "<p>Projected Corpus: ₹%.2f</p>\n", result.Projection.Corpus)
	fmt.Fprintf(&b, "<p>Total Invested: ₹%.2f</p>\n", result.Projection.Invested)
	fmt.Fprintf(&b, "<p>Wealth Gained: ₹%.2f</p>\n", result.Projection.Gained)

	if result.Plan == nil {
		fmt.Fprintf(&b, "<p><b>Note:</b> %s</p>\n", result.Warning)
		fmt.Fprintf(&b, "<pre>%s</pre>", result.Raw)
		return b.String()
	}

	fmt.Fprintf(&b, "<p>%s</p>\n", result.Plan.Summary)

	for _, phase := range result.Plan.Phases {
		b.WriteString(`<div class="phase-card">` + "\n")
		fmt.Fprintf(&b, "<h4>%s (%s)</h4>\n", phase.Name, phase.Duration)
		fmt.Fprintf(&b, "<p>%s</p>\n", phase.Description)
		for _, fund := range phase.Funds {
			fmt.Fprintf(&b, "<p><b>%s:</b> %s</p>\n", fund.Category, strings.Join(fund.Examples, ", "))
		}
		b.WriteString("</div>\n")
	}

	return strings.TrimRight(b.String(), "\n")
}
