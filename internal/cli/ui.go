package cli

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/avikram/finnavigator/internal/models"
)

// UI styles
var (
	titleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#7C3AED")).
		Background(lipgloss.Color("#1F2937")).
		Padding(0, 1).
		MarginBottom(1)

	userStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#3B82F6"))

	assistantStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#10B981")).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#10B981")).
		Padding(0, 1).
		Width(80)

	chartStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#F59E0B"))

	errorStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#EF4444")).
		Bold(true)

	hintStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#6B7280")).
		Italic(true)
)

// DisplayWelcomeBanner shows the welcome banner
func DisplayWelcomeBanner() {
	banner := `
███████╗██╗███╗   ██╗███╗   ██╗ █████╗ ██╗   ██╗
██╔════╝██║████╗  ██║████╗  ██║██╔══██╗██║   ██║
█████╗  ██║██╔██╗ ██║██╔██╗ ██║███████║██║   ██║
██╔══╝  ██║██║╚██╗██║██║╚██╗██║██╔══██║╚██╗ ██╔╝
██║     ██║██║ ╚████║██║ ╚████║██║  ██║ ╚████╔╝
╚═╝     ╚═╝╚═╝  ╚═══╝╚═╝  ╚═══╝╚═╝  ╚═╝  ╚═══╝
`

	welcomeStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#7C3AED")).
		Bold(true).
		Align(lipgloss.Center).
		Width(80)

	taglineStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#3B82F6")).
		Italic(true).
		Align(lipgloss.Center).
		Width(80).
		MarginBottom(1)

	fmt.Print(welcomeStyle.Render(banner))
	fmt.Println()
	fmt.Print(taglineStyle.Render("Conversational stock analysis and SIP planning"))
	fmt.Println()
}

// ClearScreen clears the terminal screen
func ClearScreen() {
	fmt.Print("\033[2J\033[H")
}

// DisplayHint prints a dimmed usage hint.
func DisplayHint(text string) {
	fmt.Println(hintStyle.Render(text))
}

// DisplayError prints an error line.
func DisplayError(err error) {
	fmt.Println(errorStyle.Render(fmt.Sprintf("✗ %v", err)))
}

// DisplayTurn renders one chat turn, including a sparkline for any chart
// attachment.
func DisplayTurn(turn models.ChatTurn) {
	switch turn.Role {
	case models.RoleUser:
		fmt.Println(userStyle.Render("You: " + turn.Content))
	case models.RoleAssistant:
		fmt.Println(assistantStyle.Render(stripTags(turn.Content)))
		if len(turn.Chart) > 0 {
			fmt.Println(chartStyle.Render("  " + renderSparkline(turn.Chart)))
		}
	}
	fmt.Println()
}

// DisplayHistory redraws the whole conversation.
func DisplayHistory(title string, turns []models.ChatTurn) {
	ClearScreen()
	fmt.Println(titleStyle.Render(title))
	for _, turn := range turns {
		DisplayTurn(turn)
	}
}

var tagPattern = regexp.MustCompile(`<[^>]+>`)

// stripTags flattens the HTML-flavored tool output for terminal display.
func stripTags(content string) string {
	text := tagPattern.ReplaceAllString(content, "")
	lines := strings.Split(text, "\n")
	out := lines[:0]
	for _, line := range lines {
		if strings.TrimSpace(line) != "" {
			out = append(out, strings.TrimSpace(line))
		}
	}
	return strings.Join(out, "\n")
}

var sparkRunes = []rune("▁▂▃▄▅▆▇█")

// renderSparkline draws the closing prices of a chart attachment as a
// one-line sparkline.
func renderSparkline(points []models.ChartPoint) string {
	if len(points) == 0 {
		return ""
	}

	lo, hi := points[0].Close, points[0].Close
	for _, p := range points {
		if p.Close < lo {
			lo = p.Close
		}
		if p.Close > hi {
			hi = p.Close
		}
	}

	var b strings.Builder
	for _, p := range points {
		idx := 0
		if hi > lo {
			idx = int((p.Close - lo) / (hi - lo) * float64(len(sparkRunes)-1))
		}
		b.WriteRune(sparkRunes[idx])
	}

	return fmt.Sprintf("%s  %s → %s", b.String(), points[0].Date, points[len(points)-1].Date)
}
