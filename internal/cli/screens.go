package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/AlecAivazis/survey/v2"

	"github.com/avikram/finnavigator/internal/agents"
	"github.com/avikram/finnavigator/internal/models"
	"github.com/avikram/finnavigator/internal/planner"
	"github.com/avikram/finnavigator/internal/session"
)

// PromptForCredentials runs the login screen: provider selection followed by
// the API key.
func PromptForCredentials() (provider, credential string, err error) {
	providers := agents.SupportedProviders()

	selectPrompt := &survey.Select{
		Message: "Select a language model provider:",
		Options: providers,
		Help:    "The provider serves the conversational assistant; analysis tools work the same with any of them",
	}
	if err := survey.AskOne(selectPrompt, &provider); err != nil {
		return "", "", err
	}

	keyPrompt := &survey.Password{
		Message: fmt.Sprintf("Enter your %s API key:", provider),
	}
	err = survey.AskOne(keyPrompt, &credential, survey.WithValidator(func(val interface{}) error {
		if strings.TrimSpace(val.(string)) == "" {
			return fmt.Errorf("API key cannot be empty")
		}
		return nil
	}))
	if err != nil {
		return "", "", err
	}

	return provider, strings.TrimSpace(credential), nil
}

// PromptForTab asks which screen to show next.
func PromptForTab() (session.Tab, error) {
	var choice string
	prompt := &survey.Select{
		Message: "Where to?",
		Options: []string{"Chat with the assistant", "Plan a SIP", "Quit"},
	}
	if err := survey.AskOne(prompt, &choice); err != nil {
		return "", err
	}

	switch choice {
	case "Chat with the assistant":
		return session.TabChat, nil
	case "Plan a SIP":
		return session.TabPlanner, nil
	default:
		return "", nil
	}
}

// PromptForUtterance reads one chat message. An empty answer exits the chat.
func PromptForUtterance() (string, error) {
	var utterance string
	prompt := &survey.Input{
		Message: "Ask about a stock (empty to go back):",
		Help:    "Examples: \"technical analysis for AAPL\", \"news for RELIANCE.NS\", \"fundamentals of TSLA\"",
	}
	if err := survey.AskOne(prompt, &utterance); err != nil {
		return "", err
	}
	return strings.TrimSpace(utterance), nil
}

// PromptForPlanRequest runs the SIP planner input screen.
func PromptForPlanRequest() (models.PlanRequest, error) {
	var req models.PlanRequest

	if err := survey.AskOne(&survey.Input{
		Message: "What is your investment goal?",
		Default: "Wealth creation",
	}, &req.Goal); err != nil {
		return req, err
	}

	if err := survey.AskOne(&survey.Select{
		Message: "Risk appetite:",
		Options: []string{"Conservative", "Moderate", "Aggressive"},
		Default: "Moderate",
	}, &req.RiskAppetite); err != nil {
		return req, err
	}

	monthly, err := promptFloat("Monthly investment (INR):", "5000", func(v float64) error {
		if v <= 0 {
			return fmt.Errorf("amount must be positive")
		}
		return nil
	})
	if err != nil {
		return req, err
	}
	req.MonthlyAmount = monthly

	years, err := promptFloat(fmt.Sprintf("Horizon in years (%d-%d):", planner.MinHorizonYears, planner.MaxHorizonYears), "10", func(v float64) error {
		if v != float64(int(v)) || int(v) < planner.MinHorizonYears || int(v) > planner.MaxHorizonYears {
			return fmt.Errorf("enter a whole number between %d and %d", planner.MinHorizonYears, planner.MaxHorizonYears)
		}
		return nil
	})
	if err != nil {
		return req, err
	}
	req.HorizonYears = int(years)

	rate, err := promptFloat(fmt.Sprintf("Expected annual return %% (%.1f-%.1f):", planner.MinReturnPct, planner.MaxReturnPct), "12", func(v float64) error {
		if v < planner.MinReturnPct || v > planner.MaxReturnPct {
			return fmt.Errorf("enter a value between %.1f and %.1f", planner.MinReturnPct, planner.MaxReturnPct)
		}
		return nil
	})
	if err != nil {
		return req, err
	}
	req.AnnualReturnPct = rate

	return req, nil
}

func promptFloat(message, def string, check func(float64) error) (float64, error) {
	var answer string
	prompt := &survey.Input{Message: message, Default: def}

	err := survey.AskOne(prompt, &answer, survey.WithValidator(func(val interface{}) error {
		v, err := strconv.ParseFloat(strings.TrimSpace(val.(string)), 64)
		if err != nil {
			return fmt.Errorf("enter a number")
		}
		return check(v)
	}))
	if err != nil {
		return 0, err
	}

	return strconv.ParseFloat(strings.TrimSpace(answer), 64)
}
