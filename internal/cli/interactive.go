package cli

import (
	"context"
	"fmt"
	"log"

	"github.com/avikram/finnavigator/internal/agents"
	"github.com/avikram/finnavigator/internal/chat"
	"github.com/avikram/finnavigator/internal/config"
	"github.com/avikram/finnavigator/internal/debug"
	"github.com/avikram/finnavigator/internal/planner"
	"github.com/avikram/finnavigator/internal/session"
	"github.com/avikram/finnavigator/internal/tools"
)

// runInteractive drives the full session: login, then the tab loop until the
// user quits.
func runInteractive(cfg *config.Config) error {
	ctx := context.Background()

	DisplayWelcomeBanner()

	debugger := debug.NewEinoDebugger(cfg)
	if err := debugger.Initialize(); err != nil {
		log.Printf("Eino debug server unavailable: %v", err)
	}

	provider, credential, err := PromptForCredentials()
	if err != nil {
		return err
	}

	sess := session.New(provider, credential)
	suite := tools.NewDefaultSuite(cfg)

	orchestrator, err := agents.NewOrchestrator(ctx, cfg, provider, credential, tools.AgentTools(suite))
	if err != nil {
		return fmt.Errorf("failed to set up the assistant: %w", err)
	}

	dispatcher := chat.NewDispatcher(suite, orchestrator)
	dispatcher.OnTurnCompleted(func() {
		DisplayHistory("FinNavigator", sess.Turns())
	})

	for {
		tab, err := PromptForTab()
		if err != nil {
			return err
		}

		switch tab {
		case session.TabChat:
			sess.Tab = session.TabChat
			if err := runChatLoop(ctx, dispatcher, sess); err != nil {
				return err
			}
		case session.TabPlanner:
			sess.Tab = session.TabPlanner
			if err := runPlannerScreen(ctx, orchestrator); err != nil {
				return err
			}
		default:
			return nil
		}
	}
}

func runChatLoop(ctx context.Context, dispatcher *chat.Dispatcher, sess *session.Session) error {
	DisplayHint("Ask about a stock by its symbol; an empty message returns to the menu.")

	for {
		utterance, err := PromptForUtterance()
		if err != nil {
			return err
		}
		if utterance == "" {
			return nil
		}

		dispatcher.Dispatch(ctx, sess, utterance)
	}
}

func runPlannerScreen(ctx context.Context, llm planner.Completer) error {
	req, err := PromptForPlanRequest()
	if err != nil {
		return err
	}

	p := planner.New(llm)
	result, err := p.GeneratePlan(ctx, req)
	if err != nil {
		DisplayError(err)
		return nil
	}

	fmt.Println(stripTags(planner.RenderResult(result)))
	fmt.Println()
	fmt.Println(hintStyle.Render(chat.Disclaimer))
	return nil
}
