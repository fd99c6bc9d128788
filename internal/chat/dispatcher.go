package chat

import (
	"context"
	"log"
	"strings"

	"github.com/avikram/finnavigator/internal/models"
	"github.com/avikram/finnavigator/internal/session"
)

// Analyzer is the deterministic analysis tool set the dispatcher routes to.
// Implementations report failures through the result envelope, never as a
// Go error.
type Analyzer interface {
	Technical(ctx context.Context, symbol string) *models.AnalysisResult
	Fundamental(ctx context.Context, symbol string) *models.AnalysisResult
	News(ctx context.Context, symbol string) *models.AnalysisResult
}

// Completer is the language-model surface the dispatcher depends on. Both
// methods absorb their own failures and return degraded text instead of an
// error.
type Completer interface {
	Converse(ctx context.Context, utterance string, history []models.ChatTurn) string
	Summarize(ctx context.Context, companyName, article string) string
}

// Dispatcher routes one chat turn through extraction, classification, tool
// invocation and rendering. Every submitted utterance produces exactly one
// assistant turn; no failure escapes a branch.
type Dispatcher struct {
	tools  Analyzer
	llm    Completer
	onTurn func()
}

func NewDispatcher(tools Analyzer, llm Completer) *Dispatcher {
	return &Dispatcher{tools: tools, llm: llm}
}

// OnTurnCompleted registers a callback fired after each completed turn
// pair. The presentation layer uses it to redraw.
func (d *Dispatcher) OnTurnCompleted(fn func()) {
	d.onTurn = fn
}

// Dispatch processes one utterance against a session, appending the user
// turn and exactly one assistant turn to its history.
func (d *Dispatcher) Dispatch(ctx context.Context, sess *session.Session, utterance string) {
	prior := sess.Turns()
	sess.Append(models.ChatTurn{Role: models.RoleUser, Content: utterance})

	ticker, found := ExtractTicker(utterance)
	intent := ClassifyIntent(utterance, found)
	log.Printf("Dispatching turn: ticker=%q intent=%s", ticker, intent)

	var content string
	var chart []models.ChartPoint

	switch intent {
	case IntentNews:
		content = d.newsTurn(ctx, ticker)
	case IntentFundamental:
		content = d.fundamentalTurn(ctx, ticker)
	case IntentTechnical:
		content, chart = d.technicalTurn(ctx, ticker)
	default:
		content = d.fallbackTurn(ctx, utterance, prior)
	}

	content = content + "\n\n" + Disclaimer

	sess.Append(models.ChatTurn{Role: models.RoleAssistant, Content: content, Chart: chart})

	if d.onTurn != nil {
		d.onTurn()
	}
}

func (d *Dispatcher) newsTurn(ctx context.Context, ticker string) string {
	result := d.tools.News(ctx, ticker)
	if !result.OK() {
		return RenderError(result.Message)
	}

	report := result.News
	if !report.HasArticle() {
		return RenderNews(report, "")
	}

	summary := d.llm.Summarize(ctx, report.CompanyName, report.Article)
	return RenderNews(report, summary)
}

func (d *Dispatcher) fundamentalTurn(ctx context.Context, ticker string) string {
	result := d.tools.Fundamental(ctx, ticker)
	if !result.OK() {
		return RenderError(result.Message)
	}
	return RenderFundamental(result.Fundamental)
}

func (d *Dispatcher) technicalTurn(ctx context.Context, ticker string) (string, []models.ChartPoint) {
	result := d.tools.Technical(ctx, ticker)
	if !result.OK() {
		return RenderError(result.Message), nil
	}
	return RenderTechnical(result.Technical), result.Technical.Chart
}

func (d *Dispatcher) fallbackTurn(ctx context.Context, utterance string, prior []models.ChatTurn) string {
	reply := d.llm.Converse(ctx, utterance, prior)
	if strings.TrimSpace(reply) == "" {
		return FallbackEmptyReply
	}
	return reply
}
