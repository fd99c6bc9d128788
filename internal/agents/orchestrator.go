package agents

import (
	"context"
	"log"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/components/tool"
	"github.com/cloudwego/eino/compose"
	"github.com/cloudwego/eino/flow/agent/react"
	"github.com/cloudwego/eino/schema"

	"github.com/avikram/finnavigator/internal/config"
	"github.com/avikram/finnavigator/internal/models"
)

// apologyReply stands in for the model output when the call fails.
const apologyReply = "Sorry, I ran into a problem talking to the language model. Please try again in a moment."

// Orchestrator drives a tool-calling agent over the analysis tool set. Both
// entry points absorb their own failures: the dispatcher never sees an error
// from here.
type Orchestrator struct {
	agent        *react.Agent
	chatModel    model.ToolCallingChatModel
	systemPrompt string
}

// NewOrchestrator builds the agent for one provider/credential pair. It is
// re-created whenever the session switches provider.
func NewOrchestrator(ctx context.Context, cfg *config.Config, provider, apiKey string, agentTools []tool.BaseTool) (*Orchestrator, error) {
	chatModel, err := NewChatModel(ctx, provider, apiKey, cfg.LLMModel)
	if err != nil {
		return nil, err
	}

	systemPrompt, err := LoadPrompt("assistant")
	if err != nil {
		return nil, err
	}

	maxStep := cfg.MaxSteps
	if maxStep <= 0 {
		maxStep = 10
	}

	agent, err := react.NewAgent(ctx, &react.AgentConfig{
		MaxStep:          maxStep,
		ToolCallingModel: chatModel,
		ToolsConfig: compose.ToolsNodeConfig{
			Tools: agentTools,
		},
		StreamToolCallChecker: ToolCallChecker,
	})
	if err != nil {
		return nil, err
	}

	return &Orchestrator{
		agent:        agent,
		chatModel:    chatModel,
		systemPrompt: systemPrompt,
	}, nil
}

// Converse answers an utterance with the prior turns as conversational
// memory. Failures degrade to an apology string.
func (o *Orchestrator) Converse(ctx context.Context, utterance string, history []models.ChatTurn) string {
	messages := make([]*schema.Message, 0, len(history)+2)
	messages = append(messages, schema.SystemMessage(o.systemPrompt))
	for _, turn := range history {
		switch turn.Role {
		case models.RoleUser:
			messages = append(messages, schema.UserMessage(turn.Content))
		case models.RoleAssistant:
			messages = append(messages, schema.AssistantMessage(turn.Content, nil))
		}
	}
	messages = append(messages, schema.UserMessage(utterance))

	out, err := o.agent.Generate(ctx, messages)
	if err != nil {
		log.Printf("Agent generation failed: %v", err)
		return apologyReply
	}
	return out.Content
}

// Summarize condenses a scraped article. It calls the chat model directly
// without the tool set; a failure degrades to an empty summary, which the
// renderer replaces with a link-only note.
func (o *Orchestrator) Summarize(ctx context.Context, companyName, article string) string {
	prompt, err := LoadPromptWithContext("summarize", map[string]string{
		"Company": companyName,
		"Article": article,
	})
	if err != nil {
		log.Printf("Failed to load summarize prompt: %v", err)
		return ""
	}

	out, err := o.chatModel.Generate(ctx, []*schema.Message{schema.UserMessage(prompt)})
	if err != nil {
		log.Printf("Summarization failed: %v", err)
		return ""
	}
	return out.Content
}

// ToolCallChecker reports whether a streamed model response carries tool
// calls, draining the stream as it goes.
func ToolCallChecker(ctx context.Context, sr *schema.StreamReader[*schema.Message]) (bool, error) {
	defer sr.Close()
	for {
		msg, err := sr.Recv()
		if err != nil {
			if err.Error() == "EOF" {
				return false, nil
			}
			return false, err
		}
		if len(msg.ToolCalls) > 0 {
			return true, nil
		}
	}
}
