package chat

import (
	"strings"
)

// Intent is the routing decision for one chat turn.
type Intent string

const (
	IntentNews        Intent = "news"
	IntentFundamental Intent = "fundamental"
	IntentTechnical   Intent = "technical"
	IntentFallback    Intent = "fallback"
)

// intentRule pairs a keyword predicate with the intent it selects.
type intentRule struct {
	matches func(string) bool
	intent  Intent
}

func containsAny(keywords ...string) func(string) bool {
	return func(utterance string) bool {
		for _, kw := range keywords {
			if strings.Contains(utterance, kw) {
				return true
			}
		}
		return false
	}
}

// intentRules is evaluated top to bottom, first match wins. The order is
// part of the contract: "news" outranks "technical" when both keywords
// appear in one message.
var intentRules = []intentRule{
	{containsAny("news"), IntentNews},
	{containsAny("fundamental"), IntentFundamental},
	{containsAny("recommend", "analysis", "analyze", "prediction", "technical"), IntentTechnical},
}

// ClassifyIntent picks the intent for an utterance. Without a resolved
// ticker every specialized tool is unusable, so the intent is always
// fallback regardless of keywords.
func ClassifyIntent(utterance string, hasTicker bool) Intent {
	if !hasTicker {
		return IntentFallback
	}

	lowered := strings.ToLower(utterance)
	for _, rule := range intentRules {
		if rule.matches(lowered) {
			return rule.intent
		}
	}
	return IntentFallback
}
