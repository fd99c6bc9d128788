package models

// SymbolInput is the argument schema shared by the symbol-keyed agent tools.
type SymbolInput struct {
	Symbol string `json:"symbol"`
}

// ToolOutput carries a tool's rendered result back to the agent as text.
type ToolOutput struct {
	Result string `json:"result"`
}
