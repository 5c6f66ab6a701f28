package ai

/*
	##### PROVIDER INPUT #####
*/

// ChatRequest is a provider-agnostic generation request.
type ChatRequest struct {
	Model string `json:"model,omitempty"`
	// Messages is the conversation so far, oldest first, without the system
	// prompt.
	Messages     []Message `json:"messages"`
	SystemPrompt string    `json:"system_prompt,omitempty"`
	// Tools lists built-in tools the model may use.
	Tools            []ToolDescription `json:"tools,omitempty"`
	ResponseFormat   *ResponseFormat   `json:"response_format,omitempty"`
	GenerationConfig *GenerationConfig `json:"generation_config,omitempty"`
}

// ToolDescription names a provider built-in tool such as ToolGoogleSearch.
type ToolDescription struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// Built-in tool names understood by providers that support them.
const (
	ToolGoogleSearch = "google_search"
	ToolURLContext   = "url_context"
)

// IsBuiltinTool reports whether name is one of the provider built-in tools.
func IsBuiltinTool(name string) bool {
	switch name {
	case ToolGoogleSearch, ToolURLContext:
		return true
	default:
		return false
	}
}

// Message is one turn of a conversation.
type Message struct {
	Role    MessageRole `json:"role"`
	Content string      `json:"content,omitempty"`
	Refusal string      `json:"refusal,omitempty"` // Set when the model declined to answer
}

// GenerationConfig carries optional sampling parameters. Zero values mean
// "provider default".
type GenerationConfig struct {
	Temperature     float32 `json:"temperature,omitempty"`       // [0..2]; lower is more deterministic
	TopP            float32 `json:"top_p,omitempty"`             // Nucleus sampling [0..1]
	MaxOutputTokens int     `json:"max_output_tokens,omitempty"` // Upper bound on generated tokens
}

// ResponseFormat hints at the shape of the answer. Type is one of "text" or
// "json_object". Providers that cannot honor the hint together with the
// requested tools ignore it.
type ResponseFormat struct {
	Type string `json:"type,omitempty"`
}

// Response format types.
const (
	ResponseFormatText       = "text"
	ResponseFormatJSONObject = "json_object"
)

/*
	##### PROVIDER OUTPUT #####
*/

// Usage reports token consumption for one call.
type Usage struct {
	PromptTokens     int `json:"prompt_tokens,omitempty"`
	CompletionTokens int `json:"completion_tokens,omitempty"`
	TotalTokens      int `json:"total_tokens,omitempty"`
	ReasoningTokens  int `json:"reasoning_tokens,omitempty"`
	CachedTokens     int `json:"cached_tokens,omitempty"`
}

// ChatResponse is the provider-agnostic result of a generation call.
type ChatResponse struct {
	Id           string `json:"id"`
	Model        string `json:"model"`
	Content      string `json:"content"`
	FinishReason string `json:"finish_reason,omitempty"` // One of the FinishReason constants
	Usage        *Usage `json:"usage,omitempty"`

	Refusal   string `json:"refusal,omitempty"`   // Block reason when the provider refused the prompt
	Reasoning string `json:"reasoning,omitempty"` // Thought summary, when the model returns one

	Grounding *GroundingMetadata `json:"grounding,omitempty"` // Present when a search tool was used
}

// Finish reasons shared by all providers.
const (
	FinishReasonStop          = "stop"
	FinishReasonLength        = "length"
	FinishReasonContentFilter = "content_filter"
	FinishReasonError         = "error"
)

// GroundingMetadata describes the web evidence a search-grounded answer was
// built from.
type GroundingMetadata struct {
	Sources       []GroundingSource `json:"sources,omitempty"`
	SearchQueries []string          `json:"search_queries,omitempty"`
	// SearchSuggestions is the provider's rendered search widget converted
	// to Markdown.
	SearchSuggestions string `json:"search_suggestions,omitempty"`
}

// GroundingSource is one web page the answer was grounded on.
type GroundingSource struct {
	Index int    `json:"index"`
	URI   string `json:"uri"`
	Title string `json:"title,omitempty"`
}

/*
	##### ENUMS #####
*/

// MessageRole is the author of a Message.
type MessageRole string

const (
	RoleSystem    MessageRole = "system"
	RoleUser      MessageRole = "user"
	RoleAssistant MessageRole = "assistant"
)
