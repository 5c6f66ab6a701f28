package observability

// Attribute keys, span names, events and metric names shared by every
// component so dashboards and log queries line up.

// --- LLM provider ---

const (
	AttrLLMProvider     = "llm.provider"
	AttrLLMModel        = "llm.model"
	AttrLLMEndpoint     = "llm.endpoint"
	AttrLLMResponseID   = "llm.response.id"
	AttrLLMFinishReason = "llm.finish_reason"
	AttrLLMBuiltinTools = "llm.builtin_tools"

	AttrLLMTokensPrompt     = "llm.tokens.prompt"     // #nosec G101 -- model tokens, not credentials
	AttrLLMTokensCompletion = "llm.tokens.completion" // #nosec G101 -- model tokens, not credentials
	AttrLLMTokensTotal      = "llm.tokens.total"      // #nosec G101 -- model tokens, not credentials
)

// --- Grounding ---

const (
	AttrGroundingSources       = "grounding.sources"
	AttrGroundingSearchQueries = "grounding.search_queries"
)

// --- Request / response ---

const (
	AttrRequestID            = "request.id"
	AttrRequestMessagesCount = "request.messages_count"
	AttrResponseContent      = "response.content"
	AttrResponseLength       = "response.length"
)

// --- HTTP ---

const (
	AttrHTTPMethod           = "http.method"
	AttrHTTPStatusCode       = "http.status_code"
	AttrHTTPURL              = "http.url"
	AttrHTTPRequestBodySize  = "http.request.body.size"
	AttrHTTPResponseBodySize = "http.response.body.size"
	AttrHTTPDuration         = "http.request.duration"
)

// --- Memory ---

const (
	AttrMemoryMessageRole   = "memory.message.role"
	AttrMemoryTotalMessages = "memory.total_messages"
)

// --- Prediction pipeline ---

const (
	AttrMatchDescription = "match.description"
	AttrMatchHome        = "match.home"
	AttrMatchAway        = "match.away"
	AttrTrendingCount    = "trending.count"
	AttrExtractionShape  = "extraction.shape"
	AttrExtractionKind   = "extraction.kind"
	AttrExtractionStep   = "extraction.attempt"
	AttrOutcome          = "outcome"
)

// --- General ---

const (
	AttrError     = "error"
	AttrErrorType = "error.type"
	AttrDuration  = "duration"
)

// --- Span names ---

const (
	SpanClientSendMessage = "client.send_message"
	SpanRequestPrediction = "predictor.request_prediction"
	SpanRequestTrending   = "predictor.request_trending"
	SpanSupportReply      = "support.reply"
)

// --- Events ---

const (
	EventLLMRequestStart   = "llm.request.start"
	EventLLMRequestEnd     = "llm.request.end"
	EventTokensReceived    = "llm.tokens.received" // #nosec G101 -- model tokens, not credentials
	EventExtractionStart   = "extraction.start"
	EventExtractionDecoded = "extraction.decoded"
	EventMemoryAppend      = "memory.append"
	EventMemoryClear       = "memory.clear"
)

// --- Metrics ---

const (
	MetricClientRequestCount    = "betsmart.client.request.count"
	MetricClientRequestDuration = "betsmart.client.request.duration"
	MetricClientTokensTotal     = "betsmart.client.tokens.total"
	MetricProviderDuration      = "betsmart.provider.duration"
	MetricExtractionOutcome     = "betsmart.extraction.outcome"
)
