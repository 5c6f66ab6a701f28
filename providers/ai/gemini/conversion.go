package gemini

import (
	"fmt"
	"strings"
	"time"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"

	"github.com/leofalp/betsmart/internal/utils"
	"github.com/leofalp/betsmart/providers/ai"
)

// requestToGemini converts an ai.ChatRequest to the generateContent body.
func requestToGemini(request ai.ChatRequest) generateContentRequest {
	req := generateContentRequest{
		Contents: buildContents(request.Messages),
		Tools:    buildTools(request.Tools),
	}
	if request.SystemPrompt != "" {
		req.SystemInstruction = &systemInstruction{Parts: []part{{Text: request.SystemPrompt}}}
	}
	req.GenerationConfig = buildGenerationConfig(request.GenerationConfig, request.ResponseFormat, len(req.Tools) > 0)
	return req
}

// buildContents maps roles: assistant becomes "model", everything else is
// sent as "user".
func buildContents(messages []ai.Message) []content {
	contents := make([]content, 0, len(messages))
	for _, msg := range messages {
		if msg.Content == "" {
			continue
		}
		role := "user"
		if msg.Role == ai.RoleAssistant {
			role = "model"
		}
		contents = append(contents, content{Role: role, Parts: []part{{Text: msg.Content}}})
	}
	return contents
}

// buildTools keeps only the built-in tools Gemini knows.
func buildTools(tools []ai.ToolDescription) []tool {
	var out []tool
	for _, t := range tools {
		switch t.Name {
		case ai.ToolGoogleSearch:
			out = append(out, tool{GoogleSearch: &googleSearchTool{}})
		case ai.ToolURLContext:
			out = append(out, tool{URLContext: &urlContextTool{}})
		}
	}
	return out
}

// buildGenerationConfig returns nil when nothing deviates from the defaults.
// Gemini rejects a JSON response MIME type combined with search tools, so the
// JSON hint is only forwarded for tool-less requests.
func buildGenerationConfig(cfg *ai.GenerationConfig, format *ai.ResponseFormat, hasTools bool) *generationConfig {
	gc := &generationConfig{}
	set := false

	if cfg != nil {
		if cfg.Temperature > 0 {
			gc.Temperature = utils.Ptr(float64(cfg.Temperature))
			set = true
		}
		if cfg.TopP > 0 {
			gc.TopP = utils.Ptr(float64(cfg.TopP))
			set = true
		}
		if cfg.MaxOutputTokens > 0 {
			gc.MaxOutputTokens = utils.Ptr(cfg.MaxOutputTokens)
			set = true
		}
	}
	if format != nil && format.Type == ai.ResponseFormatJSONObject && !hasTools {
		gc.ResponseMimeType = "application/json"
		set = true
	}

	if !set {
		return nil
	}
	return gc
}

// geminiToGeneric converts a generateContent answer to ai.ChatResponse.
func geminiToGeneric(resp generateContentResponse) *ai.ChatResponse {
	result := &ai.ChatResponse{
		Id:    resp.ResponseID,
		Model: resp.ModelVersion,
	}
	if result.Id == "" {
		result.Id = fmt.Sprintf("gemini-%d", time.Now().UnixNano())
	}
	if resp.UsageMetadata != nil {
		result.Usage = &ai.Usage{
			PromptTokens:     resp.UsageMetadata.PromptTokenCount,
			CompletionTokens: resp.UsageMetadata.CandidatesTokenCount,
			TotalTokens:      resp.UsageMetadata.TotalTokenCount,
			ReasoningTokens:  resp.UsageMetadata.ThoughtsTokenCount,
			CachedTokens:     resp.UsageMetadata.CachedContentTokenCount,
		}
	}

	if len(resp.Candidates) == 0 {
		result.FinishReason = ai.FinishReasonError
		if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != "" {
			result.FinishReason = ai.FinishReasonContentFilter
			result.Refusal = resp.PromptFeedback.BlockReason
		}
		return result
	}

	c := resp.Candidates[0]
	result.FinishReason = mapFinishReason(c.FinishReason)
	if result.FinishReason == ai.FinishReasonContentFilter {
		result.Refusal = c.FinishReason
	}

	if c.Content != nil {
		var text, thoughts []string
		for _, p := range c.Content.Parts {
			if p.Text == "" {
				continue
			}
			if p.Thought {
				thoughts = append(thoughts, p.Text)
			} else {
				text = append(text, p.Text)
			}
		}
		// Grounded answers arrive split across parts; joining without a
		// separator keeps JSON that straddles a boundary intact.
		result.Content = strings.Join(text, "")
		result.Reasoning = strings.Join(thoughts, "\n")
	}

	result.Grounding = mapGroundingMetadata(c.GroundingMetadata)
	return result
}

func mapFinishReason(reason string) string {
	switch reason {
	case "STOP", "FINISH_REASON_UNSPECIFIED", "":
		return ai.FinishReasonStop
	case "MAX_TOKENS":
		return ai.FinishReasonLength
	case "SAFETY", "RECITATION", "BLOCKLIST", "PROHIBITED_CONTENT", "SPII":
		return ai.FinishReasonContentFilter
	default:
		return ai.FinishReasonStop
	}
}

// mapGroundingMetadata keeps web chunks in the order Gemini returned them.
// The search widget HTML is converted to Markdown; a conversion failure only
// drops the suggestions.
func mapGroundingMetadata(gm *groundingMetadata) *ai.GroundingMetadata {
	if gm == nil {
		return nil
	}

	result := &ai.GroundingMetadata{SearchQueries: gm.WebSearchQueries}
	for i, chunk := range gm.GroundingChunks {
		if chunk.Web == nil {
			continue
		}
		result.Sources = append(result.Sources, ai.GroundingSource{
			Index: i,
			URI:   chunk.Web.URI,
			Title: chunk.Web.Title,
		})
	}

	if gm.SearchEntryPoint != nil && gm.SearchEntryPoint.RenderedContent != "" {
		if md, err := htmltomarkdown.ConvertString(gm.SearchEntryPoint.RenderedContent); err == nil {
			result.SearchSuggestions = strings.TrimSpace(md)
		}
	}
	return result
}
