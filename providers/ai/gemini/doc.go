// Package gemini implements [ai.Provider] for Google's Gemini
// generateContent REST endpoint.
//
// Requests may enable Google Search grounding through [ai.ToolGoogleSearch];
// the grounding chunks, search queries and the rendered search widget (as
// Markdown) come back in [ai.ChatResponse].Grounding. Blocked prompts and
// safety stops are reported with [ai.FinishReasonContentFilter] and the
// block reason in Refusal.
package gemini
