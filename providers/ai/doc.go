// Package ai defines the provider-agnostic request and response types shared
// by LLM backends. Each backend maps [ChatRequest] to its own wire format and
// its answer back to [ChatResponse], including any search grounding in
// [GroundingMetadata].
package ai
