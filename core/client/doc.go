// Package client sits between callers and an [ai.Provider]. It builds the
// request (system prompt, history, per-call tools and format hints), runs it
// through a [Middleware] chain and, when a memory is configured, records the
// exchange.
//
// Build one with [New] and options such as [WithSystemPrompt], [WithMemory],
// [WithObserver] and [WithMiddleware]. Ready-made middlewares live in the
// middleware subpackage.
package client
