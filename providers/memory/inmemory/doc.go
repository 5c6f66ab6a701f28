// Package inmemory keeps conversation history in process memory. It is what
// the support chat uses; history is lost when the process exits.
package inmemory
