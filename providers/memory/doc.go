// Package memory defines [Provider], the conversation history store used by
// the chat client. Read methods return errors so a persistent store can
// report failures; the in-process implementation lives in
// [github.com/leofalp/betsmart/providers/memory/inmemory].
package memory
