// Package repl holds the explicit UI state for an interactive KDL
// inspection session.
//
// A Session owns everything that outlives a single render pass: the parse
// function, the expand/collapse state, the selected output view, and the
// outcome of the last input. Each call to SetInput re-parses the raw text
// synchronously and replaces the previous document wholesale; a parse
// failure discards the prior document rather than leaving stale output. The
// expand/collapse state is keyed by structural path, not by document
// instance, so it survives input edits and is only changed by explicit
// toggle actions.
//
// Sessions are single-threaded by contract: every render is triggered by a
// user input event and runs to completion before the next one.
package repl
