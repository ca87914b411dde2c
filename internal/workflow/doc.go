// Package workflow sequences the agenda pipeline.
//
// A run is a single linear pass with a strict dependency order: extract
// links from the agenda document, filter each linked folder's files by
// keyword, then materialize the output folder. Each stage consumes only the
// previous stage's output. The runner stamps a per-run correlation id and a
// stage name into context so every log line can be traced to the invocation
// that produced it.
package workflow
