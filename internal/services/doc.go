// Package services defines shared utilities consumed by the pipeline stages
// and the Drive integration.
//
// Key responsibilities:
//   - Context helpers that stamp run and stage identifiers for logging.
//   - Structured error markers plus the Wrap helper that keep failure
//     messages consistent as they propagate to the process boundary.
//
// Use these helpers when wiring new stage logic so error handling and
// observability stay uniform across the pipeline.
package services
