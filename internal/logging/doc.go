// Package logging provides the structured logger used across the spiral
// pipeline. It wraps zerolog behind a small interface so components can be
// handed a logger without depending on the backend.
package logging
