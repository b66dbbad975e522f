// Package config provides the engine's fixed tuning constants and the
// server configuration loaded from YAML with environment overrides.
package config

// Engine constants. These are part of the query contract and are not
// configurable at runtime.
const (
	// MaxResultDocumentCount caps the ranked result list of every search.
	MaxResultDocumentCount = 5

	// ComparisonError is the epsilon under which two relevance values are
	// considered equal and the rating tie-breaker applies.
	ComparisonError = 1e-6

	// RequestWindow is the size of the rolling request-bookkeeping window.
	RequestWindow = 1440
)
