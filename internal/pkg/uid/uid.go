// Package uid provides identifier generators behind small interfaces so
// business logic can swap in deterministic fakes during tests.
package uid

// StringID generates opaque string identifiers (e.g. token IDs).
type StringID interface {
	Generate() string
}

// NumberID generates unique int64 identifiers (e.g. database row ids).
type NumberID interface {
	Generate() int64
}
