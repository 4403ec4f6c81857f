package engine

// CheckRequest represents a request to run a duplicate-key check.
type CheckRequest struct {
	// Width overrides the display truncation width when positive.
	Width int
}
