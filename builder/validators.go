package builder

// validateSize ensures n is a usable element count.
func validateSize(method string, n int) error {
	if n < minSize {
		return builderErrorf(method, ErrBadSize, "n must be ≥ %d, got %d", minSize, n)
	}

	return nil
}
