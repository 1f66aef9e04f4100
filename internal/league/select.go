package league

import "fmt"

// Select resolves a 1-based menu choice against the slice that was displayed.
// Callers must pass the same ordered listing they showed the user.
func Select[T any](items []T, choice int) (T, error) {
	var zero T
	if choice < 1 || choice > len(items) {
		if len(items) == 0 {
			return zero, fmt.Errorf("%w: %d, nothing to choose from", ErrSelectionOutOfRange, choice)
		}
		return zero, fmt.Errorf("%w: %d, want 1-%d", ErrSelectionOutOfRange, choice, len(items))
	}
	return items[choice-1], nil
}
