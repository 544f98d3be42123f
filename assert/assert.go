// Package assert provides contract assertions. A failed assertion is a
// programming error and panics.
//
// Building with the assertions_disabled tag turns every assertion into a
// no-op, removing their cost from hot paths such as index validation in the
// sorted buffer.
package assert

import "fmt"

// failure builds the panic message for a failed assertion.
// If the first arg is a string it is used as a format string with the
// remaining args; otherwise all args are included verbatim.
func failure(args ...any) string {
	if len(args) == 0 {
		return "assertion failed"
	}

	if format, ok := args[0].(string); ok {
		return fmt.Sprintf(format, args[1:]...)
	}

	return fmt.Sprintf("assertion failed: %v", args)
}
