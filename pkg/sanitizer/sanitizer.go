// Package sanitizer provides input normalization for identifiers that
// arrive from HTTP clients.
//
// All normalization functions are idempotent - applying them multiple
// times produces the same result. Functions handle invalid input
// gracefully, returning empty strings rather than errors.
//
// Normalization includes:
//   - Plate numbers: trim surrounding whitespace, collapse inner runs to
//     a single space, uppercase ("  b 1234  cd " becomes "B 1234 CD")
//   - Ticket IDs: trim surrounding whitespace, uppercase ("t0001"
//     becomes "T0001")
package sanitizer

import "strings"

func NormalizePlate(plate string) string {
	fields := strings.Fields(plate)
	if len(fields) == 0 {
		return ""
	}
	return strings.ToUpper(strings.Join(fields, " "))
}

func NormalizeTicketID(id string) string {
	return strings.ToUpper(strings.TrimSpace(id))
}
