// Package errs defines the sentinel errors returned by runeword.
//
// Errors are returned wrapped with positional context, so callers should
// match them with errors.Is rather than by equality:
//
//	item, err := runeword.Decode(token)
//	if errors.Is(err, errs.ErrAttributeCountOutOfRange) {
//	    // reject the token
//	}
//
// Every decode failure is permanent for the given input: retrying the same
// token always yields the same error.
package errs

import "errors"

// Token shape errors.
var (
	// ErrInvalidToken is returned for an empty token or a token containing a non-digit character.
	ErrInvalidToken = errors.New("invalid token")
	// ErrMalformedHeader is returned when the token is shorter than the header or the magic marker mismatches.
	ErrMalformedHeader = errors.New("malformed header")
	// ErrAttributeCountOutOfRange is returned when a token declares more than eight attributes.
	ErrAttributeCountOutOfRange = errors.New("attribute count out of range")
	// ErrCursorExhausted is returned when a field read needs more digits than remain.
	ErrCursorExhausted = errors.New("cursor exhausted")
	// ErrUnsupportedAttributeEncoding is returned for a slot that is neither a valid standard,
	// sentinel nor empty slot under the active width table.
	ErrUnsupportedAttributeEncoding = errors.New("unsupported attribute encoding")
)

// Width table errors.
var (
	// ErrInvalidWidth is returned for a digit width outside 1..19.
	ErrInvalidWidth = errors.New("invalid digit width")
	// ErrInvalidWidthTable is returned when a width table fails validation.
	ErrInvalidWidthTable = errors.New("invalid width table")
)

// Verification errors.
var (
	// ErrGoldenMismatch is returned when a decoded record differs from its golden vector.
	ErrGoldenMismatch = errors.New("golden vector mismatch")
	// ErrCostCeilingExceeded is returned when a metered cost exceeds its recorded ceiling.
	ErrCostCeilingExceeded = errors.New("cost ceiling exceeded")
	// ErrDuplicateVector is returned when a golden file lists the same name or token twice.
	ErrDuplicateVector = errors.New("duplicate golden vector")
)

var codes = []struct {
	err  error
	code string
}{
	{ErrInvalidToken, "invalid_token"},
	{ErrMalformedHeader, "malformed_header"},
	{ErrAttributeCountOutOfRange, "attribute_count_out_of_range"},
	{ErrCursorExhausted, "cursor_exhausted"},
	{ErrUnsupportedAttributeEncoding, "unsupported_attribute_encoding"},
	{ErrInvalidWidth, "invalid_width"},
	{ErrInvalidWidthTable, "invalid_width_table"},
	{ErrGoldenMismatch, "golden_mismatch"},
	{ErrCostCeilingExceeded, "cost_ceiling_exceeded"},
	{ErrDuplicateVector, "duplicate_vector"},
}

// Code returns the stable reason code for err.
//
// Returns:
//   - string: "" for a nil error, "unknown" for errors outside this package
func Code(err error) string {
	if err == nil {
		return ""
	}

	for _, c := range codes {
		if errors.Is(err, c.err) {
			return c.code
		}
	}

	return "unknown"
}
