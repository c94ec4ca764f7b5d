// Package validation checks raw comma-separated user input against the
// per-model parameter schemas and produces the normalized parameter vector
// forwarded to the inference service.
package validation

import (
	"strconv"

	"medscan/internal/domain"
)

// looksNumeric reports whether a raw token should be coerced to a number:
// digits with at most one decimal point, nothing else. Signs and exponents
// stay categorical.
func looksNumeric(s string) bool {
	digits := 0
	dots := 0
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case r == '.':
			dots++
		default:
			return false
		}
	}
	return digits > 0 && dots <= 1
}

// ParseToken coerces one raw token into a tagged parameter. This is the
// single coercion rule shared by every schema.
func ParseToken(raw string) domain.Param {
	if looksNumeric(raw) {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			return domain.NumberParam(v)
		}
	}
	return domain.CategoryParam(raw)
}

// ParseTokens coerces a full token list.
func ParseTokens(tokens []string) []domain.Param {
	params := make([]domain.Param, len(tokens))
	for i, t := range tokens {
		params[i] = ParseToken(t)
	}
	return params
}
