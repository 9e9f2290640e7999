// Package csvid turns comma-separated product identifiers into int64 slices.
package csvid

import (
	"fmt"
	"strconv"
	"strings"

	apperrors "itemcompare/internal/errors"
)

const field = "productIds"

type Parser struct{}

func NewParser() *Parser {
	return &Parser{}
}

// ParseToInt64List keeps input order and duplicates. Empty tokens are
// skipped, so a csv made only of separators yields an empty slice.
func (p *Parser) ParseToInt64List(csv string) ([]int64, error) {
	if strings.TrimSpace(csv) == "" {
		return nil, apperrors.NewValidationError("productIds must not be blank", apperrors.ValidationDetail{
			Field:   field,
			Message: "productIds must not be blank",
		})
	}

	tokens := strings.Split(csv, ",")
	ids := make([]int64, 0, len(tokens))
	for _, token := range tokens {
		trimmed := strings.TrimSpace(token)
		if trimmed == "" {
			continue
		}
		id, err := strconv.ParseInt(trimmed, 10, 64)
		if err != nil {
			msg := fmt.Sprintf("productIds contains non-numeric value: %q", trimmed)
			return nil, apperrors.NewValidationError(msg, apperrors.ValidationDetail{
				Field:   field,
				Message: msg,
			})
		}
		ids = append(ids, id)
	}

	return ids, nil
}
