// Package moneytext converts numeric amounts into their official written
// Spanish representation in Mexican peso format, e.g.
// "MIL QUINIENTOS VEINTITRÉS PESOS 45/100 M.N.".
//
// The pipeline is: lenient cleaning of the raw scalar (currency symbols,
// thousands separators, whitespace), then cardinal-word rendering of the
// integer part plus a two-digit cents fraction.
package moneytext

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/ofstlaxcala/lexnum/internal/domain"
)

// DefaultStripTokens are the currency and separator literals removed during
// cleaning, in the order they are applied.
var DefaultStripTokens = []string{"$", "MXN", "M.N.", "MN", ","}

// DefaultCurrencySuffix closes every rendered phrase.
const DefaultCurrencySuffix = "M.N."

// Clean turns an arbitrary scalar into a decimal amount.
//
// The second return value reports whether the input denotes a value at all:
// nil, empty and whitespace-only inputs (also after token stripping) yield
// (zero, false, nil). A non-empty cleaned string that still fails to parse
// yields a *domain.ErrConversion carrying the original input.
func (r *Renderer) Clean(value any) (decimal.Decimal, bool, error) {
	if value == nil {
		return decimal.Decimal{}, false, nil
	}
	s := strings.TrimSpace(coerceString(value))
	if s == "" {
		return decimal.Decimal{}, false, nil
	}
	for _, tok := range r.stripTokens {
		s = strings.ReplaceAll(s, tok, "")
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Decimal{}, false, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, false, &domain.ErrConversion{Input: value, Err: err}
	}
	return d, true, nil
}

// coerceString renders a scalar to its textual form. Numeric types format
// without exponent so that cleaning sees plain decimal digits.
func coerceString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case json.Number:
		return t.String()
	case decimal.Decimal:
		return t.String()
	default:
		return fmt.Sprint(v)
	}
}
