package moneytext

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

var cien = decimal.NewFromInt(100)

// Renderer produces monetary phrases. The strip-token set and currency
// suffix are fixed at construction so rendering is a pure function of its
// input.
type Renderer struct {
	stripTokens []string
	suffix      string
}

// NewRenderer creates a Renderer. Passing nil tokens or an empty suffix
// selects the standard Mexican peso vocabulary.
func NewRenderer(stripTokens []string, suffix string) *Renderer {
	if stripTokens == nil {
		stripTokens = DefaultStripTokens
	}
	if suffix == "" {
		suffix = DefaultCurrencySuffix
	}
	return &Renderer{stripTokens: stripTokens, suffix: suffix}
}

// Render converts a raw scalar to its monetary phrase. It never fails: inputs
// that denote no value or that cannot be parsed both come back as "", so a
// batch caller can map it over every row without aborting on a bad one.
func (r *Renderer) Render(value any) string {
	texto, _ := r.TryRender(value)
	return texto
}

// TryRender is Render with the failure surfaced: "no value" still yields
// ("", nil), but an unparseable input yields ("", *domain.ErrConversion) so
// callers can count or log bad rows.
func (r *Renderer) TryRender(value any) (string, error) {
	d, ok, err := r.Clean(value)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", nil
	}

	negative := d.Sign() < 0
	abs := d.Abs()
	entera := abs.IntPart()
	centavos := abs.Sub(decimal.NewFromInt(entera)).Mul(cien).Round(0).IntPart()
	if centavos == 100 {
		// 1.999 rounds up past the cent range; carry into the peso part.
		entera++
		centavos = 0
	}

	sufijo := fmt.Sprintf("%02d/100 %s", centavos, r.suffix)

	if entera == 1 && !negative {
		return "UN PESO " + sufijo, nil
	}

	// The sign is carried by the words, never by the fraction. It comes from
	// the sign flag, not from negating entera: an amount like -0.50 has a
	// zero integer part and would otherwise lose its "MENOS".
	texto := normalizeUno(strings.ToUpper(Cardinal(entera)))
	if negative && (entera != 0 || centavos != 0) {
		texto = "MENOS " + texto
	}
	return texto + " PESOS " + sufijo, nil
}

// normalizeUno applies the grammatical short form before the currency noun:
// a standalone "UNO" becomes "UN" ("CIENTO UN PESOS"), while compounds like
// "VEINTIUNO" are left alone. Cardinal output is single-space separated, so
// whole-word means whole-token here.
func normalizeUno(s string) string {
	words := strings.Split(s, " ")
	for i, w := range words {
		if w == "UNO" {
			words[i] = "UN"
		}
	}
	return strings.Join(words, " ")
}
