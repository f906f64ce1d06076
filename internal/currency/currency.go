package currency

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	USD = "USD"
	TZS = "TZS"
)

// Converter holds the fixed USD/TZS exchange rate the site operates with.
// The rate comes from configuration, not a feed, so LastUpdated is unknown.
type Converter struct {
	usdToTZS decimal.Decimal
}

func NewConverter(usdToTZS float64) *Converter {
	return &Converter{usdToTZS: decimal.NewFromFloat(usdToTZS)}
}

// Rate returns the USD→TZS rate as a float for JSON envelopes.
func (c *Converter) Rate() float64 {
	rate, _ := c.usdToTZS.Float64()
	return rate
}

// Convert exchanges amount between USD and TZS. Identical from/to returns
// the amount unchanged.
func (c *Converter) Convert(amount float64, from, to string) (float64, error) {
	from = normalize(from, USD)
	to = normalize(to, TZS)

	if !supported(from) || !supported(to) {
		return 0, fmt.Errorf("unsupported currency pair %s/%s", from, to)
	}

	value := decimal.NewFromFloat(amount)
	switch {
	case from == to:
		// no-op
	case from == USD && to == TZS:
		value = value.Mul(c.usdToTZS)
	case from == TZS && to == USD:
		value = value.DivRound(c.usdToTZS, 2)
	}

	converted, _ := value.Round(2).Float64()
	return converted, nil
}

// Format renders an amount with its currency code, e.g. "TZS 2,600.00".
func Format(amount float64, code string) string {
	code = normalize(code, TZS)
	return code + " " + group(decimal.NewFromFloat(amount).StringFixed(2))
}

func normalize(code, fallback string) string {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return fallback
	}
	return code
}

func supported(code string) bool {
	return code == USD || code == TZS
}

// group inserts thousand separators into a fixed-point decimal string.
func group(s string) string {
	intPart, fracPart, _ := strings.Cut(s, ".")
	neg := strings.HasPrefix(intPart, "-")
	if neg {
		intPart = intPart[1:]
	}

	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}

	out := b.String()
	if fracPart != "" {
		out += "." + fracPart
	}
	if neg {
		out = "-" + out
	}
	return out
}
