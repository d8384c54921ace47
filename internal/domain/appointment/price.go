package appointment

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cast"
)

// Price is the numeric form of a price that travels as a string or a number.
type Price float64

// leading numeric prefix, so "12.5 reais" still reads as 12.5
var numericPrefix = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?`)

func parseDecimal(v any) decimal.Decimal {
	s, err := cast.ToStringE(v)
	if err != nil {
		return decimal.Zero
	}

	s = strings.Replace(strings.TrimSpace(s), ",", ".", 1)
	m := numericPrefix.FindString(s)
	if m == "" {
		return decimal.Zero
	}

	d, err := decimal.NewFromString(m)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// ParsePrice coerces a string or number into a price. A comma is read as the
// decimal separator; anything unparsable is zero.
func ParsePrice(v any) Price {
	f, _ := parseDecimal(v).Float64()
	return Price(f)
}

// SumPrices adds the coerced values without float drift.
func SumPrices[T any](values []T) Price {
	total := decimal.Zero
	for _, v := range values {
		total = total.Add(parseDecimal(v))
	}
	f, _ := total.Float64()
	return Price(f)
}

// String is the transport form stored in preco_personalizado.
func (p Price) String() string {
	return decimal.NewFromFloat(float64(p)).String()
}

func (p *Price) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		*p = 0
		return nil
	}
	*p = ParsePrice(raw)
	return nil
}
