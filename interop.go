package quantity

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/govalues/decimal"
	"github.com/govalues/money"
	ssdecimal "github.com/shopspring/decimal"
)

// NewDecimalFromFixed converts a fixed-point [decimal.Decimal] to an exact
// decimal. The conversion never loses digits.
// See also method [Decimal.Fixed].
//
// [decimal.Decimal]: https://pkg.go.dev/github.com/govalues/decimal#Decimal
func NewDecimalFromFixed(d decimal.Decimal) Decimal {
	return newDecimal(d.IsNeg(), strconv.FormatUint(d.Coef(), 10), d.Scale())
}

// Fixed converts the exact decimal to a fixed-point [decimal.Decimal].
// See also constructor [NewDecimalFromFixed].
//
// Fixed returns an error if the decimal has more digits than
// [decimal.MaxPrec] and cannot be represented without rounding.
//
// [decimal.Decimal]: https://pkg.go.dev/github.com/govalues/decimal#Decimal
// [decimal.MaxPrec]: https://pkg.go.dev/github.com/govalues/decimal#MaxPrec
func (d Decimal) Fixed() (decimal.Decimal, error) {
	f, err := decimal.Parse(d.plain())
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("converting %v to %T: %w", d, f, err)
	}
	if !NewDecimalFromFixed(f).Equal(d) {
		return decimal.Decimal{}, fmt.Errorf("converting %v to %T: too many digits", d, f)
	}
	return f, nil
}

// NewDecimalFromShopspring converts an arbitrary-precision
// [ssdecimal.Decimal] to an exact decimal.
// Positive exponents are expanded into integer zeros.
// See also method [Decimal.Shopspring].
//
// [ssdecimal.Decimal]: https://pkg.go.dev/github.com/shopspring/decimal#Decimal
func NewDecimalFromShopspring(d ssdecimal.Decimal) Decimal {
	coef := d.Coefficient()
	neg := coef.Sign() < 0
	digits := new(big.Int).Abs(coef).String()
	exp := int(d.Exponent())
	if exp >= 0 {
		return newDecimal(neg, digits+strings.Repeat("0", exp), 0)
	}
	return newDecimal(neg, digits, -exp)
}

// Shopspring converts the exact decimal to an arbitrary-precision
// [ssdecimal.Decimal]. The conversion never loses digits.
//
// [ssdecimal.Decimal]: https://pkg.go.dev/github.com/shopspring/decimal#Decimal
func (d Decimal) Shopspring() ssdecimal.Decimal {
	return ssdecimal.RequireFromString(d.plain())
}

// NewQuantityFromAmount converts a [money.Amount] to an exact quantity.
// The unit of the quantity is the 3-letter code of the currency, such as "USD".
//
// [money.Amount]: https://pkg.go.dev/github.com/govalues/money#Amount
func NewQuantityFromAmount(a money.Amount) Quantity {
	d := NewDecimalFromFixed(a.Decimal())
	return Quantity{amount: d, unit: a.Curr().Code(), upper: d, lower: d}
}
