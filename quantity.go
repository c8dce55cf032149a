package quantity

import (
	"encoding/json"
	"errors"
	"fmt"
)

var (
	// ErrInvalidBounds is returned when the amount is not within its bounds.
	ErrInvalidBounds = errors.New("invalid bounds")
	// ErrInvalidUnit is returned when the unit identifier is empty.
	ErrInvalidUnit = errors.New("invalid unit")
)

// Quantity type represents a measured amount together with an uncertainty
// interval and a unit.
// Its zero value corresponds to an exact dimensionless "+0".
//
// The bounds satisfy lowerBound ≤ amount ≤ upperBound. The constructors
// check this, the [Formatter] relies on it without checking again.
// Quantity is designed to be safe for concurrent use by multiple goroutines.
type Quantity struct {
	amount Decimal
	unit   string
	upper  Decimal
	lower  Decimal
}

// NewQuantity returns a quantity with the given amount, unit and bounds.
//
// NewQuantity returns an error if:
//   - the unit is empty;
//   - the lower bound is greater than the amount;
//   - the amount is greater than the upper bound.
func NewQuantity(amount Decimal, unit string, upper, lower Decimal) (Quantity, error) {
	if unit == "" {
		return Quantity{}, ErrInvalidUnit
	}
	if lower.Cmp(amount) > 0 {
		return Quantity{}, fmt.Errorf("%w: lower bound %v is greater than amount %v", ErrInvalidBounds, lower, amount)
	}
	if amount.Cmp(upper) > 0 {
		return Quantity{}, fmt.Errorf("%w: amount %v is greater than upper bound %v", ErrInvalidBounds, amount, upper)
	}
	return Quantity{amount: amount, unit: unit, upper: upper, lower: lower}, nil
}

// NewExactQuantity returns a quantity without uncertainty, that is with
// both bounds equal to the amount.
func NewExactQuantity(amount Decimal, unit string) (Quantity, error) {
	return NewQuantity(amount, unit, amount, amount)
}

// ParseQuantity converts decimal strings and a unit identifier to a quantity.
// An empty bound string means the bound is equal to the amount.
// See also constructors [ParseDecimal] and [NewQuantity].
func ParseQuantity(amount, unit, upper, lower string) (Quantity, error) {
	a, err := ParseDecimal(amount)
	if err != nil {
		return Quantity{}, fmt.Errorf("parsing amount: %w", err)
	}
	u, l := a, a
	if upper != "" {
		u, err = ParseDecimal(upper)
		if err != nil {
			return Quantity{}, fmt.Errorf("parsing upper bound: %w", err)
		}
	}
	if lower != "" {
		l, err = ParseDecimal(lower)
		if err != nil {
			return Quantity{}, fmt.Errorf("parsing lower bound: %w", err)
		}
	}
	q, err := NewQuantity(a, unit, u, l)
	if err != nil {
		return Quantity{}, fmt.Errorf("creating quantity: %w", err)
	}
	return q, nil
}

// MustParseQuantity is like [ParseQuantity] but panics if the quantity cannot
// be constructed.
// It simplifies safe initialization of global variables holding quantities.
func MustParseQuantity(amount, unit, upper, lower string) Quantity {
	q, err := ParseQuantity(amount, unit, upper, lower)
	if err != nil {
		panic(fmt.Sprintf("ParseQuantity(%q, %q, %q, %q) failed: %v", amount, unit, upper, lower, err))
	}
	return q
}

// Amount returns the measured amount.
func (q Quantity) Amount() Decimal {
	return q.amount
}

// Unit returns the unit identifier.
// The identifier of dimensionless quantities is [DimensionlessUnit].
func (q Quantity) Unit() string {
	if q.unit == "" {
		return DimensionlessUnit
	}
	return q.unit
}

// UpperBound returns the upper bound of the uncertainty interval.
func (q Quantity) UpperBound() Decimal {
	return q.upper
}

// LowerBound returns the lower bound of the uncertainty interval.
func (q Quantity) LowerBound() Decimal {
	return q.lower
}

// IsExact returns true if both bounds are equal to the amount.
func (q Quantity) IsExact() bool {
	return q.upper.Equal(q.amount) && q.lower.Equal(q.amount)
}

// Uncertainty returns the width of the uncertainty interval,
// upperBound - lowerBound.
func (q Quantity) Uncertainty() Decimal {
	return q.upper.Sub(q.lower)
}

// Margin returns the symmetric uncertainty margin, the larger of the
// deviations of the bounds from the amount:
//
//	max(|upperBound - amount|, |amount - lowerBound|)
//
// Asymmetric intervals are collapsed into a single ± value.
func (q Quantity) Margin() Decimal {
	high := q.upper.AbsDiff(q.amount)
	low := q.amount.AbsDiff(q.lower)
	return high.Max(low)
}

// OrderOfUncertainty returns the exponent to which the amount and the margin
// are rounded for display: the order of magnitude of the [Quantity.Margin].
// For example, the order of uncertainty of 2±0.016 is -2.
// The result is never positive, integer digits of the amount are never
// rounded away: the order of uncertainty of -1205±100 is 0.
//
// If the margin is zero, the quantity is exact and the result is the
// exponent of the last fractional digit of the amount, so that rounding to
// it does not remove any digits.
func (q Quantity) OrderOfUncertainty() int {
	m := q.Margin()
	if m.IsZero() {
		return -q.amount.Scale()
	}
	return min(m.OrderOfMagnitude(), 0)
}

// String implements the [fmt.Stringer] interface and returns an unrounded
// representation of the quantity, such as "+24 [+23.99, +24.01] 1".
// Use [Formatter] for display.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (q Quantity) String() string {
	return fmt.Sprintf("%v [%v, %v] %v", q.amount, q.lower, q.upper, q.Unit())
}

type quantityJSON struct {
	Amount     Decimal  `json:"amount"`
	Unit       string   `json:"unit"`
	UpperBound *Decimal `json:"upperBound,omitempty"`
	LowerBound *Decimal `json:"lowerBound,omitempty"`
}

// UnmarshalJSON implements the [json.Unmarshaler] interface.
// The input is an object such as
//
//	{"amount":"+24","unit":"1","upperBound":"+24.01","lowerBound":"+23.99"}
//
// Missing bounds are equal to the amount.
//
// [json.Unmarshaler]: https://pkg.go.dev/encoding/json#Unmarshaler
func (q *Quantity) UnmarshalJSON(text []byte) error {
	if string(text) == "null" {
		return nil
	}
	var v quantityJSON
	if err := json.Unmarshal(text, &v); err != nil {
		return fmt.Errorf("unmarshaling %T: %w", Quantity{}, err)
	}
	upper, lower := v.Amount, v.Amount
	if v.UpperBound != nil {
		upper = *v.UpperBound
	}
	if v.LowerBound != nil {
		lower = *v.LowerBound
	}
	r, err := NewQuantity(v.Amount, v.Unit, upper, lower)
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", Quantity{}, err)
	}
	*q = r
	return nil
}

// MarshalJSON implements the [json.Marshaler] interface.
// Bounds are always present in the output.
//
// [json.Marshaler]: https://pkg.go.dev/encoding/json#Marshaler
func (q Quantity) MarshalJSON() ([]byte, error) {
	v := quantityJSON{
		Amount:     q.amount,
		Unit:       q.Unit(),
		UpperBound: &q.upper,
		LowerBound: &q.lower,
	}
	return json.Marshal(v)
}
