package quantity

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidOption is returned when a rendering option has a value of
// unsupported type or format.
var ErrInvalidOption = errors.New("invalid option")

type roundingMode uint8

const (
	roundAuto roundingMode = iota
	roundOff
	roundExp
)

// Rounding specifies how the amount and the margin of a quantity are rounded
// before formatting. It is one of:
//
//	RoundAuto  round to the order of uncertainty of the quantity
//	RoundOff   do not round
//	RoundTo(n) round to the multiple of 10^n
//
// The zero value is RoundAuto.
type Rounding struct {
	mode roundingMode
	exp  int
}

var (
	// RoundAuto rounds to the [Quantity.OrderOfUncertainty].
	RoundAuto = Rounding{mode: roundAuto}
	// RoundOff disables rounding.
	RoundOff = Rounding{mode: roundOff}
)

// RoundTo returns a rounding to the multiple of 10^exp.
// For example, RoundTo(-2) rounds to hundredths.
func RoundTo(exp int) Rounding {
	return Rounding{mode: roundExp, exp: exp}
}

// Exponent returns the exponent of an explicit rounding.
// It returns false for RoundAuto and RoundOff.
func (r Rounding) Exponent() (exp int, ok bool) {
	return r.exp, r.mode == roundExp
}

// exponent returns the exponent to which the quantity is rounded.
// It returns false if the quantity is not rounded.
func (r Rounding) exponent(q Quantity) (int, bool) {
	switch r.mode {
	case roundOff:
		return 0, false
	case roundExp:
		return r.exp, true
	default:
		return q.OrderOfUncertainty(), true
	}
}

// String implements the [fmt.Stringer] interface and returns "auto", "off"
// or the exponent of an explicit rounding.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (r Rounding) String() string {
	switch r.mode {
	case roundOff:
		return "off"
	case roundExp:
		return strconv.Itoa(r.exp)
	default:
		return "auto"
	}
}

// ParseRounding converts an untyped option value to a rounding.
// The following values are accepted:
//
//	true, "true", "auto"  RoundAuto
//	false, "false", "off" RoundOff
//	-2, "-2", -2.0        RoundTo(-2)
//
// Floating-point values must be integral, they come from decoded JSON.
// Exponents must be within the range of int32.
//
// ParseRounding returns an error wrapping [ErrInvalidOption] for values of
// any other type or format.
func ParseRounding(v any) (Rounding, error) {
	switch v := v.(type) {
	case Rounding:
		return v, nil
	case bool:
		if v {
			return RoundAuto, nil
		}
		return RoundOff, nil
	case int:
		return roundToInt64(int64(v))
	case int8:
		return RoundTo(int(v)), nil
	case int16:
		return RoundTo(int(v)), nil
	case int32:
		return RoundTo(int(v)), nil
	case int64:
		return roundToInt64(v)
	case float64:
		if v != math.Trunc(v) || v < math.MinInt32 || v > math.MaxInt32 {
			return Rounding{}, fmt.Errorf("%w: rounding exponent %v is not an integer", ErrInvalidOption, v)
		}
		return RoundTo(int(v)), nil
	case string:
		return parseRoundingString(v)
	default:
		return Rounding{}, fmt.Errorf("%w: rounding of type %T is not supported", ErrInvalidOption, v)
	}
}

func parseRoundingString(s string) (Rounding, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "auto":
		return RoundAuto, nil
	case "false", "off":
		return RoundOff, nil
	}
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return Rounding{}, fmt.Errorf("%w: rounding exponent %v is out of range", ErrInvalidOption, s)
		}
		return Rounding{}, fmt.Errorf("%w: rounding %q is neither a boolean nor an integer", ErrInvalidOption, s)
	}
	return roundToInt64(n)
}

// roundToInt64 returns an explicit rounding if the exponent fits in 32 bits.
func roundToInt64(exp int64) (Rounding, error) {
	if exp < math.MinInt32 || exp > math.MaxInt32 {
		return Rounding{}, fmt.Errorf("%w: rounding exponent %v is out of range", ErrInvalidOption, exp)
	}
	return RoundTo(int(exp)), nil
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
// See also constructor [ParseRounding].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (r *Rounding) UnmarshalText(text []byte) error {
	var err error
	*r, err = parseRoundingString(string(text))
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", Rounding{}, err)
	}
	return nil
}

// MarshalText implements the [encoding.TextMarshaler] interface.
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (r Rounding) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// Options are the rendering options of a [Formatter].
type Options struct {
	// ShowMargin includes "±margin" after the amount.
	// A zero margin is never shown.
	ShowMargin bool
	// Rounding selects the exponent to which the amount and the margin are rounded.
	Rounding Rounding
	// ApplyUnit includes the unit label.
	ApplyUnit bool
	// ForceSign prints a sign in front of a non-negative amount.
	// It is passed to the [NumberFormatter] for the amount only.
	ForceSign bool
	// Template, if not empty, composes the result instead of "<number> <unit>".
	// The placeholder $1 is replaced with the number and $2 with the unit label.
	Template string
}

// DefaultOptions returns the options used by [NewFormatter] when no [Option]
// is given: the margin and the unit are shown and rounding is automatic.
func DefaultOptions() Options {
	return Options{
		ShowMargin: true,
		Rounding:   RoundAuto,
		ApplyUnit:  true,
	}
}

// Option changes the rendering options of a [Formatter].
type Option func(*Options)

// WithOptions replaces all rendering options.
func WithOptions(opts Options) Option {
	return func(o *Options) { *o = opts }
}

// WithMargin sets whether the uncertainty margin is shown.
func WithMargin(show bool) Option {
	return func(o *Options) { o.ShowMargin = show }
}

// WithoutMargin hides the uncertainty margin.
func WithoutMargin() Option {
	return WithMargin(false)
}

// WithRounding sets the rounding of the amount and the margin.
func WithRounding(r Rounding) Option {
	return func(o *Options) { o.Rounding = r }
}

// WithUnit sets whether the unit label is shown.
func WithUnit(apply bool) Option {
	return func(o *Options) { o.ApplyUnit = apply }
}

// WithoutUnit hides the unit label.
func WithoutUnit() Option {
	return WithUnit(false)
}

// WithSign sets whether a sign is printed in front of non-negative amounts.
func WithSign(force bool) Option {
	return func(o *Options) { o.ForceSign = force }
}

// WithForceSign prints a sign in front of non-negative amounts.
func WithForceSign() Option {
	return WithSign(true)
}

// WithTemplate sets the template composing the number and the unit label,
// for example "<$2>$1".
func WithTemplate(tmpl string) Option {
	return func(o *Options) { o.Template = tmpl }
}
