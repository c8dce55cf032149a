package quantity

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrInvalidDecimal is returned when a string is not a valid signed decimal.
	ErrInvalidDecimal = errors.New("invalid decimal")
)

// Decimal type represents an exact signed decimal number of arbitrary length.
// Its zero value corresponds to "+0".
//
// A decimal is stored as a sign, a string of coefficient digits and a scale,
// so that its value equals coef / 10^scale.
// The number of digits is not limited and no operation converts through
// binary floating-point numbers.
// Decimal is immutable and designed to be safe for concurrent use by multiple
// goroutines.
type Decimal struct {
	neg   bool   // indicates whether the decimal is negative
	coef  string // coefficient digits without leading zeros, empty for zero
	scale int    // number of digits after the decimal point
}

// newDecimal creates a new decimal from a sign, a string of digits and a scale.
// Leading zeros are removed and zero is always positive.
func newDecimal(neg bool, digits string, scale int) Decimal {
	digits = strings.TrimLeft(digits, "0")
	if digits == "" {
		neg = false
	}
	return Decimal{neg: neg, coef: digits, scale: scale}
}

// ParseDecimal converts a string to an exact decimal.
// The input string must be in one of the following formats:
//
//	+1.234
//	-1.234
//	1.234
//	+0.0
//	-1205
//
// A missing sign means the decimal is positive.
// Leading zeros of the integer part are ignored, trailing zeros of the
// fractional part are kept.
//
// ParseDecimal returns an error wrapping [ErrInvalidDecimal] if the string is
// not a valid signed decimal.
func ParseDecimal(s string) (Decimal, error) {
	d, err := parseDecimal(s)
	if err != nil {
		return Decimal{}, fmt.Errorf("parsing decimal %q: %w", s, err)
	}
	return d, nil
}

func parseDecimal(s string) (Decimal, error) {
	pos := 0

	// Sign
	neg := false
	if pos < len(s) {
		switch s[pos] {
		case '-':
			neg = true
			pos++
		case '+':
			pos++
		}
	}

	// Integer
	start := pos
	for pos < len(s) && isDigit(s[pos]) {
		pos++
	}
	intdigs := s[start:pos]
	if intdigs == "" {
		return Decimal{}, fmt.Errorf("%w: missing integer digits", ErrInvalidDecimal)
	}

	// Fraction
	fracdigs := ""
	if pos < len(s) && s[pos] == '.' {
		pos++
		start = pos
		for pos < len(s) && isDigit(s[pos]) {
			pos++
		}
		fracdigs = s[start:pos]
		if fracdigs == "" {
			return Decimal{}, fmt.Errorf("%w: missing fractional digits", ErrInvalidDecimal)
		}
	}

	if pos < len(s) {
		return Decimal{}, fmt.Errorf("%w: unexpected character %q", ErrInvalidDecimal, s[pos])
	}

	return newDecimal(neg, intdigs+fracdigs, len(fracdigs)), nil
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// MustParseDecimal is like [ParseDecimal] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding decimals.
func MustParseDecimal(s string) Decimal {
	d, err := ParseDecimal(s)
	if err != nil {
		panic(fmt.Sprintf("ParseDecimal(%q) failed: %v", s, err))
	}
	return d
}

// Scale returns the number of digits after the decimal point.
func (d Decimal) Scale() int {
	return d.scale
}

// Prec returns the number of digits in the coefficient.
// The coefficient of zero has no digits.
func (d Decimal) Prec() int {
	return len(d.coef)
}

// digits returns the coefficient left-padded with zeros to at least n digits.
func (d Decimal) digits(n int) string {
	if len(d.coef) >= n {
		return d.coef
	}
	return strings.Repeat("0", n-len(d.coef)) + d.coef
}

// IntPart returns the digits of the integer part, without sign.
// The integer part has at least one digit.
func (d Decimal) IntPart() string {
	s := d.digits(d.scale + 1)
	return s[:len(s)-d.scale]
}

// FracPart returns the digits of the fractional part.
// The number of digits is equal to the scale of the decimal.
func (d Decimal) FracPart() string {
	s := d.digits(d.scale + 1)
	return s[len(s)-d.scale:]
}

// Sign returns:
//
//	-1 if d < 0
//	 0 if d = 0
//	+1 if d > 0
func (d Decimal) Sign() int {
	switch {
	case d.coef == "":
		return 0
	case d.neg:
		return -1
	default:
		return 1
	}
}

// IsZero returns:
//
//	true  if d = 0
//	false otherwise
func (d Decimal) IsZero() bool {
	return d.coef == ""
}

// IsNeg returns:
//
//	true  if d < 0
//	false otherwise
func (d Decimal) IsNeg() bool {
	return d.neg
}

// IsPos returns:
//
//	true  if d > 0
//	false otherwise
func (d Decimal) IsPos() bool {
	return !d.neg && d.coef != ""
}

// Neg returns a decimal with the opposite sign.
// The negation of zero is zero.
func (d Decimal) Neg() Decimal {
	if d.IsZero() {
		return d
	}
	return Decimal{neg: !d.neg, coef: d.coef, scale: d.scale}
}

// Abs returns the absolute value of the decimal.
func (d Decimal) Abs() Decimal {
	return Decimal{coef: d.coef, scale: d.scale}
}

// OrderOfMagnitude returns the exponent of the most significant digit,
// that is floor(log10(|d|)).
// For example, the order of magnitude of 0.016 is -2 and of 100 is 2.
//
// Zero has no significant digits. Its order of magnitude is the exponent of
// its last fractional digit, -d.Scale(), so that rounding zero to it does
// not change the scale.
func (d Decimal) OrderOfMagnitude() int {
	if d.IsZero() {
		return -d.scale
	}
	return len(d.coef) - 1 - d.scale
}

// Round returns a decimal rounded to the multiple of 10^exp using
// [rounding half away from zero].
// For example, 3.125 rounded to the exponent -2 is 3.13 and 24 rounded to
// the exponent 1 is 20.
//
// Round never pads: if a non-zero decimal has no digits below 10^exp, it is
// returned unchanged. Zero, and any result equal to zero, is always returned
// as "+0" with scale 0, so "+0.0" rounded to the exponent -1 is "+0".
//
// [rounding half away from zero]: https://en.wikipedia.org/wiki/Rounding#Rounding_half_away_from_zero
func (d Decimal) Round(exp int) Decimal {
	// Rounding to an exponent above the most significant digit gives zero
	if exp > d.OrderOfMagnitude()+1 {
		return Decimal{}
	}
	drop := d.scale + exp
	if drop <= 0 {
		if d.IsZero() {
			return Decimal{}
		}
		return d
	}

	// Splitting coefficient into kept and dropped digits
	coef := d.digits(drop + 1)
	kept, rest := coef[:len(coef)-drop], coef[len(coef)-drop:]
	if rest[0] >= '5' {
		kept = addDigits(kept, "1")
	}

	// Restoring the place value of kept digits
	scale := 0
	if exp < 0 {
		scale = -exp
	} else {
		kept += strings.Repeat("0", exp)
	}

	r := newDecimal(d.neg, kept, scale)
	if r.IsZero() {
		return Decimal{}
	}
	return r
}

// rescaled returns the coefficient rescaled to the given scale.
// The scale must not be less than the scale of the decimal.
func (d Decimal) rescaled(scale int) string {
	if d.IsZero() {
		return ""
	}
	return d.coef + strings.Repeat("0", scale-d.scale)
}

// Add returns the exact sum d + e.
// The scale of the result is the larger of the two scales.
func (d Decimal) Add(e Decimal) Decimal {
	scale := max(d.scale, e.scale)
	x, y := d.rescaled(scale), e.rescaled(scale)
	if d.neg == e.neg {
		return newDecimal(d.neg, addDigits(x, y), scale)
	}
	switch cmpDigits(x, y) {
	case 1:
		return newDecimal(d.neg, subDigits(x, y), scale)
	case -1:
		return newDecimal(e.neg, subDigits(y, x), scale)
	default:
		return newDecimal(false, "", scale)
	}
}

// Sub returns the exact difference d - e.
// The scale of the result is the larger of the two scales.
func (d Decimal) Sub(e Decimal) Decimal {
	return d.Add(e.Neg())
}

// AbsDiff returns the exact absolute difference |d - e|.
func (d Decimal) AbsDiff(e Decimal) Decimal {
	return d.Sub(e).Abs()
}

// Cmp compares decimals and returns:
//
//	-1 if d < e
//	 0 if d = e
//	+1 if d > e
//
// Trailing zeros are ignored, so 1.0 and 1.00 are equal.
func (d Decimal) Cmp(e Decimal) int {
	switch ds, es := d.Sign(), e.Sign(); {
	case ds < es:
		return -1
	case ds > es:
		return 1
	case ds < 0:
		return -d.CmpAbs(e)
	default:
		return d.CmpAbs(e)
	}
}

// CmpAbs compares absolute values of decimals and returns:
//
//	-1 if |d| < |e|
//	 0 if |d| = |e|
//	+1 if |d| > |e|
func (d Decimal) CmpAbs(e Decimal) int {
	scale := max(d.scale, e.scale)
	return cmpDigits(d.rescaled(scale), e.rescaled(scale))
}

// Equal returns true if decimals are numerically equal.
func (d Decimal) Equal(e Decimal) bool {
	return d.Cmp(e) == 0
}

// Max returns the larger decimal.
// If decimals are equal, d is returned.
func (d Decimal) Max(e Decimal) Decimal {
	if d.Cmp(e) >= 0 {
		return d
	}
	return e
}

// Min returns the smaller decimal.
// If decimals are equal, d is returned.
func (d Decimal) Min(e Decimal) Decimal {
	if d.Cmp(e) <= 0 {
		return d
	}
	return e
}

// addDigits returns the sum of two non-negative digit strings.
// The result may have a leading zero.
func addDigits(a, b string) string {
	if len(a) < len(b) {
		a, b = b, a
	}
	buf := make([]byte, len(a)+1)
	carry := byte(0)
	for i := 0; i < len(a); i++ {
		x := a[len(a)-1-i] - '0' + carry
		if i < len(b) {
			x += b[len(b)-1-i] - '0'
		}
		carry = x / 10
		buf[len(buf)-1-i] = x%10 + '0'
	}
	buf[0] = carry + '0'
	return string(buf)
}

// subDigits returns the difference of two non-negative digit strings.
// The first string must not be less than the second one.
// The result may have leading zeros.
func subDigits(a, b string) string {
	buf := make([]byte, len(a))
	borrow := 0
	for i := 0; i < len(a); i++ {
		x := int(a[len(a)-1-i]-'0') - borrow
		if i < len(b) {
			x -= int(b[len(b)-1-i] - '0')
		}
		borrow = 0
		if x < 0 {
			x += 10
			borrow = 1
		}
		buf[len(a)-1-i] = byte(x) + '0'
	}
	return string(buf)
}

// cmpDigits compares two digit strings without leading zeros.
func cmpDigits(a, b string) int {
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}
	return strings.Compare(a, b)
}

// plain returns the decimal without a plus sign.
func (d Decimal) plain() string {
	var b strings.Builder
	if d.neg {
		b.WriteByte('-')
	}
	b.WriteString(d.IntPart())
	if d.scale > 0 {
		b.WriteByte('.')
		b.WriteString(d.FracPart())
	}
	return b.String()
}

// String implements the [fmt.Stringer] interface and returns an explicitly
// signed representation of the decimal, such as "+24.01" or "-1205".
// The result can be parsed back with [ParseDecimal].
// See also method [Decimal.Format].
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (d Decimal) String() string {
	if d.neg {
		return d.plain()
	}
	return "+" + d.plain()
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
// See also constructor [ParseDecimal].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (d *Decimal) UnmarshalText(text []byte) error {
	var err error
	*d, err = ParseDecimal(string(text))
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", Decimal{}, err)
	}
	return nil
}

// MarshalText implements the [encoding.TextMarshaler] interface.
// See also method [Decimal.String].
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (d Decimal) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalJSON implements the [json.Unmarshaler] interface.
// Both JSON strings and JSON numbers without exponent are accepted.
//
// [json.Unmarshaler]: https://pkg.go.dev/encoding/json#Unmarshaler
func (d *Decimal) UnmarshalJSON(text []byte) error {
	if string(text) == "null" {
		return nil
	}
	if len(text) >= 2 && text[0] == '"' && text[len(text)-1] == '"' {
		text = text[1 : len(text)-1]
	}
	return d.UnmarshalText(text)
}

// MarshalJSON implements the [json.Marshaler] interface.
// MarshalJSON always returns a JSON string, such as "+24.01".
//
// [json.Marshaler]: https://pkg.go.dev/encoding/json#Marshaler
func (d Decimal) MarshalJSON() ([]byte, error) {
	return strconv.AppendQuote(nil, d.String()), nil
}

// Scan implements the [sql.Scanner] interface.
//
// [sql.Scanner]: https://pkg.go.dev/database/sql#Scanner
func (d *Decimal) Scan(value any) error {
	var err error
	switch value := value.(type) {
	case string:
		*d, err = ParseDecimal(value)
	case []byte:
		*d, err = ParseDecimal(string(value))
	case int64:
		*d, err = ParseDecimal(strconv.FormatInt(value, 10))
	case float64:
		*d, err = ParseDecimal(strconv.FormatFloat(value, 'f', -1, 64))
	case nil:
		err = fmt.Errorf("%T does not support null values", Decimal{})
	default:
		err = fmt.Errorf("type %T is not supported", value)
	}
	if err != nil {
		err = fmt.Errorf("converting from %T to %T: %w", value, Decimal{}, err)
	}
	return err
}

// Value implements the [driver.Valuer] interface.
// The plus sign is omitted.
//
// [driver.Valuer]: https://pkg.go.dev/database/sql/driver#Valuer
func (d Decimal) Value() (driver.Value, error) {
	return d.plain(), nil
}

// Format implements the [fmt.Formatter] interface.
// The following [format verbs] are available:
//
//	| Verb   | Example  | Description      |
//	| ------ | -------- | ---------------- |
//	| %s, %v | +5.670   | Signed decimal   |
//	| %q     | "+5.670" | Quoted decimal   |
//	| %f     | 5.670    | Plain decimal    |
//
// The '-' format flag can be used with all verbs.
// The '+' and '0' format flags can be used with the %f verb.
//
// Precision is only supported for the %f verb.
// The default precision is equal to the actual scale of the decimal.
// A smaller precision rounds the decimal half away from zero, a larger one
// pads it with zeros.
//
// [format verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (d Decimal) Format(state fmt.State, verb rune) {
	var body, sign string
	switch verb {
	case 's', 'S', 'v', 'V':
		body = d.String()
	case 'q', 'Q':
		body = strconv.Quote(d.String())
	case 'f', 'F':
		tzeros := 0
		if p, ok := state.Precision(); ok {
			if p < d.Scale() {
				d = d.Round(-p)
			}
			tzeros = p - d.Scale()
		}
		switch {
		case d.IsNeg():
			sign = "-"
		case state.Flag('+'):
			sign = "+"
		}
		body = d.Abs().plain()
		if tzeros > 0 {
			if d.Scale() == 0 {
				body += "."
			}
			body += strings.Repeat("0", tzeros)
		}
	default:
		//nolint:errcheck
		fmt.Fprintf(state, "%%!%c(quantity.Decimal=%s)", verb, d.String())
		return
	}

	// Padding
	pad := ""
	width := len(sign) + len(body)
	if w, ok := state.Width(); ok && w > width {
		switch {
		case state.Flag('-'):
			body += strings.Repeat(" ", w-width)
		case state.Flag('0') && (verb == 'f' || verb == 'F'):
			pad = strings.Repeat("0", w-width)
		default:
			sign = strings.Repeat(" ", w-width) + sign
		}
	}

	//nolint:errcheck
	state.Write([]byte(sign + pad + body))
}
