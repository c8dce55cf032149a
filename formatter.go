package quantity

import (
	"strings"
)

// NumberOptions are the options passed to a [NumberFormatter].
type NumberOptions struct {
	// ForceSign prints "+" in front of non-negative numbers.
	ForceSign bool
	// MinScale is the minimum number of digits after the decimal separator.
	// Missing digits are padded with zeros.
	MinScale int
}

// NumberFormatter formats a single, already rounded decimal.
// Implementations must not round.
type NumberFormatter interface {
	FormatNumber(d Decimal, opts NumberOptions) string
}

// DecimalFormatter is the default [NumberFormatter].
// It prints the sign of negative numbers, the integer digits and the
// fractional digits of a decimal without grouping.
// The zero value uses "." as the decimal separator.
type DecimalFormatter struct {
	// Separator is the decimal separator, "." if empty.
	Separator string
}

// FormatNumber implements the [NumberFormatter] interface.
func (f DecimalFormatter) FormatNumber(d Decimal, opts NumberOptions) string {
	sep := f.Separator
	if sep == "" {
		sep = "."
	}

	var b strings.Builder

	// Arithmetic sign
	switch {
	case d.IsNeg():
		b.WriteByte('-')
	case opts.ForceSign:
		b.WriteByte('+')
	}

	// Integer digits
	b.WriteString(d.IntPart())

	// Fractional digits
	tzeros := max(opts.MinScale-d.Scale(), 0)
	if d.Scale() > 0 || tzeros > 0 {
		b.WriteString(sep)
		b.WriteString(d.FracPart())
		b.WriteString(strings.Repeat("0", tzeros))
	}

	return b.String()
}

// Formatter renders quantities as text, such as "24±0.01" or "-1205±100 m".
//
// The amount and the margin are rounded to the same exponent, formatted
// with a [NumberFormatter] and composed with the label returned by a
// [UnitResolver].
// Formatter is immutable and safe for concurrent use by multiple goroutines.
type Formatter struct {
	numbers NumberFormatter
	units   UnitResolver
	opts    Options
}

// NewFormatter returns a formatter using the given collaborators.
// A nil number formatter is replaced with [DecimalFormatter] and a nil unit
// resolver with [Vocabulary].
// Options are applied on top of [DefaultOptions].
func NewFormatter(numbers NumberFormatter, units UnitResolver, opts ...Option) *Formatter {
	if numbers == nil {
		numbers = DecimalFormatter{}
	}
	if units == nil {
		units = Vocabulary
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Formatter{numbers: numbers, units: units, opts: o}
}

// Options returns the rendering options of the formatter.
func (f *Formatter) Options() Options {
	return f.opts
}

// Format returns the text of the quantity:
//
//	<number> <unit>
//
// where the number is the amount optionally followed by "±margin".
// The unit label and the space are omitted for dimensionless quantities,
// for units without label, and when units are disabled.
// If a template is set, $1 is replaced with the number and $2 with the unit
// label, which may be empty.
func (f *Formatter) Format(q Quantity) string {
	num := f.FormatNumber(q)

	label := ""
	if f.opts.ApplyUnit {
		label = f.unitLabel(q.Unit())
	}

	if f.opts.Template != "" {
		r := strings.NewReplacer("$1", num, "$2", label)
		return r.Replace(f.opts.Template)
	}
	if label == "" {
		return num
	}
	return num + " " + label
}

// unitLabel returns the label of the unit, or an empty string if the unit has
// no label.
func (f *Formatter) unitLabel(unit string) string {
	if unit == DimensionlessUnit {
		return ""
	}
	label, ok := f.units.UnitLabel(unit)
	if !ok {
		return ""
	}
	return label
}

// FormatNumber returns the number portion of the quantity text: the rounded
// amount, followed by "±margin" if the margin is shown and not zero.
func (f *Formatter) FormatNumber(q Quantity) string {
	amount, margin := q.Amount(), q.Margin()
	mscale := 0
	if exp, ok := f.opts.Rounding.exponent(q); ok {
		amount = amount.Round(exp)
		margin = margin.Round(exp)
		mscale = max(-exp, 0)
	}

	text := f.numbers.FormatNumber(amount, NumberOptions{ForceSign: f.opts.ForceSign})
	if !f.opts.ShowMargin || margin.IsZero() {
		return text
	}
	return text + "±" + f.numbers.FormatNumber(margin, NumberOptions{MinScale: mscale})
}
