/*
Package quantity implements the display of measured values with uncertainty.
A [Quantity] combines an exact [Decimal] amount with an uncertainty interval
and a unit, and a [Formatter] renders it as text such as "24±0.01",
"-1205 m" or "<USD>5".

# Features

  - Exact decimal values of unlimited precision, without binary
    floating-point conversions
  - Immutable values and formatters, ensuring safe usage across multiple
    goroutines
  - Automatic rounding to the order of uncertainty of a quantity
  - Pluggable number formatters and unit resolvers
  - Built-in vocabulary of common unit symbols
  - Conversion from [decimal.Decimal], [ssdecimal.Decimal] and [money.Amount]

# Representation

A Decimal is a sign, a string of coefficient digits and a scale, which is
the number of digits after the decimal point.
Trailing zeros are part of the value, so "+1.20" and "+1.2" are equal but
have different scales.
A Quantity consists of an amount, an upper bound, a lower bound and a unit
identifier.
The bounds always satisfy lowerBound ≤ amount ≤ upperBound.
The unit "1" denotes a dimensionless quantity.

# Rounding

Before formatting, the amount and the uncertainty margin are rounded to the
same exponent using rounding half away from zero.
The exponent is chosen by the [Rounding] option:

  - [RoundAuto] uses the [Quantity.OrderOfUncertainty], the order of
    magnitude of the margin;
  - [RoundOff] keeps all digits;
  - [RoundTo] uses a fixed exponent.

Rounding never adds digits to the amount.
The margin is padded with zeros to the rounding exponent, so that
3.125±0.1 rounded to hundredths is shown as "3.13±0.10".

# Units

Unit labels are looked up with a [UnitResolver].
The default [Vocabulary] resolves item ids and entity URIs of common units,
such as "Q11573" or "http://www.wikidata.org/entity/Q11573", to symbols.
Unknown identifiers are shown as they are.
Dimensionless quantities never have a label.

# Errors

Parsing decimals and rounding options, and constructing quantities, return
errors wrapping [ErrInvalidDecimal], [ErrInvalidOption], [ErrInvalidBounds]
or [ErrInvalidUnit].
Formatting a constructed quantity never fails.
The Must* constructors panic instead of returning an error.

[decimal.Decimal]: https://pkg.go.dev/github.com/govalues/decimal#Decimal
[ssdecimal.Decimal]: https://pkg.go.dev/github.com/shopspring/decimal#Decimal
[money.Amount]: https://pkg.go.dev/github.com/govalues/money#Amount
*/
package quantity
