package quantity_test

import (
	"fmt"

	"github.com/govalues/money"
	"github.com/govalues/quantity"
	ssdecimal "github.com/shopspring/decimal"
)

type Measurement struct {
	Name     string
	Quantity quantity.Quantity
}

func Report(f *quantity.Formatter, measurements []Measurement) []string {
	lines := make([]string, 0, len(measurements))
	for _, m := range measurements {
		lines = append(lines, m.Name+": "+f.Format(m.Quantity))
	}
	return lines
}

// In this example, a list of measurements with different units and
// uncertainties is rendered with automatic rounding.
func Example_measurementReport() {
	measurements := []Measurement{
		{"Speed of sound", quantity.MustParseQuantity("343.2", quantity.EntityPrefix+"Q182429", "343.25", "343.15")},
		{"Elevation", quantity.MustParseQuantity("-1205", "Q11573", "-1105", "-1305")},
		{"Room temperature", quantity.MustParseQuantity("21.64", "Q25267", "21.7", "21.6")},
		{"Humidity", quantity.MustParseQuantity("45", "Q11229", "", "")},
		{"Refractive index", quantity.MustParseQuantity("1.333", "1", "1.3331", "1.3329")},
	}

	f := quantity.NewFormatter(nil, nil)
	for _, line := range Report(f, measurements) {
		fmt.Println(line)
	}

	// Output:
	// Speed of sound: 343.2±0.05 m/s
	// Elevation: -1205±100 m
	// Room temperature: 21.64±0.06 °C
	// Humidity: 45 %
	// Refractive index: 1.333±0.0001
}

// This example renders prices, which are exact quantities, with a template
// placing the currency code in front of the number.
func Example_prices() {
	prices := []money.Amount{
		money.MustParseAmount("USD", "5"),
		money.MustParseAmount("JPY", "1200"),
		money.MustParseAmount("EUR", "-0.5"),
	}

	f := quantity.NewFormatter(nil, quantity.IdentityUnits, quantity.WithTemplate("<$2>$1"))
	for _, p := range prices {
		fmt.Println(f.Format(quantity.NewQuantityFromAmount(p)))
	}

	// Output:
	// <USD>5.00
	// <JPY>1200
	// <EUR>-0.50
}

func ExampleParseDecimal() {
	fmt.Println(quantity.ParseDecimal("-1.230"))
	fmt.Println(quantity.ParseDecimal("24"))
	// Output:
	// -1.230 <nil>
	// +24 <nil>
}

func ExampleMustParseDecimal() {
	fmt.Println(quantity.MustParseDecimal("24.01"))
	// Output: +24.01
}

func ExampleDecimal_Round() {
	d := quantity.MustParseDecimal("3.125")
	fmt.Println(d.Round(-4))
	fmt.Println(d.Round(-3))
	fmt.Println(d.Round(-2))
	fmt.Println(d.Round(-1))
	fmt.Println(d.Round(0))
	fmt.Println(d.Round(1))
	// Output:
	// +3.125
	// +3.125
	// +3.13
	// +3.1
	// +3
	// +0
}

func ExampleDecimal_OrderOfMagnitude() {
	a := quantity.MustParseDecimal("0.016")
	b := quantity.MustParseDecimal("100")
	c := quantity.MustParseDecimal("-1205")
	fmt.Println(a.OrderOfMagnitude())
	fmt.Println(b.OrderOfMagnitude())
	fmt.Println(c.OrderOfMagnitude())
	// Output:
	// -2
	// 2
	// 3
}

func ExampleDecimal_Sub() {
	a := quantity.MustParseDecimal("24.01")
	b := quantity.MustParseDecimal("23.99")
	fmt.Println(a.Sub(b))
	// Output: +0.02
}

func ExampleDecimal_Add() {
	a := quantity.MustParseDecimal("0.1")
	b := quantity.MustParseDecimal("0.25")
	fmt.Println(a.Add(b))
	// Output: +0.35
}

func ExampleDecimal_Format() {
	d := quantity.MustParseDecimal("-5.67")
	e := quantity.MustParseDecimal("5.67")
	fmt.Printf("%v\n", d)
	fmt.Printf("%q\n", d)
	fmt.Printf("%f\n", d)
	fmt.Printf("%.1f\n", d)
	fmt.Printf("%.4f\n", d)
	fmt.Printf("%+f\n", e)
	fmt.Printf("[%8.1f]\n", e)
	fmt.Printf("[%-8f]\n", e)
	fmt.Printf("%08f\n", e)
	// Output:
	// -5.67
	// "-5.67"
	// -5.67
	// -5.7
	// -5.6700
	// +5.67
	// [     5.7]
	// [5.67    ]
	// 00005.67
}

func ExampleNewQuantity() {
	a := quantity.MustParseDecimal("24")
	u := quantity.MustParseDecimal("24.01")
	l := quantity.MustParseDecimal("23.99")
	fmt.Println(quantity.NewQuantity(a, "1", u, l))
	// Output: +24 [+23.99, +24.01] 1 <nil>
}

func ExampleParseQuantity() {
	fmt.Println(quantity.ParseQuantity("-1205", "Q11573", "-1105", "-1305"))
	fmt.Println(quantity.ParseQuantity("5", "USD", "", ""))
	// Output:
	// -1205 [-1305, -1105] Q11573 <nil>
	// +5 [+5, +5] USD <nil>
}

func ExampleQuantity_Margin() {
	q := quantity.MustParseQuantity("10", "1", "10.5", "8")
	fmt.Println(q.Margin())
	fmt.Println(q.Uncertainty())
	// Output:
	// +2
	// +2.5
}

func ExampleQuantity_OrderOfUncertainty() {
	a := quantity.MustParseQuantity("2", "1", "2.016", "1.984")
	b := quantity.MustParseQuantity("-1205", "Q11573", "-1105", "-1305")
	c := quantity.MustParseQuantity("3.025", "1", "", "")
	fmt.Println(a.OrderOfUncertainty())
	fmt.Println(b.OrderOfUncertainty())
	fmt.Println(c.OrderOfUncertainty())
	// Output:
	// -2
	// 0
	// -3
}

func ExampleNewFormatter() {
	units := quantity.UnitLabels{Labels: map[string]string{"Q11573": "metres"}}
	f := quantity.NewFormatter(quantity.DecimalFormatter{Separator: ","}, units)
	q := quantity.MustParseQuantity("2", "Q11573", "2.016", "1.984")
	fmt.Println(f.Format(q))
	// Output: 2±0,02 metres
}

func ExampleFormatter_Format() {
	q := quantity.MustParseQuantity("3.125", "1", "3.2", "3.0")
	fmt.Println(quantity.NewFormatter(nil, nil).Format(q))
	fmt.Println(quantity.NewFormatter(nil, nil, quantity.WithRounding(quantity.RoundTo(-2))).Format(q))
	fmt.Println(quantity.NewFormatter(nil, nil, quantity.WithRounding(quantity.RoundOff)).Format(q))
	fmt.Println(quantity.NewFormatter(nil, nil, quantity.WithoutMargin(), quantity.WithForceSign()).Format(q))
	// Output:
	// 3.1±0.1
	// 3.13±0.13
	// 3.125±0.125
	// +3.1
}

func ExampleFormatter_FormatNumber() {
	q := quantity.MustParseQuantity("-1205", "Q11573", "-1105", "-1305")
	f := quantity.NewFormatter(nil, nil, quantity.WithRounding(quantity.RoundTo(-2)))
	fmt.Println(f.FormatNumber(q))
	// Output: -1205±100.00
}

func ExampleParseRounding() {
	fmt.Println(quantity.ParseRounding(true))
	fmt.Println(quantity.ParseRounding(false))
	fmt.Println(quantity.ParseRounding("-2"))
	fmt.Println(quantity.ParseRounding(-2.0))
	fmt.Println(quantity.ParseRounding("yes"))
	// Output:
	// auto <nil>
	// off <nil>
	// -2 <nil>
	// -2 <nil>
	// auto invalid option: rounding "yes" is neither a boolean nor an integer
}

func ExampleUnitResolver() {
	fmt.Println(quantity.Vocabulary.UnitLabel("Q11573"))
	fmt.Println(quantity.Vocabulary.UnitLabel(quantity.EntityPrefix + "Q25267"))
	fmt.Println(quantity.Vocabulary.UnitLabel("furlong"))
	fmt.Println(quantity.IdentityUnits.UnitLabel("Q11573"))
	// Output:
	// m true
	// °C true
	// furlong true
	// Q11573 true
}

func ExampleVocabularyItems() {
	for _, u := range quantity.VocabularyItems()[:3] {
		fmt.Println(u.ID, u.Symbol, u.Name)
	}
	// Output:
	// Q11229 % percent
	// Q11570 kg kilogram
	// Q11573 m metre
}

func ExampleNewQuantityFromAmount() {
	a := money.MustParseAmount("USD", "5")
	q := quantity.NewQuantityFromAmount(a)
	fmt.Println(q)
	fmt.Println(quantity.NewFormatter(nil, nil).Format(q))
	// Output:
	// +5.00 [+5.00, +5.00] USD
	// 5.00 USD
}

func ExampleNewDecimalFromShopspring() {
	d := ssdecimal.New(-150, -2)
	fmt.Println(quantity.NewDecimalFromShopspring(d))
	// Output: -1.50
}
