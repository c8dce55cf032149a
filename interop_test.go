package quantity

import (
	"testing"

	"github.com/govalues/decimal"
	"github.com/govalues/money"
	ssdecimal "github.com/shopspring/decimal"
)

func TestNewDecimalFromFixed(t *testing.T) {
	tests := []struct {
		d, want string
	}{
		{"0", "+0"},
		{"0.00", "+0.00"},
		{"-1.2300", "-1.2300"},
		{"1205", "+1205"},
		{"0.016", "+0.016"},
		{"9999999999999999999", "+9999999999999999999"},
	}
	for _, tt := range tests {
		d := decimal.MustParse(tt.d)
		if got := NewDecimalFromFixed(d).String(); got != tt.want {
			t.Errorf("NewDecimalFromFixed(%v) = %q, want %q", d, got, tt.want)
		}
	}
}

func TestDecimal_Fixed(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []string{"+0", "-1.2300", "+1205", "+0.016", "+9999999999999999999"}
		for _, tt := range tests {
			d := MustParseDecimal(tt)
			f, err := d.Fixed()
			if err != nil {
				t.Errorf("%q.Fixed() failed: %v", d, err)
				continue
			}
			if got := NewDecimalFromFixed(f); got != d {
				t.Errorf("NewDecimalFromFixed(%q.Fixed()) = %q, want %q", d, got, d)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := []string{
			"+99999999999999999999",
			"+0.12345678901234567890123",
		}
		for _, tt := range tests {
			d := MustParseDecimal(tt)
			if _, err := d.Fixed(); err == nil {
				t.Errorf("%q.Fixed() did not fail", d)
			}
		}
	})
}

func TestNewDecimalFromShopspring(t *testing.T) {
	tests := []struct {
		d    ssdecimal.Decimal
		want string
	}{
		{ssdecimal.Zero, "+0"},
		{ssdecimal.New(12, 3), "+12000"},
		{ssdecimal.New(-150, -2), "-1.50"},
		{ssdecimal.New(16, -3), "+0.016"},
		{ssdecimal.RequireFromString("123456789012345678901234567890.5"), "+123456789012345678901234567890.5"},
	}
	for _, tt := range tests {
		if got := NewDecimalFromShopspring(tt.d).String(); got != tt.want {
			t.Errorf("NewDecimalFromShopspring(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}

func TestDecimal_Shopspring(t *testing.T) {
	tests := []string{"+0", "-1.50", "+1205", "+0.016", "+123456789012345678901234567890.5"}
	for _, tt := range tests {
		d := MustParseDecimal(tt)
		s := d.Shopspring()
		if !s.Equal(ssdecimal.RequireFromString(tt)) {
			t.Errorf("%q.Shopspring() = %v, want %v", d, s, tt)
		}
		if got := NewDecimalFromShopspring(s); got != d {
			t.Errorf("NewDecimalFromShopspring(%q.Shopspring()) = %q, want %q", d, got, d)
		}
	}
}

func TestNewQuantityFromAmount(t *testing.T) {
	tests := []struct {
		curr, amount string
		wantString   string
		wantFormat   string
	}{
		{"USD", "5", "+5.00 [+5.00, +5.00] USD", "5.00 USD"},
		{"EUR", "-1205.5", "-1205.50 [-1205.50, -1205.50] EUR", "-1205.50 EUR"},
		{"JPY", "100", "+100 [+100, +100] JPY", "100 JPY"},
	}
	f := NewFormatter(nil, nil)
	for _, tt := range tests {
		a := money.MustParseAmount(tt.curr, tt.amount)
		q := NewQuantityFromAmount(a)
		if !q.IsExact() {
			t.Errorf("NewQuantityFromAmount(%v).IsExact() = false, want true", a)
		}
		if got := q.String(); got != tt.wantString {
			t.Errorf("NewQuantityFromAmount(%v) = %q, want %q", a, got, tt.wantString)
		}
		if got := f.Format(q); got != tt.wantFormat {
			t.Errorf("Format(NewQuantityFromAmount(%v)) = %q, want %q", a, got, tt.wantFormat)
		}
	}
}
