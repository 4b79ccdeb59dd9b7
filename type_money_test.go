package cgt

import "testing"

func TestMoney_AddSub(t *testing.T) {
	a := USD(1050) // $10.50
	b := USD(275)  // $2.75

	if got := a.Add(b); !got.Equal(USD(1325)) {
		t.Errorf("Add = %s, want $13.25", got)
	}
	if got := a.Sub(b); !got.Equal(USD(775)) {
		t.Errorf("Sub = %s, want $7.75", got)
	}
	if got := b.Sub(a); !got.Equal(USD(-775)) {
		t.Errorf("Sub = %s, want -$7.75", got)
	}
}

func TestMoney_MulRoundsToMinorUnit(t *testing.T) {
	tests := []struct {
		name  string
		price Money
		qty   Quantity
		want  Money
	}{
		{"integral", USD(1000), Q(100), USD(100000)},
		{"fractional shares", USD(1000), Q(2.5), USD(2500)},
		{"half cent rounds to even down", USD(25), Q(2.5), USD(62)}, // 62.5 -> 62
		{"half cent rounds to even up", USD(35), Q(2.5), USD(88)},   // 87.5 -> 88
		{"tiny fraction", USD(1), Q(0.333), USD(0)},
	}

	for _, tt := range tests {
		if got := tt.price.Mul(tt.qty); !got.Equal(tt.want) {
			t.Errorf("%s: %s.Mul(%s) = %s, want %s", tt.name, tt.price, tt.qty, got, tt.want)
		}
	}
}

func TestMoney_DivRoundsToMinorUnit(t *testing.T) {
	tests := []struct {
		name string
		m    Money
		qty  Quantity
		want Money
	}{
		{"exact", USD(100000), Q(100), USD(1000)},
		{"repeating", USD(1000), Q(3), USD(333)},
		{"half cent rounds to even", USD(125), Q(2), USD(62)}, // 62.5 -> 62
	}

	for _, tt := range tests {
		if got := tt.m.Div(tt.qty); !got.Equal(tt.want) {
			t.Errorf("%s: %s.Div(%s) = %s, want %s", tt.name, tt.m, tt.qty, got, tt.want)
		}
	}
}

func TestMoney_String(t *testing.T) {
	tests := []struct {
		m    Money
		want string
	}{
		{USD(123456), "$1,234.56"},
		{USD(5), "$0.05"},
		{USD(-270), "-$2.70"},
		{Cents(99, "GBP"), "£0.99"},
	}

	for _, tt := range tests {
		if got := tt.m.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestMoney_SignedString(t *testing.T) {
	if got := USD(0).SignedString(); got != "-" {
		t.Errorf("zero SignedString() = %q, want \"-\"", got)
	}
	if got := USD(4000).SignedString(); got != "+$40.00" {
		t.Errorf("SignedString() = %q, want %q", got, "+$40.00")
	}
	if got := USD(-4000).SignedString(); got != "-$40.00" {
		t.Errorf("SignedString() = %q, want %q", got, "-$40.00")
	}
}

func TestMoney_WeakCurrency(t *testing.T) {
	// Accumulators start from the zero value and adopt the first real currency.
	var total Money
	total = total.Add(USD(100))
	if total.Currency() != "USD" {
		t.Errorf("zero value Add(USD) currency = %q, want USD", total.Currency())
	}
}
