package units

import "testing"

func TestFormatTgas(t *testing.T) {
	cases := []struct {
		gas  uint64
		want string
	}{
		{gas: 30_000_000_000_000, want: "30 Tgas"},
		{gas: 60_000_000_000_000, want: "60 Tgas"},
		{gas: 1_500_000_000_000, want: "1 Tgas"},
		{gas: 999_999_999_999, want: "0 Tgas"},
		{gas: 0, want: "0 Tgas"},
	}
	for _, tc := range cases {
		if got := FormatTgas(tc.gas); got != tc.want {
			t.Fatalf("FormatTgas(%d) = %q, want %q", tc.gas, got, tc.want)
		}
	}
}

func TestTgasFromGasMax(t *testing.T) {
	if got := TgasFromGas(^uint64(0)); got != 18446744 {
		t.Fatalf("unexpected max conversion: %d", got)
	}
}

func TestFormatNear(t *testing.T) {
	if got := FormatNear("0.1"); got != "0.1 NEAR" {
		t.Fatalf("unexpected near amount: %q", got)
	}
	if got := FormatNear(""); got != " NEAR" {
		t.Fatalf("empty amount should pass through, got %q", got)
	}
}
