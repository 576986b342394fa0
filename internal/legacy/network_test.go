package legacy

import "testing"

func TestResolveNetworkID(t *testing.T) {
	tests := []struct {
		explicit, ambient, want string
	}{
		{"", "testnet", "testnet"},
		{"mainnet", "testnet", "mainnet"},
		{"localnet", "", "localnet"},
	}
	for _, tc := range tests {
		if got := ResolveNetworkID(tc.explicit, tc.ambient); got != tc.want {
			t.Fatalf("ResolveNetworkID(%q, %q) = %q, want %q", tc.explicit, tc.ambient, got, tc.want)
		}
	}
}
