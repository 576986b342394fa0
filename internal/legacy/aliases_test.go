package legacy

import "testing"

func TestAliasesStartWithCanonicalName(t *testing.T) {
	for opt := range aliasTable {
		aliases := Aliases(opt)
		if len(aliases) == 0 || aliases[0] != string(opt) {
			t.Fatalf("option %s: canonical name must come first, got %q", opt, aliases)
		}
	}
}

func TestAliasesAreUniqueAcrossOptions(t *testing.T) {
	seen := map[string]Option{}
	for opt := range aliasTable {
		for _, alias := range Aliases(opt) {
			if prev, ok := seen[alias]; ok {
				t.Fatalf("alias %s used by both %s and %s", alias, prev, opt)
			}
			seen[alias] = opt
		}
	}
}

func TestAliasesReturnsCopy(t *testing.T) {
	a := Aliases(OptNetworkID)
	a[0] = "mutated"
	if Aliases(OptNetworkID)[0] != "network-id" {
		t.Fatal("Aliases must not expose the backing table")
	}
}

func TestAliasesPanicsOnUnknownOption(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for unknown option")
		}
	}()
	Aliases(Option("frobnicate"))
}
