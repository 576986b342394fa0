package legacy

import "testing"

const txHash = "4HxfV69Brk7fJd3NC63ti2H3QCgwiUiMAPvwNmGWbVXo"

func TestTxStatusTestnet(t *testing.T) {
	got := mustTranslate(t, "testnet", "tx-status", txHash)
	if got != "transaction view-status "+txHash+" network-config testnet" {
		t.Fatalf("unexpected command: %s", got)
	}
}

func TestTxStatusMainnet(t *testing.T) {
	for _, alias := range Aliases(OptNetworkID) {
		got := mustTranslate(t, "testnet", "transaction-status", txHash, flag(alias), "mainnet")
		if got != "transaction view-status "+txHash+" network-config mainnet" {
			t.Fatalf("alias %s: unexpected command: %s", alias, got)
		}
	}
}

func TestTxStatusIgnoresTrailingArguments(t *testing.T) {
	args, err := ParseTxStatus([]string{txHash, "bob.testnet", "--accountId", "bob.testnet"})
	if err != nil {
		t.Fatalf("ParseTxStatus failed: %v", err)
	}
	if args.Hash != txHash {
		t.Fatalf("unexpected hash: %s", args.Hash)
	}
}
