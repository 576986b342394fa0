package legacy

import "testing"

const seedPhrase = "crisp clump stay mean dynamic become fashion mail bike disorder chronic sight"

func TestCreateAccountUsingFaucet(t *testing.T) {
	want := "account create-account sponsor-by-faucet-service bob.testnet autogenerate-new-keypair save-to-keychain network-config testnet create"
	for _, alias := range Aliases(OptUseFaucet) {
		got := mustTranslate(t, "testnet", "create-account", "bob.testnet", flag(alias))
		if got != want {
			t.Fatalf("alias %s: unexpected command:\n got %s\nwant %s", alias, got, want)
		}
	}
}

func TestCreateAccountVerbAlias(t *testing.T) {
	got := mustTranslate(t, "testnet", "create", "bob.testnet", "--useFaucet")
	want := mustTranslate(t, "testnet", "create-account", "bob.testnet", "--useFaucet")
	if got != want {
		t.Fatalf("verb alias changed output:\n got %s\nwant %s", got, want)
	}
}

func TestCreateAccountUsingMasterAccountDefaultBalance(t *testing.T) {
	want := "account create-account fund-myself bob.testnet 1 NEAR autogenerate-new-keypair save-to-keychain sign-as alice.testnet network-config testnet sign-with-keychain send"
	for _, alias := range Aliases(OptUseAccount) {
		got := mustTranslate(t, "testnet", "create-account", "bob.testnet", flag(alias), "alice.testnet")
		if got != want {
			t.Fatalf("alias %s: unexpected command:\n got %s\nwant %s", alias, got, want)
		}
	}
}

func TestCreateAccountDefaultBalanceToken(t *testing.T) {
	args, err := ParseCreateAccount([]string{"bob.testnet", "--useAccount", "alice.testnet"})
	if err != nil {
		t.Fatalf("ParseCreateAccount failed: %v", err)
	}
	cmd, err := args.Build("testnet")
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if cmd[4] != "1 NEAR" {
		t.Fatalf("expected a single \"1 NEAR\" token, got %q", cmd[4])
	}
}

func TestCreateAccountWithInitialBalance(t *testing.T) {
	want := "account create-account fund-myself bob.testnet 0.1 NEAR autogenerate-new-keypair save-to-keychain sign-as alice.testnet network-config testnet sign-with-keychain send"
	for _, alias := range Aliases(OptInitialBalance) {
		got := mustTranslate(t, "testnet", "create-account", "bob.testnet", "--useAccount", "alice.testnet", flag(alias), "0.1")
		if got != want {
			t.Fatalf("alias %s: unexpected command:\n got %s\nwant %s", alias, got, want)
		}
	}
}

func TestCreateAccountSeedPhraseAndFaucet(t *testing.T) {
	want := "account create-account sponsor-by-faucet-service bob.testnet use-manually-provided-seed-phrase " + seedPhrase + " network-config testnet create"
	for _, alias := range Aliases(OptSeedPhrase) {
		got := mustTranslate(t, "testnet", "create-account", "bob.testnet", flag(alias), seedPhrase, "--useFaucet")
		if got != want {
			t.Fatalf("alias %s: unexpected command:\n got %s\nwant %s", alias, got, want)
		}
	}
}

func TestCreateAccountPublicKeyMasterAccountAndBalance(t *testing.T) {
	want := "account create-account fund-myself bob.testnet 0.1 NEAR use-manually-provided-public-key 78MziB9aTNsu19MHHVrfWy762S5mAqXgCB6Vgvrv9uGV sign-as alice.testnet network-config testnet sign-with-keychain send"
	for _, alias := range Aliases(OptPublicKey) {
		got := mustTranslate(t, "testnet",
			"create-account", "bob.testnet",
			"--useAccount", "alice.testnet",
			flag(alias), "78MziB9aTNsu19MHHVrfWy762S5mAqXgCB6Vgvrv9uGV",
			"--initialBalance", "0.1",
		)
		if got != want {
			t.Fatalf("alias %s: unexpected command:\n got %s\nwant %s", alias, got, want)
		}
	}
}

func TestCreateAccountLedgerKeyWithFaucet(t *testing.T) {
	want := "account create-account sponsor-by-faucet-service bob.testnet use-ledger network-config testnet create"
	for _, alias := range Aliases(OptUseLedgerPK) {
		got := mustTranslate(t, "testnet", "create-account", "bob.testnet", flag(alias), "--useFaucet")
		if got != want {
			t.Fatalf("alias %s: unexpected command:\n got %s\nwant %s", alias, got, want)
		}
	}
}

func TestCreateAccountLedgerKeyDoesNotSuppressSeedPhrase(t *testing.T) {
	got := mustTranslate(t, "testnet", "create-account", "bob.testnet", "--useLedgerPK", "--seedPhrase", seedPhrase, "--useFaucet")
	want := "account create-account sponsor-by-faucet-service bob.testnet use-ledger use-manually-provided-seed-phrase " + seedPhrase + " network-config testnet create"
	if got != want {
		t.Fatalf("unexpected command:\n got %s\nwant %s", got, want)
	}
}

func TestCreateAccountSignWithLedgerDefaultPath(t *testing.T) {
	got := mustTranslate(t, "testnet", "create-account", "bob.testnet", "--useAccount", "alice.testnet", "--signWithLedger", "--networkId", "testnet")
	want := "account create-account fund-myself bob.testnet 1 NEAR autogenerate-new-keypair save-to-keychain sign-as alice.testnet network-config testnet sign-with-ledger --seed-phrase-hd-path 44'/397'/0'/0'/1' send"
	if got != want {
		t.Fatalf("unexpected command:\n got %s\nwant %s", got, want)
	}
}

func TestCreateAccountSignWithLedgerMainnet(t *testing.T) {
	got := mustTranslate(t, "testnet",
		"create-account", "bob.near",
		"--useAccount", "alice.near",
		"--signWithLedger",
		"--ledgerPath", "44'/397'/0'/0'/2'",
		"--networkId", "mainnet",
	)
	want := "account create-account fund-myself bob.near 1 NEAR autogenerate-new-keypair save-to-keychain sign-as alice.near network-config mainnet sign-with-ledger --seed-phrase-hd-path 44'/397'/0'/0'/2' send"
	if got != want {
		t.Fatalf("unexpected command:\n got %s\nwant %s", got, want)
	}
}

func TestCreateAccountConflicts(t *testing.T) {
	cases := []struct {
		name  string
		args  []string
		field Option
		other Option
	}{
		{name: "faucet and account", args: []string{"bob.testnet", "--useFaucet", "--useAccount", "alice.testnet"}, field: OptUseAccount, other: OptUseFaucet},
		{name: "seed phrase and public key", args: []string{"bob.testnet", "--useFaucet", "--publicKey", "ed25519:abc", "--seedPhrase", seedPhrase}, field: OptSeedPhrase, other: OptPublicKey},
		{name: "ledger signing and faucet", args: []string{"bob.testnet", "--signWithLedger", "--useFaucet"}, field: OptSignWithLedger, other: OptUseFaucet},
		{name: "ledger key and public key", args: []string{"bob.testnet", "--useFaucet", "--newLedgerKey", "--public_key", "ed25519:abc"}, field: OptUseLedgerPK, other: OptPublicKey},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseCreateAccount(tc.args)
			pe := expectKind(t, err, ConflictingOptions)
			if pe.Field != string(tc.field) || pe.Other != string(tc.other) {
				t.Fatalf("unexpected conflict pair: %s / %s", pe.Field, pe.Other)
			}
		})
	}
}

func TestCreateAccountMissingSigner(t *testing.T) {
	args, err := ParseCreateAccount([]string{"bob.testnet"})
	if err != nil {
		t.Fatalf("parse should accept a missing --useAccount: %v", err)
	}
	_, err = args.Build("testnet")
	pe := expectKind(t, err, MissingRequired)
	if pe.Field != string(OptUseAccount) {
		t.Fatalf("unexpected missing field: %s", pe.Field)
	}
}

func TestCreateAccountMissingAccountID(t *testing.T) {
	_, err := ParseCreateAccount([]string{"--useFaucet"})
	pe := expectKind(t, err, MissingRequired)
	if pe.Field != "new-account-id" {
		t.Fatalf("unexpected missing field: %s", pe.Field)
	}
}

func TestCreateAccountRejectsUnknownOption(t *testing.T) {
	_, err := ParseCreateAccount([]string{"bob.testnet", "--useFaucet", "--bogus"})
	pe := expectKind(t, err, UnexpectedArgument)
	if pe.Raw != "--bogus" {
		t.Fatalf("unexpected raw: %q", pe.Raw)
	}
}

func TestCreateAccountParsesLedgerKeyPath(t *testing.T) {
	args, err := ParseCreateAccount([]string{"bob.testnet", "--useFaucet", "--useLedgerPK", "--pkLedgerPath", "44'/397'/0'/0'/3'"})
	if err != nil {
		t.Fatalf("ParseCreateAccount failed: %v", err)
	}
	if args.PKLedgerPath != "44'/397'/0'/0'/3'" {
		t.Fatalf("unexpected pk ledger path: %s", args.PKLedgerPath)
	}
	if args.LedgerPath != DefaultSeedPhrasePath {
		t.Fatalf("expected default ledger path, got %s", args.LedgerPath)
	}
}
