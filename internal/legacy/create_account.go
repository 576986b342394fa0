package legacy

import "github.com/ggonzalez94/nearcompat/internal/units"

var createAccountGrammar = Grammar{
	Verb: "create-account",
	Positionals: []PositionalSpec{
		{Name: "new-account-id", Required: true, Usage: "Account to create"},
	},
	Options: []OptionSpec{
		{Name: OptUseFaucet, Kind: KindFlag, Usage: "Sponsor the account through the faucet service"},
		{Name: OptUseAccount, Kind: KindString, ConflictsWith: []Option{OptUseFaucet}, Usage: "Account that funds and signs the creation"},
		{Name: OptInitialBalance, Kind: KindString, Default: "1", Usage: "Initial balance in NEAR"},
		{Name: OptPublicKey, Kind: KindString, Usage: "Public key for the new account"},
		{Name: OptSeedPhrase, Kind: KindString, ConflictsWith: []Option{OptPublicKey}, Usage: "Seed phrase for the new account"},
		{Name: OptSignWithLedger, Kind: KindFlag, ConflictsWith: []Option{OptUseFaucet}, Usage: "Sign the transaction with a ledger device"},
		{Name: OptLedgerPath, Kind: KindString, Default: DefaultSeedPhrasePath, Usage: "HD path of the signing ledger key"},
		{Name: OptUseLedgerPK, Kind: KindFlag, ConflictsWith: []Option{OptPublicKey}, Usage: "Use a ledger key as the new account key"},
		{Name: OptPKLedgerPath, Kind: KindString, Default: DefaultSeedPhrasePath, Usage: "HD path of the new account ledger key"},
		{Name: OptNetworkID, Kind: KindString, Usage: "Network to use"},
	},
}

// CreateAccountArgs is a parsed legacy create-account command.
type CreateAccountArgs struct {
	baseArgs
	NewAccountID   string
	UseFaucet      bool
	UseAccount     *string
	InitialBalance string
	PublicKey      *string
	SeedPhrase     *string
	SignWithLedger bool
	LedgerPath     string
	UseLedgerPK    bool
	PKLedgerPath   string
}

func ParseCreateAccount(raw []string) (*CreateAccountArgs, error) {
	v, err := Parse(&createAccountGrammar, raw)
	if err != nil {
		return nil, err
	}
	id, _ := v.Positional("new-account-id")
	return &CreateAccountArgs{
		baseArgs:       newBaseArgs(v),
		NewAccountID:   id,
		UseFaucet:      v.Flag(OptUseFaucet),
		UseAccount:     lookupPtr(v, OptUseAccount),
		InitialBalance: v.String(OptInitialBalance),
		PublicKey:      lookupPtr(v, OptPublicKey),
		SeedPhrase:     lookupPtr(v, OptSeedPhrase),
		SignWithLedger: v.Flag(OptSignWithLedger),
		LedgerPath:     v.String(OptLedgerPath),
		UseLedgerPK:    v.Flag(OptUseLedgerPK),
		PKLedgerPath:   v.String(OptPKLedgerPath),
	}, nil
}

// Build emits the account create-account command. The ledger, seed phrase and
// public key branches are checked independently, so --useLedgerPK combined
// with --seedPhrase emits both key sources.
func (a *CreateAccountArgs) Build(networkID string) (Command, error) {
	cmd := Command{"account", "create-account"}

	if a.UseFaucet {
		cmd = append(cmd, "sponsor-by-faucet-service", a.NewAccountID)
	} else {
		cmd = append(cmd, "fund-myself", a.NewAccountID, units.FormatNear(a.InitialBalance))
	}

	// TODO: emit --seed-phrase-hd-path <pk-ledger-path> once the new CLI accepts it after use-ledger.
	if a.UseLedgerPK {
		cmd = append(cmd, "use-ledger")
	}
	if a.SeedPhrase != nil {
		cmd = append(cmd, "use-manually-provided-seed-phrase", *a.SeedPhrase)
	}
	if a.PublicKey != nil {
		cmd = append(cmd, "use-manually-provided-public-key", *a.PublicKey)
	}
	if a.SeedPhrase == nil && a.PublicKey == nil && !a.UseLedgerPK {
		cmd = append(cmd, "autogenerate-new-keypair", "save-to-keychain")
	}

	if !a.UseFaucet {
		if a.UseAccount == nil {
			return nil, missingRequired(createAccountGrammar.Verb, string(OptUseAccount))
		}
		cmd = append(cmd, "sign-as", *a.UseAccount)
	}

	cmd = append(cmd, "network-config", networkID)

	if a.UseFaucet {
		return append(cmd, "create"), nil
	}
	if a.SignWithLedger {
		cmd = append(cmd, "sign-with-ledger", "--seed-phrase-hd-path", a.LedgerPath)
	} else {
		cmd = append(cmd, "sign-with-keychain")
	}
	return append(cmd, "send"), nil
}
