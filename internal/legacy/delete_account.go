package legacy

var deleteAccountGrammar = Grammar{
	Verb: "delete-account",
	Positionals: []PositionalSpec{
		{Name: "account-id", Required: true, Usage: "Account to delete"},
		{Name: "beneficiary-id", Required: true, Usage: "Account that receives the remaining balance"},
	},
	Options: []OptionSpec{
		{Name: OptUseLedger, Kind: KindFlag, Usage: "Sign the transaction with a ledger device"},
		{Name: OptLedgerPath, Kind: KindString, OptionalValue: true, MissingValue: DefaultSeedPhrasePath, Usage: "HD path of the signing ledger key"},
		{Name: OptNetworkID, Kind: KindString, Usage: "Network to use"},
	},
	IgnoreUnknown: true,
}

// DeleteAccountArgs is a parsed legacy delete-account command.
type DeleteAccountArgs struct {
	baseArgs
	AccountID     string
	BeneficiaryID string
	UseLedger     bool
	LedgerPath    *string
}

func ParseDeleteAccount(raw []string) (*DeleteAccountArgs, error) {
	v, err := Parse(&deleteAccountGrammar, raw)
	if err != nil {
		return nil, err
	}
	account, _ := v.Positional("account-id")
	beneficiary, _ := v.Positional("beneficiary-id")
	return &DeleteAccountArgs{
		baseArgs:      newBaseArgs(v),
		AccountID:     account,
		BeneficiaryID: beneficiary,
		UseLedger:     v.Flag(OptUseLedger),
		LedgerPath:    lookupPtr(v, OptLedgerPath),
	}, nil
}

// Build emits the account delete-account command. --useLedger without
// --ledgerPath emits an empty HD path; the legacy tool did the same.
func (a *DeleteAccountArgs) Build(networkID string) (Command, error) {
	cmd := Command{
		"account", "delete-account", a.AccountID,
		"beneficiary", a.BeneficiaryID,
		"network-config", networkID,
	}
	if a.UseLedger {
		path := ""
		if a.LedgerPath != nil {
			path = *a.LedgerPath
		}
		cmd = append(cmd, "sign-with-ledger", "--seed-phrase-hd-path", path)
	} else {
		cmd = append(cmd, "sign-with-keychain")
	}
	return append(cmd, "send"), nil
}
