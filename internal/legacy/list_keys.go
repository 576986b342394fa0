package legacy

var listKeysGrammar = Grammar{
	Verb: "list-keys",
	Positionals: []PositionalSpec{
		{Name: "account-id", Required: true, Usage: "Account whose access keys are listed"},
	},
	Options: []OptionSpec{
		{Name: OptNetworkID, Kind: KindString, Usage: "Network to use"},
	},
}

// ListKeysArgs is a parsed legacy keys command.
type ListKeysArgs struct {
	baseArgs
	AccountID string
}

func ParseListKeys(raw []string) (*ListKeysArgs, error) {
	v, err := Parse(&listKeysGrammar, raw)
	if err != nil {
		return nil, err
	}
	account, _ := v.Positional("account-id")
	return &ListKeysArgs{
		baseArgs:  newBaseArgs(v),
		AccountID: account,
	}, nil
}

func (a *ListKeysArgs) Build(networkID string) (Command, error) {
	return Command{"account", "list-keys", a.AccountID, "network-config", networkID, "now"}, nil
}
