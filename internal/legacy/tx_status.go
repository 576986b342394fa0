package legacy

var txStatusGrammar = Grammar{
	Verb: "transaction-status",
	Positionals: []PositionalSpec{
		{Name: "hash", Required: true, Usage: "Transaction hash"},
	},
	Options: []OptionSpec{
		{Name: OptNetworkID, Kind: KindString, Usage: "Network to use"},
	},
	IgnoreUnknown: true,
}

// TxStatusArgs is a parsed legacy tx-status command.
type TxStatusArgs struct {
	baseArgs
	Hash string
}

func ParseTxStatus(raw []string) (*TxStatusArgs, error) {
	v, err := Parse(&txStatusGrammar, raw)
	if err != nil {
		return nil, err
	}
	hash, _ := v.Positional("hash")
	return &TxStatusArgs{
		baseArgs: newBaseArgs(v),
		Hash:     hash,
	}, nil
}

func (a *TxStatusArgs) Build(networkID string) (Command, error) {
	return Command{"transaction", "view-status", a.Hash, "network-config", networkID}, nil
}
