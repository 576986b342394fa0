package legacy

var viewGrammar = Grammar{
	Verb: "view",
	Positionals: []PositionalSpec{
		{Name: "contract-account-id", Required: true, Usage: "Contract account"},
		{Name: "method-name", Required: true, Usage: "View method to call"},
		{Name: "args", Usage: "Method arguments as text"},
	},
	Options: []OptionSpec{
		{Name: OptNetworkID, Kind: KindString, Usage: "Network to use"},
	},
	IgnoreUnknown: true,
}

// ViewArgs is a parsed legacy view command.
type ViewArgs struct {
	baseArgs
	ContractAccountID string
	MethodName        string
	Args              string
}

func ParseView(raw []string) (*ViewArgs, error) {
	v, err := Parse(&viewGrammar, raw)
	if err != nil {
		return nil, err
	}
	contract, _ := v.Positional("contract-account-id")
	method, _ := v.Positional("method-name")
	args, _ := v.Positional("args")
	return &ViewArgs{
		baseArgs:          newBaseArgs(v),
		ContractAccountID: contract,
		MethodName:        method,
		Args:              args,
	}, nil
}

func (a *ViewArgs) Build(networkID string) (Command, error) {
	return Command{
		"contract", "call-function", "as-read-only",
		a.ContractAccountID, a.MethodName,
		"text-args", a.Args,
		"network-config", networkID, "now",
	}, nil
}
