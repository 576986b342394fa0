package legacy

import "github.com/ggonzalez94/nearcompat/internal/units"

var stakeGrammar = Grammar{
	Verb: "stake",
	Positionals: []PositionalSpec{
		{Name: "account-id", Required: true, Usage: "Validator account"},
		{Name: "staking-key", Required: true, Usage: "Validator staking public key"},
		{Name: "amount", Required: true, Usage: "Amount to stake in NEAR"},
	},
	Options: []OptionSpec{
		{Name: OptNetworkID, Kind: KindString, Usage: "Network to use"},
	},
	IgnoreUnknown: true,
}

// StakeArgs is a parsed legacy stake command.
type StakeArgs struct {
	baseArgs
	AccountID  string
	StakingKey string
	Amount     string
}

func ParseStake(raw []string) (*StakeArgs, error) {
	v, err := Parse(&stakeGrammar, raw)
	if err != nil {
		return nil, err
	}
	account, _ := v.Positional("account-id")
	key, _ := v.Positional("staking-key")
	amount, _ := v.Positional("amount")
	return &StakeArgs{
		baseArgs:   newBaseArgs(v),
		AccountID:  account,
		StakingKey: key,
		Amount:     amount,
	}, nil
}

func (a *StakeArgs) Build(networkID string) (Command, error) {
	return Command{
		"validator", "staking", "stake-proposal",
		a.AccountID, a.StakingKey, units.FormatNear(a.Amount),
		"network-config", networkID,
		"sign-with-keychain", "send",
	}, nil
}
