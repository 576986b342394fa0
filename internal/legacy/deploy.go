package legacy

import (
	"strconv"

	"github.com/ggonzalez94/nearcompat/internal/units"
)

// DefaultInitGas is the gas attached to a deploy init call when none is given.
const DefaultInitGas uint64 = 30_000_000_000_000

var deployGrammar = Grammar{
	Verb: "deploy",
	Positionals: []PositionalSpec{
		{Name: "account-id", Required: true, Usage: "Account to deploy the contract to"},
		{Name: "wasm-file-path", Usage: "Path to the contract wasm file"},
	},
	Options: []OptionSpec{
		{Name: OptWasmFile, Kind: KindString, Usage: "Path to the contract wasm file"},
		{Name: OptInitFunction, Kind: KindString, Usage: "Initialization method to call after deploy"},
		{Name: OptInitArgs, Kind: KindString, Default: "{}", Usage: "JSON arguments of the init call"},
		{Name: OptInitGas, Kind: KindUint64, Default: strconv.FormatUint(DefaultInitGas, 10), Usage: "Gas attached to the init call"},
		{Name: OptInitDeposit, Kind: KindString, Default: "0", Usage: "Deposit in NEAR attached to the init call"},
		{Name: OptNetworkID, Kind: KindString, Usage: "Network to use"},
	},
}

// DeployArgs is a parsed legacy deploy command.
type DeployArgs struct {
	baseArgs
	AccountID    string
	WasmFile     string
	InitFunction *string
	InitArgs     string
	InitGas      uint64
	InitDeposit  string
}

func ParseDeploy(raw []string) (*DeployArgs, error) {
	v, err := Parse(&deployGrammar, raw)
	if err != nil {
		return nil, err
	}
	wasm, ok := v.Positional("wasm-file-path")
	if !ok {
		wasm, ok = v.Lookup(OptWasmFile)
	}
	if !ok {
		return nil, missingRequired(deployGrammar.Verb, "wasm-file-path")
	}
	account, _ := v.Positional("account-id")
	return &DeployArgs{
		baseArgs:     newBaseArgs(v),
		AccountID:    account,
		WasmFile:     wasm,
		InitFunction: lookupPtr(v, OptInitFunction),
		InitArgs:     v.String(OptInitArgs),
		InitGas:      v.Uint64(OptInitGas),
		InitDeposit:  v.String(OptInitDeposit),
	}, nil
}

func (a *DeployArgs) Build(networkID string) (Command, error) {
	cmd := Command{"contract", "deploy", a.AccountID, "use-file", a.WasmFile}
	if a.InitFunction != nil {
		cmd = append(cmd,
			"with-init-call", *a.InitFunction,
			"json-args", a.InitArgs,
			"prepaid-gas", units.FormatTgas(a.InitGas),
			"attached-deposit", units.FormatNear(a.InitDeposit),
		)
	} else {
		cmd = append(cmd, "without-init-call")
	}
	return append(cmd, "network-config", networkID, "sign-with-keychain", "send"), nil
}
