package legacy

import "fmt"

// Option is the canonical name of a legacy option. Canonical names use the
// kebab-case spelling the legacy tool exposed as its primary long flag.
type Option string

const (
	OptNetworkID      Option = "network-id"
	OptUseFaucet      Option = "use-faucet"
	OptUseAccount     Option = "use-account"
	OptInitialBalance Option = "initial-balance"
	OptPublicKey      Option = "public-key"
	OptSeedPhrase     Option = "seed-phrase"
	OptSignWithLedger Option = "sign-with-ledger"
	OptLedgerPath     Option = "ledger-path"
	OptUseLedgerPK    Option = "use-ledger-pk"
	OptPKLedgerPath   Option = "pk-ledger-path"
	OptUseLedger      Option = "use-ledger"
	OptWasmFile       Option = "wasm-file"
	OptInitFunction   Option = "init-function"
	OptInitArgs       Option = "init-args"
	OptInitGas        Option = "init-gas"
	OptInitDeposit    Option = "init-deposit"
)

// DefaultSeedPhrasePath is the HD path used for ledger signing when no path is given.
const DefaultSeedPhrasePath = "44'/397'/0'/0'/1'"

var aliasTable = map[Option][]string{
	OptNetworkID:      {"network-id", "networkId", "network_id"},
	OptUseFaucet:      {"use-faucet", "useFaucet", "use_faucet"},
	OptUseAccount:     {"use-account", "useAccount", "use_account", "masterAccount", "master-account", "master_account"},
	OptInitialBalance: {"initial-balance", "initialBalance", "initial_balance"},
	OptPublicKey:      {"public-key", "publicKey", "public_key"},
	OptSeedPhrase:     {"seed-phrase", "seedPhrase", "seed_phrase"},
	OptSignWithLedger: {"sign-with-ledger", "signWithLedger", "sign_with_ledger"},
	OptLedgerPath:     {"ledger-path", "ledgerPath", "ledger_path"},
	OptUseLedgerPK:    {"use-ledger-pk", "useLedgerPK", "use_ledger_pk", "newLedgerKey", "new-ledger-key", "new_ledger_key"},
	OptPKLedgerPath:   {"pk-ledger-path", "pkLedgerPath", "pk_ledger_path"},
	OptUseLedger:      {"use-ledger", "useLedger", "use_ledger"},
	OptWasmFile:       {"wasm-file", "wasmFile", "wasm_file"},
	OptInitFunction:   {"init-function", "initFunction", "init_function"},
	OptInitArgs:       {"init-args", "initArgs", "init_args"},
	OptInitGas:        {"init-gas", "initGas", "init_gas"},
	OptInitDeposit:    {"init-deposit", "initDeposit", "init_deposit"},
}

// Aliases returns every literal spelling accepted for opt, canonical name first.
// Asking for an option that is not in the table is a programming error.
func Aliases(opt Option) []string {
	aliases, ok := aliasTable[opt]
	if !ok {
		panic(fmt.Sprintf("legacy: no aliases registered for option %q", opt))
	}
	return append([]string(nil), aliases...)
}
