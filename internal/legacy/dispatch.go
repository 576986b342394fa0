package legacy

// Verb is one legacy top-level command.
type Verb struct {
	Name    string
	Aliases []string
	Short   string
	Grammar *Grammar
	parse   func(raw []string) (Args, error)
}

// Parse reads the arguments that follow the verb.
func (v *Verb) Parse(raw []string) (Args, error) {
	return v.parse(raw)
}

// Translation is the outcome of translating one legacy invocation.
type Translation struct {
	Verb      string
	NetworkID string
	Command   Command
	// Dropped lists arguments a tolerant verb ignored.
	Dropped []string
}

// Dispatcher routes legacy invocations to their verb.
type Dispatcher struct {
	verbs []*Verb
	index map[string]*Verb
}

// NewDispatcher returns a dispatcher over the fixed set of legacy verbs.
func NewDispatcher() *Dispatcher {
	verbs := []*Verb{
		{
			Name:    "create-account",
			Aliases: []string{"create"},
			Short:   "Create a new account",
			Grammar: &createAccountGrammar,
			parse:   func(raw []string) (Args, error) { return wrap[*CreateAccountArgs](ParseCreateAccount(raw)) },
		},
		{
			Name:    "delete-account",
			Aliases: []string{"delete"},
			Short:   "Delete an account and transfer its balance",
			Grammar: &deleteAccountGrammar,
			parse:   func(raw []string) (Args, error) { return wrap[*DeleteAccountArgs](ParseDeleteAccount(raw)) },
		},
		{
			Name:    "deploy",
			Short:   "Deploy a contract, optionally calling an init method",
			Grammar: &deployGrammar,
			parse:   func(raw []string) (Args, error) { return wrap[*DeployArgs](ParseDeploy(raw)) },
		},
		{
			Name:    "view",
			Short:   "Call a contract view method",
			Grammar: &viewGrammar,
			parse:   func(raw []string) (Args, error) { return wrap[*ViewArgs](ParseView(raw)) },
		},
		{
			Name:    "list-keys",
			Aliases: []string{"keys"},
			Short:   "List the access keys of an account",
			Grammar: &listKeysGrammar,
			parse:   func(raw []string) (Args, error) { return wrap[*ListKeysArgs](ParseListKeys(raw)) },
		},
		{
			Name:    "stake",
			Short:   "Submit a validator staking proposal",
			Grammar: &stakeGrammar,
			parse:   func(raw []string) (Args, error) { return wrap[*StakeArgs](ParseStake(raw)) },
		},
		{
			Name:    "transaction-status",
			Aliases: []string{"tx-status"},
			Short:   "Show the status of a transaction",
			Grammar: &txStatusGrammar,
			parse:   func(raw []string) (Args, error) { return wrap[*TxStatusArgs](ParseTxStatus(raw)) },
		},
	}

	index := make(map[string]*Verb)
	for _, v := range verbs {
		index[v.Name] = v
		for _, alias := range v.Aliases {
			index[alias] = v
		}
	}
	return &Dispatcher{verbs: verbs, index: index}
}

// wrap keeps a typed nil pointer from turning into a non-nil Args.
func wrap[T Args](args T, err error) (Args, error) {
	if err != nil {
		return nil, err
	}
	return args, nil
}

// Verbs lists the legacy verbs in a stable order.
func (d *Dispatcher) Verbs() []*Verb {
	return append([]*Verb(nil), d.verbs...)
}

// Lookup finds a verb by name or alias.
func (d *Dispatcher) Lookup(name string) (*Verb, bool) {
	v, ok := d.index[name]
	return v, ok
}

// Match reports whether raw starts with a legacy verb this dispatcher handles.
func (d *Dispatcher) Match(raw []string) bool {
	if len(raw) == 0 {
		return false
	}
	_, ok := d.index[raw[0]]
	return ok
}

// Translate parses raw (verb first) and builds the equivalent new command.
// ambientNetwork is used when the invocation carries no --networkId.
func (d *Dispatcher) Translate(raw []string, ambientNetwork string) (Translation, error) {
	if len(raw) == 0 {
		return Translation{}, &ParseError{Kind: UnrecognizedVerb}
	}
	verb, ok := d.Lookup(raw[0])
	if !ok {
		return Translation{}, &ParseError{Kind: UnrecognizedVerb, Raw: raw[0]}
	}
	return verb.Translate(raw[1:], ambientNetwork)
}

// Translate parses raw (without the verb) and builds the new command.
func (v *Verb) Translate(raw []string, ambientNetwork string) (Translation, error) {
	args, err := v.Parse(raw)
	if err != nil {
		return Translation{}, err
	}
	networkID := ResolveNetworkID(args.ExplicitNetworkID(), ambientNetwork)
	cmd, err := args.Build(networkID)
	if err != nil {
		return Translation{}, err
	}
	return Translation{Verb: v.Name, NetworkID: networkID, Command: cmd, Dropped: args.Dropped()}, nil
}
