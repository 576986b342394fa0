package legacy

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
)

// OptionKind is the value type of a legacy option.
type OptionKind int

const (
	KindFlag OptionKind = iota
	KindString
	KindUint64
)

func (k OptionKind) String() string {
	switch k {
	case KindFlag:
		return "bool"
	case KindUint64:
		return "uint64"
	default:
		return "string"
	}
}

// OptionSpec declares one option of a legacy verb.
type OptionSpec struct {
	Name    Option
	Kind    OptionKind
	Default string
	// OptionalValue allows the option without a value; MissingValue is bound then.
	OptionalValue bool
	MissingValue  string
	ConflictsWith []Option
	Usage         string
}

// PositionalSpec declares one positional argument of a legacy verb.
type PositionalSpec struct {
	Name     string
	Required bool
	Default  string
	Usage    string
}

// Grammar is the declarative argument model of one legacy verb.
// IgnoreUnknown marks verbs that historically accepted and dropped trailing
// arguments they did not understand.
type Grammar struct {
	Verb          string
	Positionals   []PositionalSpec
	Options       []OptionSpec
	IgnoreUnknown bool
}

// Option returns the spec declared for name.
func (g *Grammar) Option(name Option) (OptionSpec, bool) {
	for _, o := range g.Options {
		if o.Name == name {
			return o, true
		}
	}
	return OptionSpec{}, false
}

func (g *Grammar) aliasIndex() map[string]Option {
	idx := make(map[string]Option)
	for _, o := range g.Options {
		for _, alias := range Aliases(o.Name) {
			idx[alias] = o.Name
		}
	}
	return idx
}

// Values holds the result of parsing raw arguments against a Grammar.
type Values struct {
	verb        string
	flags       *pflag.FlagSet
	positionals map[string]string
	given       map[string]bool
	uints       map[Option]uint64
	ignored     []string
}

// Parse reads raw legacy arguments (without the verb) using g.
func Parse(g *Grammar, raw []string) (*Values, error) {
	aliases := g.aliasIndex()

	fs := pflag.NewFlagSet(g.Verb, pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}
	fs.SortFlags = false
	fs.ParseErrorsAllowlist.UnknownFlags = g.IgnoreUnknown
	fs.SetNormalizeFunc(func(_ *pflag.FlagSet, name string) pflag.NormalizedName {
		if opt, ok := aliases[name]; ok {
			return pflag.NormalizedName(opt)
		}
		return pflag.NormalizedName(name)
	})
	for _, o := range g.Options {
		name := string(o.Name)
		if o.Kind == KindFlag {
			fs.Bool(name, false, o.Usage)
		} else {
			fs.String(name, o.Default, o.Usage)
		}
		if o.OptionalValue {
			fs.Lookup(name).NoOptDefVal = o.MissingValue
		}
	}

	args, unknown := prescan(g, aliases, raw)
	if err := fs.Parse(args); err != nil {
		return nil, flagError(g.Verb, err)
	}

	v := &Values{
		verb:        g.Verb,
		flags:       fs,
		positionals: make(map[string]string, len(g.Positionals)),
		given:       make(map[string]bool, len(g.Positionals)),
		uints:       make(map[Option]uint64),
	}
	if g.IgnoreUnknown {
		v.ignored = append(v.ignored, unknown...)
	}

	for _, o := range g.Options {
		for _, other := range o.ConflictsWith {
			if fs.Changed(string(o.Name)) && fs.Changed(string(other)) {
				return nil, &ParseError{Kind: ConflictingOptions, Verb: g.Verb, Field: string(o.Name), Other: string(other)}
			}
		}
	}

	for _, o := range g.Options {
		if o.Kind != KindUint64 {
			continue
		}
		text, _ := fs.GetString(string(o.Name))
		n, err := strconv.ParseUint(text, 10, 64)
		if err != nil {
			return nil, &ParseError{Kind: InvalidValue, Verb: g.Verb, Field: string(o.Name), Raw: text}
		}
		v.uints[o.Name] = n
	}

	rest := fs.Args()
	for i, p := range g.Positionals {
		if i < len(rest) {
			v.positionals[p.Name] = rest[i]
			v.given[p.Name] = true
			continue
		}
		if p.Required {
			return nil, missingRequired(g.Verb, p.Name)
		}
		v.positionals[p.Name] = p.Default
	}
	if len(rest) > len(g.Positionals) {
		surplus := rest[len(g.Positionals):]
		if !g.IgnoreUnknown {
			return nil, &ParseError{Kind: UnexpectedArgument, Verb: g.Verb, Raw: surplus[0]}
		}
		v.ignored = append(v.ignored, surplus...)
	}
	return v, nil
}

// prescan joins "--opt value" into "--opt=value" for options whose value is
// optional, so the value is not mistaken for a positional. Tolerant grammars
// drop long options they do not know here, together with a following
// non-dash value; strict grammars leave them for pflag to reject.
func prescan(g *Grammar, aliases map[string]Option, raw []string) ([]string, []string) {
	args := make([]string, 0, len(raw))
	var unknown []string
	for i := 0; i < len(raw); i++ {
		tok := raw[i]
		if tok == "--" {
			args = append(args, raw[i:]...)
			break
		}
		if !strings.HasPrefix(tok, "--") || len(tok) == 2 {
			args = append(args, tok)
			continue
		}
		name, _, hasValue := strings.Cut(tok[2:], "=")
		opt, known := aliases[name]
		if !known {
			if name == "help" || !g.IgnoreUnknown {
				args = append(args, tok)
				continue
			}
			// a dropped option takes its value with it unless the value is inline
			unknown = append(unknown, tok)
			if !hasValue && i+1 < len(raw) && !strings.HasPrefix(raw[i+1], "-") {
				unknown = append(unknown, raw[i+1])
				i++
			}
			continue
		}
		spec, _ := g.Option(opt)
		switch {
		case hasValue || spec.Kind == KindFlag || i+1 >= len(raw):
			args = append(args, tok)
		case spec.OptionalValue:
			if strings.HasPrefix(raw[i+1], "-") {
				args = append(args, tok)
				continue
			}
			args = append(args, tok+"="+raw[i+1])
			i++
		default:
			// value options consume the next token whatever it looks like
			args = append(args, tok, raw[i+1])
			i++
		}
	}
	return args, unknown
}

func flagError(verb string, err error) error {
	if errors.Is(err, pflag.ErrHelp) {
		return &ParseError{Kind: HelpRequested, Verb: verb}
	}
	var (
		notExist *pflag.NotExistError
		required *pflag.ValueRequiredError
		invalid  *pflag.InvalidValueError
		syntax   *pflag.InvalidSyntaxError
	)
	switch {
	case errors.As(err, &notExist):
		raw := "--" + notExist.GetSpecifiedName()
		if short := notExist.GetSpecifiedShortnames(); short != "" {
			raw = "-" + short
		}
		return &ParseError{Kind: UnexpectedArgument, Verb: verb, Raw: raw}
	case errors.As(err, &required):
		return missingRequired(verb, required.GetFlag().Name)
	case errors.As(err, &invalid):
		return &ParseError{Kind: InvalidValue, Verb: verb, Field: invalid.GetFlag().Name, Raw: invalid.GetValue()}
	case errors.As(err, &syntax):
		return &ParseError{Kind: UnexpectedArgument, Verb: verb, Raw: syntax.GetSpecifiedFlag()}
	default:
		return fmt.Errorf("%s: %w", verb, err)
	}
}

// Flag reports the value of a boolean option.
func (v *Values) Flag(opt Option) bool {
	b, err := v.flags.GetBool(string(opt))
	return err == nil && b
}

// String returns the value of a string option, falling back to its declared default.
func (v *Values) String(opt Option) string {
	s, _ := v.flags.GetString(string(opt))
	return s
}

// Lookup returns the value of a string option only when it was given explicitly.
func (v *Values) Lookup(opt Option) (string, bool) {
	if !v.flags.Changed(string(opt)) {
		return "", false
	}
	return v.String(opt), true
}

// Uint64 returns the value of a numeric option, falling back to its declared default.
func (v *Values) Uint64(opt Option) uint64 {
	return v.uints[opt]
}

// Positional returns a positional value and whether it was given. Absent
// optional positionals return their declared default.
func (v *Values) Positional(name string) (string, bool) {
	return v.positionals[name], v.given[name]
}

// Ignored lists unknown options and surplus positionals dropped by tolerant verbs.
func (v *Values) Ignored() []string {
	return append([]string(nil), v.ignored...)
}

// Synopsis renders a one-line usage string for the verb.
func (g *Grammar) Synopsis() string {
	parts := []string{g.Verb}
	for _, p := range g.Positionals {
		if p.Required {
			parts = append(parts, "<"+p.Name+">")
		} else {
			parts = append(parts, "["+p.Name+"]")
		}
	}
	for _, o := range g.Options {
		switch {
		case o.Kind == KindFlag:
			parts = append(parts, "[--"+string(o.Name)+"]")
		case o.OptionalValue:
			parts = append(parts, "[--"+string(o.Name)+" [value]]")
		default:
			parts = append(parts, "[--"+string(o.Name)+" <value>]")
		}
	}
	return strings.Join(parts, " ")
}
