package schema

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/ggonzalez94/nearcompat/internal/legacy"
)

// LegacyVerbAnnotation marks a cobra command that translates a legacy verb.
const LegacyVerbAnnotation = "nearcompat/legacy-verb"

type CommandSchema struct {
	Path        string          `json:"path"`
	Use         string          `json:"use"`
	Short       string          `json:"short"`
	Aliases     []string        `json:"aliases,omitempty"`
	Flags       []FlagSchema    `json:"flags,omitempty"`
	Legacy      *GrammarSchema  `json:"legacy,omitempty"`
	Subcommands []CommandSchema `json:"subcommands,omitempty"`
}

type FlagSchema struct {
	Name      string `json:"name"`
	Shorthand string `json:"shorthand,omitempty"`
	Type      string `json:"type"`
	Usage     string `json:"usage"`
	Default   string `json:"default,omitempty"`
}

// GrammarSchema describes the arguments a legacy verb accepts.
type GrammarSchema struct {
	Verb          string             `json:"verb"`
	Synopsis      string             `json:"synopsis"`
	IgnoreUnknown bool               `json:"ignore_unknown"`
	Positionals   []PositionalSchema `json:"positionals"`
	Options       []OptionSchema     `json:"options"`
}

type PositionalSchema struct {
	Name     string `json:"name"`
	Required bool   `json:"required"`
	Default  string `json:"default,omitempty"`
	Usage    string `json:"usage,omitempty"`
}

type OptionSchema struct {
	Name          string   `json:"name"`
	Aliases       []string `json:"aliases"`
	Type          string   `json:"type"`
	Default       string   `json:"default,omitempty"`
	OptionalValue bool     `json:"optional_value,omitempty"`
	ConflictsWith []string `json:"conflicts_with,omitempty"`
	Usage         string   `json:"usage,omitempty"`
}

// Build serializes the command tree at commandPath. Commands annotated with
// LegacyVerbAnnotation get the grammar of that verb from d attached.
func Build(root *cobra.Command, commandPath string, d *legacy.Dispatcher) (CommandSchema, error) {
	cmd := root
	if strings.TrimSpace(commandPath) != "" {
		parts := strings.Fields(strings.TrimSpace(commandPath))
		for _, p := range parts {
			found := false
			for _, c := range cmd.Commands() {
				if c.Name() == p || contains(c.Aliases, p) {
					cmd = c
					found = true
					break
				}
			}
			if !found {
				return CommandSchema{}, fmt.Errorf("command not found: %s", commandPath)
			}
		}
	}
	return serialize(cmd, d), nil
}

func serialize(cmd *cobra.Command, d *legacy.Dispatcher) CommandSchema {
	s := CommandSchema{
		Path:    strings.TrimSpace(cmd.CommandPath()),
		Use:     cmd.Use,
		Short:   cmd.Short,
		Aliases: cmd.Aliases,
		Flags:   collectFlags(cmd),
	}
	if name := cmd.Annotations[LegacyVerbAnnotation]; name != "" && d != nil {
		if verb, ok := d.Lookup(name); ok && verb.Grammar != nil {
			g := Grammar(verb.Grammar)
			s.Legacy = &g
		}
	}

	subs := cmd.Commands()
	for _, sub := range subs {
		if sub.Hidden {
			continue
		}
		s.Subcommands = append(s.Subcommands, serialize(sub, d))
	}

	return s
}

// Grammar converts a legacy grammar to its schema form.
func Grammar(g *legacy.Grammar) GrammarSchema {
	s := GrammarSchema{
		Verb:          g.Verb,
		Synopsis:      g.Synopsis(),
		IgnoreUnknown: g.IgnoreUnknown,
		Positionals:   make([]PositionalSchema, 0, len(g.Positionals)),
		Options:       make([]OptionSchema, 0, len(g.Options)),
	}
	for _, p := range g.Positionals {
		s.Positionals = append(s.Positionals, PositionalSchema{
			Name:     p.Name,
			Required: p.Required,
			Default:  p.Default,
			Usage:    p.Usage,
		})
	}
	for _, o := range g.Options {
		item := OptionSchema{
			Name:          string(o.Name),
			Aliases:       legacy.Aliases(o.Name),
			Type:          o.Kind.String(),
			Default:       o.Default,
			OptionalValue: o.OptionalValue,
			Usage:         o.Usage,
		}
		if o.OptionalValue {
			item.Default = o.MissingValue
		}
		for _, other := range o.ConflictsWith {
			item.ConflictsWith = append(item.ConflictsWith, string(other))
		}
		s.Options = append(s.Options, item)
	}
	return s
}

func collectFlags(cmd *cobra.Command) []FlagSchema {
	items := []FlagSchema{}
	cmd.NonInheritedFlags().VisitAll(func(f *pflag.Flag) {
		item := FlagSchema{
			Name:      f.Name,
			Shorthand: f.Shorthand,
			Type:      f.Value.Type(),
			Usage:     f.Usage,
			Default:   f.DefValue,
		}
		items = append(items, item)
	})
	return items
}

func contains(items []string, target string) bool {
	for _, item := range items {
		if item == target {
			return true
		}
	}
	return false
}
