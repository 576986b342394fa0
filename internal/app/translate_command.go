package app

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/kballard/go-shellquote"
	"github.com/spf13/cobra"

	clierr "github.com/ggonzalez94/nearcompat/internal/errors"
	"github.com/ggonzalez94/nearcompat/internal/legacy"
	"github.com/ggonzalez94/nearcompat/internal/logging"
	"github.com/ggonzalez94/nearcompat/internal/model"
	"github.com/ggonzalez94/nearcompat/internal/schema"
)

func (s *runtimeState) newLegacyVerbCommand(verb *legacy.Verb) *cobra.Command {
	cmd := &cobra.Command{
		Use:                verb.Grammar.Synopsis(),
		Short:              verb.Short,
		Long:               verb.Short + " (legacy syntax).\n\nGlobal flags must come before the verb; everything after it is read as legacy arguments.",
		Aliases:            append([]string(nil), verb.Aliases...),
		DisableFlagParsing: true,
		Annotations:        map[string]string{schema.LegacyVerbAnnotation: verb.Name},
		RunE: func(cmd *cobra.Command, args []string) error {
			raw := append([]string{cmd.CalledAs()}, args...)
			return s.runTranslation(cmd, raw)
		},
	}
	return cmd
}

func (s *runtimeState) newTranslateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "translate <legacy command>",
		Short: "Translate a legacy command given as arguments or as one quoted line",
		Long: "Translate a legacy command given as arguments or as one quoted line.\n\n" +
			"A leading program name (the configured target CLI or \"near\") is dropped, so\n" +
			"`translate 'near deploy bob.testnet out.wasm'` works as pasted.",
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := s.legacyTokens(args)
			if err != nil {
				return err
			}
			return s.runTranslation(cmd, raw)
		},
	}
	return cmd
}

// legacyTokens turns translate arguments into legacy tokens, splitting a
// single quoted line and dropping a leading program name.
func (s *runtimeState) legacyTokens(args []string) ([]string, error) {
	raw := args
	if len(args) == 1 && strings.ContainsAny(args[0], " \t\n") {
		words, err := shellquote.Split(args[0])
		if err != nil {
			return nil, clierr.Wrap(clierr.CodeUsage, "split legacy command line", err)
		}
		raw = words
	}
	if len(raw) > 0 && s.isProgramName(raw[0]) {
		raw = raw[1:]
	}
	return raw, nil
}

func (s *runtimeState) isProgramName(token string) bool {
	base := filepath.Base(token)
	if s.runner.dispatcher.Match([]string{base}) {
		return false
	}
	return base == "near" || base == s.settings.TargetCLI
}

func (s *runtimeState) runTranslation(cmd *cobra.Command, raw []string) error {
	commandPath := trimRootPath(cmd.CommandPath())
	logger := logging.WithComponent(s.logger, "translate")
	// the legacy verb itself must pass the allowlist too
	if len(raw) > 0 {
		if verb, ok := s.runner.dispatcher.Lookup(raw[0]); ok {
			if err := s.settings.EnableCommands.Check(verb.Name); err != nil {
				return err
			}
		}
	}
	tr, err := s.runner.dispatcher.Translate(raw, s.settings.Network)
	if err != nil {
		if legacy.IsKind(err, legacy.HelpRequested) {
			return s.legacyHelp(cmd, raw)
		}
		logger.Debug().Err(err).Strs("legacy", raw).Msg("translation failed")
		return translationError(err)
	}
	s.lastNetwork = tr.NetworkID

	var warnings []string
	if len(tr.Dropped) > 0 {
		logger.Debug().Str("verb", tr.Verb).Strs("dropped", tr.Dropped).Msg("ignored legacy arguments")
		warnings = append(warnings, fmt.Sprintf("%s ignored arguments: %s", tr.Verb, strings.Join(tr.Dropped, " ")))
	}

	tokens := []string(tr.Command)
	line := commandLine(append([]string{s.settings.TargetCLI}, tokens...))
	data := model.Translation{
		Verb:        tr.Verb,
		NetworkID:   tr.NetworkID,
		Legacy:      append([]string(nil), raw...),
		Tokens:      append([]string(nil), tokens...),
		CommandLine: line,
	}
	logger.Debug().
		Str("verb", tr.Verb).
		Str("network", tr.NetworkID).
		Int("tokens", len(tokens)).
		Msg("translated legacy command")

	s.recordHistory(data)
	s.notice(tr.Verb)
	return s.emitSuccess(commandPath, data, warnings)
}

// commandLine joins words for display. A word that needs quoting is wrapped
// in single quotes whole, so JSON arguments read as typed.
func commandLine(words []string) string {
	quoted := make([]string, len(words))
	for i, w := range words {
		q := shellquote.Join(w)
		if q != w && !strings.HasPrefix(q, "'") && !strings.Contains(w, "'") {
			q = "'" + w + "'"
		}
		quoted[i] = q
	}
	return strings.Join(quoted, " ")
}

func (s *runtimeState) recordHistory(t model.Translation) {
	if s.history == nil || !s.settings.HistoryEnabled {
		return
	}
	logger := logging.WithComponent(s.logger, "history")
	id, err := s.history.Save(model.HistoryEntry{
		Verb:      t.Verb,
		NetworkID: t.NetworkID,
		Legacy:    t.Legacy,
		Tokens:    t.Tokens,
		CreatedAt: s.runner.now(),
	})
	if err != nil {
		logger.Warn().Err(err).Msg("record translation history")
		return
	}
	logger.Debug().Int64("id", id).Msg("recorded translation")
}

// notice tells plain-mode users on stderr that the input used legacy syntax.
func (s *runtimeState) notice(verb string) {
	if s.settings.OutputMode != "plain" || s.settings.ResultsOnly {
		return
	}
	yellow := color.New(color.FgYellow, color.Bold)
	if !s.settings.Color {
		yellow.DisableColor()
	}
	_, _ = yellow.Fprintf(s.runner.stderr, "%q is legacy syntax; the equivalent %s command is:\n", verb, s.settings.TargetCLI)
}

func (s *runtimeState) legacyHelp(cmd *cobra.Command, raw []string) error {
	if len(raw) > 0 {
		if verb, ok := s.runner.dispatcher.Lookup(raw[0]); ok && cmd.Name() != verb.Name {
			for _, c := range s.root.Commands() {
				if c.Name() == verb.Name {
					return c.Help()
				}
			}
		}
	}
	return cmd.Help()
}

func translationError(err error) error {
	pe, ok := asParseError(err)
	if !ok {
		return clierr.Wrap(clierr.CodeInternal, "translate legacy command", err)
	}
	code := clierr.CodeUsage
	switch pe.Kind {
	case legacy.MissingRequired:
		code = clierr.CodeMissingArgument
	case legacy.ConflictingOptions:
		code = clierr.CodeConflict
	case legacy.InvalidValue:
		code = clierr.CodeInvalidValue
	case legacy.UnexpectedArgument:
		code = clierr.CodeUnexpected
	case legacy.UnrecognizedVerb:
		code = clierr.CodeUnknownCommand
	}
	return clierr.Wrap(code, "translate legacy command", pe)
}

func asParseError(err error) (*legacy.ParseError, bool) {
	var pe *legacy.ParseError
	if errors.As(err, &pe) {
		return pe, true
	}
	return nil, false
}
