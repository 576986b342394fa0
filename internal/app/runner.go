package app

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/ggonzalez94/nearcompat/internal/config"
	clierr "github.com/ggonzalez94/nearcompat/internal/errors"
	"github.com/ggonzalez94/nearcompat/internal/history"
	"github.com/ggonzalez94/nearcompat/internal/legacy"
	"github.com/ggonzalez94/nearcompat/internal/logging"
	"github.com/ggonzalez94/nearcompat/internal/model"
	"github.com/ggonzalez94/nearcompat/internal/out"
	"github.com/ggonzalez94/nearcompat/internal/schema"
	"github.com/ggonzalez94/nearcompat/internal/version"
)

type Runner struct {
	stdout     io.Writer
	stderr     io.Writer
	now        func() time.Time
	dispatcher *legacy.Dispatcher
}

func NewRunner() *Runner {
	return NewRunnerWithWriters(os.Stdout, os.Stderr)
}

func NewRunnerWithWriters(stdout, stderr io.Writer) *Runner {
	return &Runner{
		stdout:     stdout,
		stderr:     stderr,
		now:        time.Now,
		dispatcher: legacy.NewDispatcher(),
	}
}

type runtimeState struct {
	runner      *Runner
	flags       config.GlobalFlags
	settings    config.Settings
	history     *history.Store
	logger      zerolog.Logger
	root        *cobra.Command
	lastCommand string
	lastNetwork string
}

func (r *Runner) Run(args []string) int {
	state := &runtimeState{runner: r, logger: logging.Nop()}
	root := state.newRootCommand()
	state.root = root
	root.SetArgs(args)
	root.SetOut(r.stdout)
	root.SetErr(r.stderr)
	root.SilenceUsage = true
	root.SilenceErrors = true

	err := root.Execute()
	err = normalizeRunError(err)
	if err == nil {
		state.closeHistory()
		return 0
	}

	state.renderError("", err)
	state.closeHistory()
	return clierr.ExitCode(err)
}

func (s *runtimeState) newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:              version.CLIName,
		Short:            "Translate legacy near CLI commands to the new command syntax",
		TraverseChildren: true,
		Args:             cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			return clierr.New(clierr.CodeUsage, fmt.Sprintf("unknown command %q for %q", args[0], cmd.CommandPath()))
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == "help" {
				return nil
			}
			settings, err := config.Load(s.flags)
			if err != nil {
				return clierr.Wrap(clierr.CodeUsage, "load configuration", err)
			}
			s.settings = settings
			s.logger = logging.New(s.runner.stderr, settings.LogLevel, settings.Color)

			path := trimRootPath(cmd.CommandPath())
			s.lastCommand = path
			if err := settings.EnableCommands.Check(path); err != nil {
				return err
			}
			if shouldOpenHistory(path, cmd, settings) && s.history == nil {
				store, err := history.Open(settings.HistoryPath, settings.HistoryLockPath)
				if err != nil {
					if isHistoryCommand(path) {
						return clierr.Wrap(clierr.CodeHistory, "open history", err)
					}
					hlog := logging.WithComponent(s.logger, "history")
					hlog.Warn().Err(err).Str("path", settings.HistoryPath).Msg("history disabled")
					return nil
				}
				s.history = store
			}
			return nil
		},
	}
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return clierr.Wrap(clierr.CodeUsage, "parse flags", err)
	})

	cmd.PersistentFlags().BoolVar(&s.flags.JSON, "json", false, "Output JSON (default)")
	cmd.PersistentFlags().BoolVar(&s.flags.Plain, "plain", false, "Output the suggested command line as plain text")
	cmd.PersistentFlags().BoolVar(&s.flags.ResultsOnly, "results-only", false, "Output only data payload")
	cmd.PersistentFlags().StringVar(&s.flags.Network, "network", "", "Network used when a command has no --networkId")
	cmd.PersistentFlags().StringVar(&s.flags.EnableCommands, "enable-commands", "", "Allowlist command paths (comma-separated)")
	cmd.PersistentFlags().BoolVar(&s.flags.NoHistory, "no-history", false, "Do not record translations")
	cmd.PersistentFlags().BoolVar(&s.flags.Verbose, "verbose", false, "Enable debug logging")
	cmd.PersistentFlags().BoolVar(&s.flags.NoColor, "no-color", false, "Disable colored notices and logs")
	cmd.PersistentFlags().StringVar(&s.flags.ConfigPath, "config", "", "Path to config file")

	for _, verb := range s.runner.dispatcher.Verbs() {
		cmd.AddCommand(s.newLegacyVerbCommand(verb))
	}
	cmd.AddCommand(s.newTranslateCommand())
	cmd.AddCommand(s.newSchemaCommand())
	cmd.AddCommand(s.newHistoryCommand())
	cmd.AddCommand(newVersionCommand())

	return cmd
}

func newVersionCommand() *cobra.Command {
	var long bool
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print CLI version",
		Run: func(cmd *cobra.Command, args []string) {
			if long {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), version.Long())
				return
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), version.CLIVersion)
		},
	}
	cmd.Flags().BoolVar(&long, "long", false, "Print extended build metadata")
	return cmd
}

func (s *runtimeState) newSchemaCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schema [command path]",
		Short: "Print machine-readable command schema",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) > 0 {
				path = strings.Join(args, " ")
			}
			data, err := schema.Build(s.root, path, s.runner.dispatcher)
			if err != nil {
				return clierr.Wrap(clierr.CodeUsage, "build schema", err)
			}
			return s.emitSuccess(trimRootPath(cmd.CommandPath()), data, nil)
		},
	}
	return cmd
}

func (s *runtimeState) emitSuccess(commandPath string, data any, warnings []string) error {
	env := model.Envelope{
		Version:  model.EnvelopeVersion,
		Success:  true,
		Data:     data,
		Error:    nil,
		Warnings: warnings,
		Meta: model.EnvelopeMeta{
			RequestID: newRequestID(),
			Timestamp: s.runner.now().UTC(),
			Command:   commandPath,
			Network:   s.lastNetwork,
		},
	}
	return out.Render(s.runner.stdout, env, s.settings)
}

func (s *runtimeState) renderError(commandPath string, err error) {
	if strings.TrimSpace(commandPath) == "" {
		commandPath = s.lastCommand
		if commandPath == "" {
			commandPath = version.CLIName
		}
	}
	code := clierr.ExitCode(err)
	typ := clierr.CodeInternal.Type()
	message := err.Error()
	if cErr, ok := clierr.As(err); ok {
		message = cErr.Message
		if cErr.Cause != nil {
			message = fmt.Sprintf("%s: %v", cErr.Message, cErr.Cause)
		}
		typ = cErr.Code.Type()
	}
	body := &model.ErrorBody{
		Code:    code,
		Type:    typ,
		Message: message,
	}
	if pe, ok := asParseError(err); ok {
		body.Verb = pe.Verb
		body.Field = pe.Field
	}

	settings := s.settings
	if settings.OutputMode == "" {
		settings.OutputMode = "json"
	}
	settings.ResultsOnly = false
	env := model.Envelope{
		Version: model.EnvelopeVersion,
		Success: false,
		Data:    []any{},
		Error:   body,
		Meta: model.EnvelopeMeta{
			RequestID: newRequestID(),
			Timestamp: s.runner.now().UTC(),
			Command:   commandPath,
			Network:   s.lastNetwork,
		},
	}
	_ = out.Render(s.runner.stderr, env, settings)
}

func (s *runtimeState) closeHistory() {
	if s.history != nil {
		_ = s.history.Close()
		s.history = nil
	}
}

func newRequestID() string {
	buf := make([]byte, 16)
	_, _ = rand.Read(buf)
	return hex.EncodeToString(buf)
}

func trimRootPath(path string) string {
	parts := strings.Fields(path)
	if len(parts) <= 1 {
		return path
	}
	return strings.Join(parts[1:], " ")
}

func normalizeRunError(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := clierr.As(err); ok {
		return err
	}
	if isLikelyUsageError(err) {
		return clierr.Wrap(clierr.CodeUsage, "invalid command input", err)
	}
	return clierr.Wrap(clierr.CodeInternal, "execute command", err)
}

func isLikelyUsageError(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(strings.TrimSpace(err.Error()))
	patterns := []string{
		"unknown command",
		"unknown flag",
		"unknown shorthand flag",
		"flag needs an argument",
		"requires at least",
		"requires exactly",
		"accepts ",
		"invalid argument",
		"invalid args",
	}
	for _, p := range patterns {
		if strings.Contains(msg, p) {
			return true
		}
	}
	return false
}

// shouldOpenHistory reports whether the command at path needs the history
// store. History commands always do; translations only when recording is on.
func shouldOpenHistory(path string, cmd *cobra.Command, settings config.Settings) bool {
	if isHistoryCommand(path) {
		return true
	}
	if !settings.HistoryEnabled {
		return false
	}
	if cmd.Annotations[schema.LegacyVerbAnnotation] != "" {
		return true
	}
	return normalizeCommandPath(path) == "translate"
}

func isHistoryCommand(path string) bool {
	switch normalizeCommandPath(path) {
	case "history list", "history clear":
		return true
	default:
		return false
	}
}

func normalizeCommandPath(commandPath string) string {
	return strings.Join(strings.Fields(strings.ToLower(strings.TrimSpace(commandPath))), " ")
}
