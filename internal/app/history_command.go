package app

import (
	"strings"

	"github.com/spf13/cobra"

	clierr "github.com/ggonzalez94/nearcompat/internal/errors"
	"github.com/ggonzalez94/nearcompat/internal/logging"
	"github.com/ggonzalez94/nearcompat/internal/model"
)

func (s *runtimeState) newHistoryCommand() *cobra.Command {
	root := &cobra.Command{Use: "history", Short: "Recorded translations"}

	var limit int
	var verbArg string
	list := &cobra.Command{
		Use:   "list",
		Short: "List recorded translations, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			verb := ""
			if strings.TrimSpace(verbArg) != "" {
				v, ok := s.runner.dispatcher.Lookup(strings.TrimSpace(verbArg))
				if !ok {
					return clierr.New(clierr.CodeUsage, "unknown legacy verb: "+verbArg)
				}
				verb = v.Name
			}
			if limit <= 0 {
				return clierr.New(clierr.CodeUsage, "--limit must be positive")
			}
			entries, err := s.history.List(verb, limit)
			if err != nil {
				return clierr.Wrap(clierr.CodeHistory, "list history", err)
			}
			return s.emitSuccess(trimRootPath(cmd.CommandPath()), entries, nil)
		},
	}
	list.Flags().IntVar(&limit, "limit", 20, "Maximum number of entries")
	list.Flags().StringVar(&verbArg, "verb", "", "Only show translations of this legacy verb")

	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete all recorded translations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := s.history.Clear()
			if err != nil {
				return clierr.Wrap(clierr.CodeHistory, "clear history", err)
			}
			hlog := logging.WithComponent(s.logger, "history")
			hlog.Debug().Int64("deleted", n).Msg("cleared history")
			return s.emitSuccess(trimRootPath(cmd.CommandPath()), model.HistoryClearResult{Deleted: n}, nil)
		},
	}

	root.AddCommand(list)
	root.AddCommand(clearCmd)
	return root
}
