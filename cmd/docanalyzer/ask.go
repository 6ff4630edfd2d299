package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thywilljoshua/docanalyzer/internal/qa"
)

func askCmd(a *app) *cobra.Command {
	var sessionID string
	var from string

	cmd := &cobra.Command{
		Use:   "ask <question> [question...]",
		Short: "Ask questions about an analysed document",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if from != "" {
				saved, err := readAnalysis(from)
				if err != nil {
					return err
				}
				sessionID = saved.SessionID
			}
			if strings.TrimSpace(sessionID) == "" {
				return fmt.Errorf("ask: --session or --from is required")
			}

			w := qa.New(sessionID, a.client.AskQuestion)
			w.Logger = a.logger
			asked := 0
			for _, q := range args {
				if w.Ask(cmd.Context(), q) {
					asked++
				}
			}
			history := w.History()

			if ok, err := encode(cmd.OutOrStdout(), a.cfg.Format, history); ok {
				if err != nil {
					return err
				}
			} else {
				w.Render(cmd.OutOrStdout())
			}
			if failed := asked - len(history); failed > 0 {
				return fmt.Errorf("ask: %d of %d questions got no answer (run with -v for details)", failed, asked)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&sessionID, "session", "", "session id returned by analyze")
	cmd.Flags().StringVar(&from, "from", "", "read the session id from an analysis saved with analyze --save")
	return cmd
}
