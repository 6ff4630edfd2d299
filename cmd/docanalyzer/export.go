package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thywilljoshua/docanalyzer/internal/session"
)

func exportCmd(a *app) *cobra.Command {
	var from string

	cmd := &cobra.Command{
		Use:   "export --from <analysis.yaml>",
		Short: "Render a saved analysis as a PDF report",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			saved, err := readAnalysis(from)
			if err != nil {
				return err
			}
			payload, err := a.client.Export(cmd.Context(), saved)
			if err != nil {
				return err
			}
			saver := session.FileSaver{Dir: a.cfg.ExportDir}
			path, err := saver.Save(session.ExportFilename(saved.SessionID), payload)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "analysis saved with analyze --save")
	_ = cmd.MarkFlagRequired("from")
	return cmd
}
