package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thywilljoshua/docanalyzer/internal/upload"
)

func analyzeCmd(a *app) *cobra.Command {
	var export bool
	var save string

	cmd := &cobra.Command{
		Use:   "analyze <pdf> [more.pdf...]",
		Short: "Upload a PDF and show its health score, risks and summary",
		Long:  "Upload a PDF and show its health score, risks and summary.\nOnly the first file is uploaded when several are given.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			o := a.orchestrator(cmd.ErrOrStderr())

			doc, err := upload.Load(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "uploading %s (%d pages)\n", doc.Name, doc.Pages)
			if err := o.SubmitDocument(ctx, doc); err != nil {
				return err
			}
			result, _ := o.Analysis()

			if save != "" {
				if err := writeAnalysis(save, result); err != nil {
					return err
				}
			}
			if export {
				if err := o.RequestExport(ctx); err != nil {
					return err
				}
			}

			if ok, err := encode(cmd.OutOrStdout(), a.cfg.Format, result); ok {
				return err
			}
			o.Display(ctx).Render(cmd.OutOrStdout(), result)
			return nil
		},
	}
	cmd.Flags().BoolVar(&export, "export", false, "also export the analysis as a PDF report")
	cmd.Flags().StringVar(&save, "save", "", "write the analysis to a .yaml or .json file for later ask/translate/export")
	return cmd
}
