package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "docanalyzer",
		Short:         "Upload a PDF for analysis, then ask questions, translate and export",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load(cmd)
		},
	}
	a.bindFlags(root)

	root.AddCommand(
		analyzeCmd(a),
		askCmd(a),
		translateCmd(a),
		exportCmd(a),
		languagesCmd(),
		shellCmd(a),
	)
	return root
}
