package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thywilljoshua/docanalyzer/internal/locale"
	"github.com/thywilljoshua/docanalyzer/internal/translate"
)

func translateCmd(a *app) *cobra.Command {
	var to string
	var text string
	var from string

	cmd := &cobra.Command{
		Use:   "translate --to <code> (--text <text> | --from <analysis.yaml>)",
		Short: "Translate text, or a saved analysis' simplified summary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			source := text
			if from != "" {
				saved, err := readAnalysis(from)
				if err != nil {
					return err
				}
				if source == "" {
					source = saved.SimplifiedText
				}
			}

			w := translate.New(source, a.client.Translate)
			w.Logger = a.logger
			if err := w.Select(to); err != nil {
				return fmt.Errorf("translate: %w (see docanalyzer languages)", err)
			}
			if !w.CanTranslate() {
				return fmt.Errorf("translate: nothing to translate")
			}
			w.Translate(cmd.Context())
			st := w.State()
			if st.TranslatedText == "" {
				return fmt.Errorf("translate: no translation returned (run with -v for details)")
			}

			if ok, err := encode(cmd.OutOrStdout(), a.cfg.Format, map[string]string{
				"target_language": st.SelectedLanguage,
				"translated_text": st.TranslatedText,
			}); ok {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), strings.TrimSpace(st.TranslatedText))
			return nil
		},
	}
	cmd.Flags().StringVar(&to, "to", "", "target language code")
	cmd.Flags().StringVar(&text, "text", "", "text to translate")
	cmd.Flags().StringVar(&from, "from", "", "analysis saved with analyze --save; its summary is translated unless --text is set")
	_ = cmd.MarkFlagRequired("to")
	return cmd
}

func languagesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "languages",
		Short: "List supported translation languages",
		Args:  cobra.NoArgs,
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		Run: func(cmd *cobra.Command, args []string) {
			printLanguages(cmd.OutOrStdout())
		},
	}
}

func printLanguages(w io.Writer) {
	for _, l := range translate.Languages {
		fmt.Fprintf(w, "%-3s %s\n", l.Code, l.Name(locale.Default))
	}
}
