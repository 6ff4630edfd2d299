package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thywilljoshua/docanalyzer/internal/locale"
	"github.com/thywilljoshua/docanalyzer/internal/session"
)

const shellHelp = `commands:
  upload <pdf> [more.pdf...]   analyse a document (only the first file is used)
  tab <analysis|qa|translate|upload>
  show                         redraw the current tab
  export                       save the analysis as a PDF report
  ask <question>               ask about the document
  source <text>                replace the text to translate
  lang <code>                  pick the target language (see: languages)
  translate                    translate the source text
  languages                    list target languages
  help, quit`

func shellCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "shell [pdf]",
		Short: "Interactive session: upload, read the analysis, ask, translate, export",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()
			o := a.orchestrator(out)

			if len(args) == 1 {
				runShellLine(ctx, o, "upload "+args[0], out)
			}
			o.Render(ctx, out)
			fmt.Fprint(out, "> ")

			scanner := bufio.NewScanner(cmd.InOrStdin())
			for scanner.Scan() {
				if quit := runShellLine(ctx, o, scanner.Text(), out); quit {
					return nil
				}
				fmt.Fprint(out, "> ")
			}
			return scanner.Err()
		},
	}
}

// runShellLine executes one shell command and reports whether to quit.
func runShellLine(ctx context.Context, o *session.Orchestrator, line string, out io.Writer) bool {
	name, rest, _ := strings.Cut(strings.TrimSpace(line), " ")
	rest = strings.TrimSpace(rest)

	switch name {
	case "":
		return false
	case "quit", "exit":
		return true
	case "help":
		fmt.Fprintln(out, shellHelp)
		return false
	case "languages":
		printLanguages(out)
		return false
	case "show":
	case "upload":
		if err := o.Select(session.TabUpload); err != nil {
			fmt.Fprintln(out, err)
			return false
		}
		if !o.Upload(ctx).Drop(strings.Fields(rest)...) {
			fmt.Fprintln(out, locale.Default("upload.rejected", nil))
		}
	case "tab":
		tab, err := session.ParseTab(rest)
		if err == nil {
			err = o.Select(tab)
		}
		if err != nil {
			fmt.Fprintln(out, err)
			return false
		}
	case "export":
		if _, ok := o.Analysis(); !ok {
			fmt.Fprintln(out, session.ErrNoAnalysis)
			return false
		}
		o.Display(ctx).Export()
		return false
	case "ask":
		w, err := o.QA()
		if err != nil {
			fmt.Fprintln(out, err)
			return false
		}
		_ = o.Select(session.TabQA)
		w.Ask(ctx, rest)
	case "source", "lang", "translate":
		w, err := o.Translation()
		if err != nil {
			fmt.Fprintln(out, err)
			return false
		}
		_ = o.Select(session.TabTranslate)
		switch name {
		case "source":
			w.SetSourceText(rest)
		case "lang":
			if err := w.Select(rest); err != nil {
				fmt.Fprintln(out, err)
				return false
			}
		case "translate":
			w.Translate(ctx)
		}
	default:
		fmt.Fprintf(out, "unknown command %q, try help\n", name)
		return false
	}
	o.Render(ctx, out)
	return false
}
