package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/ericvoid/ppdpy/internal/cli/output"
	"github.com/ericvoid/ppdpy/pkg/expr"
	"github.com/ericvoid/ppdpy/pkg/template"
)

// renderOutput is the JSON shape of a rendered document.
type renderOutput struct {
	File    string   `json:"file"`
	Symbols []string `json:"symbols"`
	Output  string   `json:"output"`
}

// NewRenderCommand creates the render command.
func NewRenderCommand() *cobra.Command {
	var (
		profile string
		defines []string
		outPath string
		watch   bool
	)

	cmd := &cobra.Command{
		Use:   "render <file>",
		Short: "Render a document with its conditional branches resolved",
		Long: `Render a document against an active symbol set: conditional blocks
keep the first branch whose guard is true and drop everything else.

The active symbol set is the union of the configured base symbols,
the selected profile's symbols, and any -D definitions.`,
		Example: `  # Render with two symbols defined
  ppdpy render config.txt -D linux -D debug

  # Render with a profile from ppdpy.yaml
  ppdpy render config.txt --profile prod

  # Write the result to a file and re-render on change
  ppdpy render config.txt --out config.out --watch`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, args[0], profile, defines, outPath, watch)
		},
	}

	cmd.Flags().StringVarP(&profile, "profile", "p", "", "Symbol profile to activate")
	cmd.Flags().StringArrayVarP(&defines, "define", "D", nil, "Define an active symbol (repeatable)")
	cmd.Flags().StringVar(&outPath, "out", "", "Write output to file instead of stdout")
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "Re-render whenever the input file changes")

	return cmd
}

func runRender(cmd *cobra.Command, path, profile string, defines []string, outPath string, watch bool) error {
	cmdCtx := NewCommandContext(cmd)

	symbols, err := cmdCtx.Cfg.SymbolSetFor(profile, defines)
	if err != nil {
		return err
	}

	compiler, err := template.NewCompiler(template.WithPrefix(cmdCtx.Cfg.Prefix))
	if err != nil {
		return err
	}

	renderOnce := func() error {
		tmpl, err := compiler.CompileFile(path)
		if err != nil {
			return fmt.Errorf("failed to compile %s: %w", path, err)
		}
		return emitRender(cmdCtx, path, tmpl.Render(symbols), symbols, outPath)
	}

	if err := renderOnce(); err != nil {
		return err
	}

	if !watch {
		return nil
	}
	return watchFile(cmd.Context(), cmdCtx, path, renderOnce)
}

// emitRender writes a render result to the output file or the
// renderer, honoring the output mode.
func emitRender(cmdCtx *CommandContext, path, text string, symbols expr.SymbolSet, outPath string) error {
	if outPath != "" {
		// File output gets a final newline so the result is a
		// well-formed text file.
		if err := os.WriteFile(outPath, []byte(text+"\n"), 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", outPath, err)
		}
		cmdCtx.Logger.Debug("rendered", "file", path, "out", outPath)
		return nil
	}

	r := cmdCtx.Out
	switch r.EffectiveMode() {
	case output.ModeJSON:
		names := symbols.Names()
		sort.Strings(names)
		enc := json.NewEncoder(r.Writer())
		enc.SetIndent("", "  ")
		return enc.Encode(renderOutput{
			File:    path,
			Symbols: names,
			Output:  text,
		})
	case output.ModeMarkdown:
		r.Println(output.FormatHeader(1, "Rendered: "+path))
		r.Println("")
		r.Println(output.FormatCodeBlock("", text))
	default:
		r.Println(text)
	}

	return nil
}
