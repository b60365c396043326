package commands

import (
	"encoding/json"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/ericvoid/ppdpy/internal/cli/output"
)

// symbolsOutput is the JSON shape of the configured symbol sets.
type symbolsOutput struct {
	Symbols  []string            `json:"symbols"`
	Profiles map[string][]string `json:"profiles"`
}

// NewSymbolsCommand creates the symbols command.
func NewSymbolsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "symbols",
		Short: "List configured symbols and profiles",
		Long: `List the base symbols and the named profiles from the configuration.
The base symbols are always active; a profile's symbols are added when
it is selected with render --profile.`,
		Args: cobra.NoArgs,
		RunE: runSymbols,
	}
}

func runSymbols(cmd *cobra.Command, _ []string) error {
	cmdCtx := NewCommandContext(cmd)
	cfg := cmdCtx.Cfg

	if cmdCtx.Out.EffectiveMode() == output.ModeJSON {
		enc := json.NewEncoder(cmdCtx.Out.Writer())
		enc.SetIndent("", "  ")
		return enc.Encode(symbolsOutput{
			Symbols:  cfg.Symbols,
			Profiles: cfg.Profiles,
		})
	}

	t := table.NewWriter()
	t.SetOutputMirror(cmdCtx.Out.Writer())
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Profile", "Symbols"})

	if len(cfg.Symbols) > 0 {
		t.AppendRow(table.Row{"(base)", strings.Join(cfg.Symbols, ", ")})
	}
	for _, name := range cfg.ProfileNames() {
		t.AppendRow(table.Row{name, strings.Join(cfg.Profiles[name], ", ")})
	}

	if t.Length() == 0 {
		cmdCtx.Out.Println("No symbols or profiles configured.")
		return nil
	}

	t.Render()
	return nil
}
