package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ericvoid/ppdpy/internal/cli/output"
	"github.com/ericvoid/ppdpy/pkg/template"
)

// checkResult is the JSON shape of one file's check outcome.
type checkResult struct {
	File  string `json:"file"`
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

// NewCheckCommand creates the check command.
func NewCheckCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check <file>...",
		Short: "Compile documents and report syntax errors",
		Long: `Compile each document without rendering it. Compilation stops at the
first syntax error in a file; checking continues with the remaining
files. The exit status is non-zero if any file fails.`,
		Example: `  # Check a single document
  ppdpy check config.txt

  # Check many documents at once
  ppdpy check templates/*.txt`,
		Args: cobra.MinimumNArgs(1),
		RunE: runCheck,
	}
}

func runCheck(cmd *cobra.Command, args []string) error {
	cmdCtx := NewCommandContext(cmd)

	compiler, err := template.NewCompiler(template.WithPrefix(cmdCtx.Cfg.Prefix))
	if err != nil {
		return err
	}

	results := make([]checkResult, 0, len(args))
	failed := 0

	for _, path := range args {
		res := checkResult{File: path, OK: true}
		if _, err := compiler.CompileFile(path); err != nil {
			res.OK = false
			res.Error = err.Error()
			failed++
		}
		results = append(results, res)
	}

	if cmdCtx.Out.EffectiveMode() == output.ModeJSON {
		enc := json.NewEncoder(cmdCtx.Out.Writer())
		enc.SetIndent("", "  ")
		if err := enc.Encode(results); err != nil {
			return err
		}
	} else {
		for _, res := range results {
			if res.OK {
				cmdCtx.Out.Success(res.File + ": ok")
			} else {
				cmdCtx.Out.Failure(res.File + ": " + res.Error)
			}
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d files failed to compile", failed, len(args))
	}
	return nil
}
