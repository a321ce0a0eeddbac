// Command ccparse drives the parser core against a preprocessed C source
// file from the command line: it loads a builtin-typedef-name config,
// scans the file with the lexer package's reference Lexer, calls
// parser.Parse, and either dumps the resulting translation unit or reports
// the first error in "file:line:col: message" form.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"ccparse/ast"
	"ccparse/lexer"
	"ccparse/parser"
	"ccparse/util"
)

func main() {
	os.Exit(run())
}

func run() int {
	rootCmd := newRootCmd(os.Stdout, os.Stderr)
	if err := rootCmd.Execute(); err != nil {
		return 1
	}
	return 0
}

func newRootCmd(out, errOut *os.File) *cobra.Command {
	var configPath string
	var dumpAST bool
	var startLine, startColumn int

	rootCmd := &cobra.Command{
		Use:           "ccparse [file]",
		Short:         "ccparse parses preprocessed C99+GNU source into an AST",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			filename := args[0]
			cfg := defaultConfig()
			var src []byte
			var tu *ast.TranslationUnit

			err := util.NewPipeline().
				Then(func() error {
					if configPath == "" {
						return nil
					}
					loaded, err := LoadConfig(configPath)
					if err != nil {
						return fmt.Errorf("ccparse: reading config %s: %w", configPath, err)
					}
					cfg = loaded
					return nil
				}).
				Then(func() error {
					if cmd.Flags().Changed("start-line") {
						cfg.StartLine = startLine
					}
					if cmd.Flags().Changed("start-column") {
						cfg.StartColumn = startColumn
					}
					return nil
				}).
				Then(func() error {
					data, err := os.ReadFile(filename)
					if err != nil {
						return fmt.Errorf("ccparse: %w", err)
					}
					src = data
					return nil
				}).
				Then(func() error {
					l := lexer.New(filename, src, cfg.StartLine, cfg.StartColumn)
					parsed, perr := parser.Parse(l, cfg.BuiltinTypedefNames, 0)
					if perr != nil {
						fmt.Fprintf(errOut, "%s\n", perr.Error())
						return perr
					}
					tu = parsed
					return nil
				}).
				Error()
			if err != nil {
				return err
			}

			if dumpAST {
				dumpTranslationUnit(out, tu)
			}
			return nil
		},
	}
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)

	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "path to a YAML builtin-typedef-name config")
	rootCmd.Flags().BoolVar(&dumpAST, "dump-ast", false, "print a summary of the parsed translation unit")
	rootCmd.Flags().IntVar(&startLine, "start-line", 1, "source line number of the file's first byte")
	rootCmd.Flags().IntVar(&startColumn, "start-column", 1, "source column number of the file's first byte")

	return rootCmd
}
