package main

import (
	"fmt"
	"os"

	"ogTemplate/internal/config"
	"ogTemplate/internal/logger"
	"ogTemplate/internal/template"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "ogtemplate [output.xlsx]",
		Short: "Generate the oil & gas financial analysis workbook template",
		Long: `ogtemplate writes a blank, protected workbook with the seven analysis
sheets (Company Input, Operational, Financial, Efficiency, Valuation, Risk,
Peer Comparison). Without an argument the file is written to
oil_gas_analysis_template.xlsx in the current directory.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          run,
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(config.DefaultPath)
	if err != nil {
		logger.Error("Failed to load config", "error", err)
		return err
	}
	if err := logger.Setup(cfg.Log.Level, cfg.Log.File); err != nil {
		return fmt.Errorf("failed to set up logging: %w", err)
	}
	defer logger.Close()

	outputFile := cfg.Output.File
	if len(args) == 1 {
		outputFile = args[0]
	}
	outputFile = template.Filename(outputFile)

	if err := template.CreateBlankTemplate(outputFile); err != nil {
		logger.Error("Template generation failed", "path", outputFile, "error", err)
		return err
	}

	fmt.Fprint(cmd.OutOrStdout(), template.RenderSummary(outputFile, template.Summary()))
	return nil
}
