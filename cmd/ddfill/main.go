// Command ddfill builds the DD-Metrics template and fills dashboards from local JSON files.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"attendance-dashboard/internal/constants"
	"attendance-dashboard/internal/service/dashboard"
	generate_excel "attendance-dashboard/internal/service/generate-excel"
	"attendance-dashboard/internal/storage/filesystem"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "ddfill",
		Short:        "Build and fill DD-Metrics attendance workbooks",
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newLayoutCmd(), newFillCmd())

	return rootCmd
}

func newLayoutCmd() *cobra.Command {
	var outputPath string

	cmd := &cobra.Command{
		Use:   "layout",
		Short: "Write an empty DD-Metrics template",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := generate_excel.NewGenerateService().DashboardLayout()
			if err != nil {
				return err
			}
			defer f.Close()

			if err := f.SaveAs(outputPath); err != nil {
				return fmt.Errorf("failed to write %s: %w", outputPath, err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "template written to %s\n", outputPath)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "template.xlsx", "Output file path")

	return cmd
}

func newFillCmd() *cobra.Command {
	var (
		templatePath string
		payloadPath  string
		outputPath   string
	)

	cmd := &cobra.Command{
		Use:   "fill",
		Short: "Fill the template from a JSON payload",
		Long: `Fill reads a payload of the same shape as the POST /api/generate-dashboard body
and writes the resulting workbook. Without --payload the built-in sample is used.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := readPayload(cmd.InOrStdin(), payloadPath)
			if err != nil {
				return err
			}

			payload, err := dashboard.ValidatePayload(raw)
			if err != nil {
				return err
			}

			templates, err := filesystem.New(templatePath)
			if err != nil {
				return err
			}

			data, err := dashboard.NewService(templates).GenerateDashboard(cmd.Context(), payload)
			if err != nil {
				return err
			}

			if err := os.WriteFile(outputPath, data, 0o644); err != nil {
				return fmt.Errorf("failed to write %s: %w", outputPath, err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "dashboard written to %s\n", outputPath)
			return nil
		},
	}

	cmd.Flags().StringVarP(&templatePath, "template", "t", "template.xlsx", "Template workbook")
	cmd.Flags().StringVarP(&payloadPath, "payload", "p", "", "Payload JSON file, - for stdin")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "Daily_Attendance_Auto.xlsx", "Output file path")

	return cmd
}

func readPayload(stdin io.Reader, path string) (any, error) {
	switch path {
	case "":
		return constants.SmokePayload(), nil
	case "-":
		return dashboard.DecodePayload(stdin)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open payload: %w", err)
	}
	defer f.Close()

	return dashboard.DecodePayload(f)
}

// run executes the root command with args; used by tests.
func run(ctx context.Context, stdin io.Reader, stdout io.Writer, args ...string) error {
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stdout)
	return cmd.ExecuteContext(ctx)
}
