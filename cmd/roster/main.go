// Package main provides the CLI entry point for roster-go.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/ukaji3/roster-go/pkg/roster"
	"github.com/ukaji3/roster-go/pkg/roster/output"
)

var (
	configPath string
	filePath   string
	verbose    bool
	asJSON     bool
	pretty     bool
	strict     bool
)

var errChecksFailed = errors.New("verification failed")

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "roster",
		Short: "Inspect, modify and verify an employee roster workbook",
		Long: `roster-go works on a single xlsx workbook: inspect prints every sheet,
modify adds the grade column and the salary grade sheet, verify re-reads
the file and left-joins the two sheets.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logrus.SetOutput(cmd.ErrOrStderr())
			logrus.SetLevel(logrus.InfoLevel)
			if verbose {
				logrus.SetLevel(logrus.DebugLevel)
			}
		},
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "YAML config file (default: built-in demo settings)")
	rootCmd.PersistentFlags().StringVarP(&filePath, "file", "f", "", "Workbook path (overrides config)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log per-row details")

	inspectCmd := &cobra.Command{
		Use:   "inspect",
		Short: "List sheets with their columns and first rows",
		Args:  cobra.NoArgs,
		RunE:  runInspect,
	}
	inspectCmd.Flags().BoolVar(&asJSON, "json", false, "Print the summary as JSON")
	inspectCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")

	modifyCmd := &cobra.Command{
		Use:   "modify",
		Short: "Add the grade column and recreate the reference sheet",
		Args:  cobra.NoArgs,
		RunE:  runModify,
	}

	verifyCmd := &cobra.Command{
		Use:   "verify",
		Short: "Check the modified workbook and test the join",
		Args:  cobra.NoArgs,
		RunE:  runVerify,
	}
	verifyCmd.Flags().BoolVar(&strict, "strict", false, "Exit non-zero when any check fails")

	demoCmd := &cobra.Command{
		Use:   "demo",
		Short: "Write the seed roster workbook",
		Args:  cobra.NoArgs,
		RunE:  runDemo,
	}

	rootCmd.AddCommand(inspectCmd, modifyCmd, verifyCmd, demoCmd)
	return rootCmd
}

func loadConfig() (roster.Config, error) {
	cfg, err := roster.LoadConfig(configPath)
	if err != nil {
		return cfg, err
	}
	if filePath != "" {
		cfg.Path = filePath
	}
	return cfg, nil
}

func runInspect(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	summary, err := roster.Inspect(cfg.Path, cfg)
	if err != nil {
		fmt.Fprintf(cmd.OutOrStdout(), "Error reading excel file: %v\n", err)
		return nil
	}

	if asJSON {
		jsonData, err := output.ToJSON(summary, pretty)
		if err != nil {
			return fmt.Errorf("serialization failed: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(jsonData))
		return nil
	}
	output.Workbook(cmd.OutOrStdout(), summary, cfg.PreviewRows)
	return nil
}

func runModify(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	res, err := roster.Modify(cfg.Path, cfg, logrus.StandardLogger())
	if err != nil {
		return fmt.Errorf("modify failed: %w", err)
	}
	output.Modification(cmd.OutOrStdout(), res)
	return nil
}

func runVerify(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	report := roster.Verify(cfg.Path, cfg, logrus.StandardLogger())
	output.Report(cmd.OutOrStdout(), report)
	if strict && !report.Passed() {
		return errChecksFailed
	}
	return nil
}

func runDemo(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if err := roster.WriteDemo(cfg.Path, cfg); err != nil {
		return fmt.Errorf("failed to write demo workbook: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", cfg.Path)
	return nil
}
