// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/anwarhahn/pdf-renamer/internal/extract"
	"github.com/anwarhahn/pdf-renamer/internal/history"
	"github.com/anwarhahn/pdf-renamer/internal/model"
	"github.com/anwarhahn/pdf-renamer/internal/rename"
	"github.com/anwarhahn/pdf-renamer/pkg/types"
)

var renameCmd = &cobra.Command{
	Use:   "rename <input-dir> <output-dir> <model> <date-format>",
	Short: "Rename every PDF in the input directory",
	Long: `Rename processes every *.pdf file in the input directory and moves each
one into the output directory as {date}_{publisher}_{title}.pdf, where
the date follows the given strftime pattern (e.g. "%Y%m%d").

A missing or empty input directory is a no-op. The output directory must
already exist. Files whose processing fails are skipped with a log line;
the command exits non-zero when any file failed.`,
	Args: cobra.ExactArgs(4),
	RunE: runRename,
}

func runRename(cmd *cobra.Command, args []string) error {
	cfg, err := renameConfig(cmd, args)
	if err != nil {
		return err
	}

	logW := io.Writer(os.Stdout)
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("opening logfile: %w", err)
		}
		defer f.Close()
		logW = io.MultiWriter(os.Stdout, f)
	}

	ctx := context.Background()

	backend, err := model.New(ctx, cfg)
	if err != nil {
		return err
	}

	extractor, err := extract.New(backend, cfg.DateFormat, logW)
	if err != nil {
		return err
	}

	var ledger *history.Store
	if cfg.HistoryDB != "" {
		ledger, err = history.Open(cfg.HistoryDB)
		if err != nil {
			return err
		}
		defer ledger.Close()
	}

	runner := rename.NewRunner(cfg, extractor, ledger, logW)
	summary, err := runner.Run(ctx)
	if err != nil {
		return err
	}

	if cfg.ReportPath != "" {
		if err := rename.WriteReport(cfg.ReportPath, summary); err != nil {
			fmt.Fprintf(logW, "warning: report write failed: %v\n", err)
		} else {
			fmt.Fprintf(logW, "report written to %s\n", cfg.ReportPath)
		}
	}

	if summary.HasFailures() {
		return fmt.Errorf("%d file(s) failed", summary.Failed)
	}
	return nil
}

// renameConfig builds the run configuration from positional arguments,
// flags, config file values, and loaded secrets.
func renameConfig(cmd *cobra.Command, args []string) (types.RenameConfig, error) {
	backendFlag, _ := cmd.Flags().GetString("backend")
	ollamaURL, _ := cmd.Flags().GetString("ollama-url")
	historyDB, _ := cmd.Flags().GetString("history")
	reportPath, _ := cmd.Flags().GetString("report")
	logFile, _ := cmd.Flags().GetString("logfile")

	if ollamaURL == "" {
		ollamaURL = viper.GetString("ollama_url")
	}
	if historyDB == "" {
		historyDB = viper.GetString("history_db")
	}

	cfg := types.RenameConfig{
		InputDir:   args[0],
		OutputDir:  args[1],
		Model:      args[2],
		DateFormat: args[3],
		Backend:    types.BackendKind(backendFlag),
		OllamaURL:  ollamaURL,
		HistoryDB:  historyDB,
		ReportPath: reportPath,
		LogFile:    logFile,
	}

	if !cfg.Backend.Valid() {
		return cfg, fmt.Errorf("unknown backend %q: use auto, ollama, anthropic, or gemini", backendFlag)
	}

	kind := cfg.Backend
	if kind == types.BackendAuto {
		kind = model.Detect(cfg.Model)
	}
	switch kind {
	case types.BackendAnthropic:
		cfg.APIKey = secretDefault("anthropic-api-key", viper.GetString("anthropic_api_key"))
	case types.BackendGemini:
		cfg.APIKey = secretDefault("gemini-api-key", viper.GetString("gemini_api_key"))
	}

	return cfg, nil
}

func init() {
	renameCmd.Flags().String("backend", "auto", "model API: auto, ollama, anthropic, or gemini")
	renameCmd.Flags().String("ollama-url", "", "base URL of the local Ollama server (default http://localhost:11434)")
	renameCmd.Flags().String("history", "", "SQLite ledger recording each rename (disabled when empty)")
	renameCmd.Flags().String("report", "", "write a YAML batch report to this path")
	renameCmd.Flags().String("logfile", "", "additionally log to this file")

	rootCmd.AddCommand(renameCmd)
}
