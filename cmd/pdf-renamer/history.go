// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/anwarhahn/pdf-renamer/internal/history"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List renames recorded in the ledger",
	Long: `History lists recent entries from the rename ledger, newest first. The
ledger only exists when rename runs were given --history (or a
history_db config value).`,
	RunE: runHistory,
}

func runHistory(cmd *cobra.Command, args []string) error {
	dbPath, _ := cmd.Flags().GetString("history")
	if dbPath == "" {
		dbPath = viper.GetString("history_db")
	}
	if dbPath == "" {
		return fmt.Errorf("no ledger configured: pass --history or set history_db")
	}
	if _, err := os.Stat(dbPath); err != nil {
		return fmt.Errorf("ledger %s does not exist", dbPath)
	}

	store, err := history.Open(dbPath)
	if err != nil {
		return err
	}
	defer store.Close()

	limit, _ := cmd.Flags().GetInt("limit")
	entries, err := store.Recent(context.Background(), limit)
	if err != nil {
		return err
	}

	if len(entries) == 0 {
		fmt.Println("No renames recorded.")
		return nil
	}

	for _, e := range entries {
		fmt.Fprintf(os.Stdout, "%s  %s  <-  %s\n",
			e.RenamedAt.Local().Format(time.DateTime),
			filepath.Base(e.Target),
			filepath.Base(e.Source))
	}
	fmt.Fprintf(os.Stdout, "\n%d entries\n", len(entries))
	return nil
}

func init() {
	historyCmd.Flags().String("history", "", "path of the SQLite rename ledger")
	historyCmd.Flags().Int("limit", 20, "maximum entries to list")

	rootCmd.AddCommand(historyCmd)
}
