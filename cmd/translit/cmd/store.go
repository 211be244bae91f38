package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/solatis/translit/internal/core/config"
	"github.com/solatis/translit/internal/core/db"
	"github.com/solatis/translit/internal/resources"
	"github.com/solatis/translit/internal/types"
)

var importCmd = &cobra.Command{
	Use:   "import <dir>",
	Short: "Copy transform resources from a directory into the database",
	Args:  cobra.ExactArgs(1),
	RunE:  runImport,
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored transforms",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending database migrations",
	Args:  cobra.NoArgs,
	RunE:  runMigrate,
}

func init() {
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(migrateCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	store, release, err := openDBStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer release()

	src := resources.NewDir(args[0])
	names, err := src.List(ctx, types.NamespaceShared, types.CategoryTransforms)
	if err != nil {
		return err
	}
	for _, name := range names {
		res, err := src.GetResource(ctx, types.NamespaceShared, types.CategoryTransforms, name)
		if err != nil {
			return err
		}
		id, err := store.ImportResource(ctx, name, res)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", id, name)
	}
	return nil
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	defer w.Flush()

	if cfg.Store.Driver == config.DriverDir {
		names, err := resources.NewDir(cfg.Store.ResourceDir).List(ctx, types.NamespaceShared, types.CategoryTransforms)
		if err != nil {
			return err
		}
		for _, name := range names {
			fmt.Fprintln(w, name)
		}
		return nil
	}

	store, release, err := openDBStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer release()
	rows, err := store.ListTransforms(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, "NAME\tDIRECTION\tIMPORTED\tID")
	for _, r := range rows {
		imported := types.TransformIDTime(r.ID).UTC().Format("2006-01-02 15:04:05")
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", r.Name, r.Direction, imported, r.ID)
	}
	return nil
}

func runMigrate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if cfg.Store.DBURL == "" {
		return fmt.Errorf("--db-url or store.db_url required")
	}
	database, err := db.Open(ctx, cfg.Store.DBURL)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer database.Close()

	if err := db.MigrateUp(ctx, database); err != nil {
		return err
	}
	statuses, err := db.MigrateStatus(ctx, database)
	if err != nil {
		return err
	}
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	defer w.Flush()
	for _, s := range statuses {
		fmt.Fprintf(w, "%s\tapplied %s\t%dms\n", s.ID, s.AppliedAt, s.ExecutionMs)
	}
	return nil
}
