package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/tripleswitch/complianceos/pkg/db"
)

// dbMigrateCmd represents the db migrate command
var dbMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create and/or upgrade the database schema",
	Long: `Create and/or upgrade the database schema.

This command runs all pending migrations against COMPLY_DATABASE_URL.

Example:
  complyctl db migrate`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runMigrations(os.Stdout, db.URL()); err != nil {
			fmt.Println("Migration failed:", err)
			os.Exit(1)
		}
	},
}

var dbMigrateDownCmd = &cobra.Command{
	Use:   "down [steps]",
	Short: "Rollback database migrations",
	Long: `Rollback database migrations.

This command rolls back the specified number of migrations (default: 1).

Example:
  complyctl db down      # Rollback 1 migration
  complyctl db down 3    # Rollback 3 migrations`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		steps := 1
		if len(args) > 0 {
			n, err := strconv.Atoi(args[0])
			if err != nil || n < 1 {
				fmt.Printf("Invalid step count %q\n", args[0])
				os.Exit(1)
			}
			steps = n
		}

		if err := runMigrationsDown(os.Stdout, db.URL(), steps); err != nil {
			fmt.Println("Rollback failed:", err)
			os.Exit(1)
		}
	},
}

var dbMigrateStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show current migration version",
	Long:  `Show the current database migration version.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := showMigrationStatus(os.Stdout, db.URL()); err != nil {
			fmt.Println("Failed to get status:", err)
			os.Exit(1)
		}
	},
}

func init() {
	dbCmd.AddCommand(dbMigrateCmd)
	dbCmd.AddCommand(dbMigrateDownCmd)
	dbCmd.AddCommand(dbMigrateStatusCmd)
}

func runMigrations(w io.Writer, dbURL string) error {
	changed, err := db.MigrateUp(dbURL)
	if err != nil {
		return err
	}
	if !changed {
		fmt.Fprintln(w, "No migrations to run - database is up to date")
		return nil
	}

	status, err := db.MigrationStatus(dbURL)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Migrated to version: %d\n", status.Version)
	fmt.Fprintln(w, "Migrations complete")
	return nil
}

func runMigrationsDown(w io.Writer, dbURL string, steps int) error {
	fmt.Fprintf(w, "Rolling back %d migration(s)...\n", steps)

	status, err := db.MigrateDown(dbURL, steps)
	if err != nil {
		return err
	}
	printStatus(w, status)
	return nil
}

func showMigrationStatus(w io.Writer, dbURL string) error {
	status, err := db.MigrationStatus(dbURL)
	if err != nil {
		return err
	}
	printStatus(w, status)
	return nil
}

func printStatus(w io.Writer, status db.Status) {
	if status.None {
		fmt.Fprintln(w, "No migrations have been applied yet")
		return
	}
	fmt.Fprintf(w, "Current version: %d\n", status.Version)
	if status.Dirty {
		fmt.Fprintln(w, "Warning: Database is in a dirty state")
	}
}
