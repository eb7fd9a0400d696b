package main

import (
	"fmt"
	"log"
	"os"

	"shipdesk/internal/backend"
	"shipdesk/internal/config"
	"shipdesk/internal/database"
	"shipdesk/internal/server"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "shipdesk",
	Short: "Ship design project console",
	Long: `shipdesk serves the web console for ship design projects.
All project data lives in the design backend (API_BASE_URL); the console
keeps only the session cookie and, with DB_DSN set, a local audit journal.`,
	SilenceUsage: true,
	RunE:         runServe,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the web console (default)",
	RunE:  runServe,
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the audit journal tables",
	RunE:  runMigrate,
}

func init() {
	rootCmd.AddCommand(serveCmd, migrateCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := config.Load()

	journal := database.NewJournal(nil)
	if cfg.AuditEnabled() {
		db, err := database.Open(cfg.DBDSN)
		if err != nil {
			return err
		}
		if err := database.Migrate(db); err != nil {
			return err
		}
		journal = database.NewJournal(db)
	} else {
		log.Println("DB_DSN is not set, audit journal disabled")
	}

	api := backend.New(cfg.APIBaseURL, cfg.APITimeout)
	r, err := server.NewRouter(cfg, api, journal)
	if err != nil {
		return err
	}

	addr := fmt.Sprintf(":%s", cfg.ServerPort)
	log.Printf("starting server on %s (backend %s)", addr, cfg.APIBaseURL)
	return r.Run(addr)
}

func runMigrate(cmd *cobra.Command, args []string) error {
	cfg := config.Load()
	if !cfg.AuditEnabled() {
		return fmt.Errorf("DB_DSN is not set, nothing to migrate")
	}

	db, err := database.Open(cfg.DBDSN)
	if err != nil {
		return err
	}
	if err := database.Migrate(db); err != nil {
		return err
	}
	log.Println("audit journal migrated")
	return nil
}
