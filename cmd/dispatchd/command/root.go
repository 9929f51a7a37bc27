// Copyright (c) 2025 ClimaTec Sistemas
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package command provides the root and sub-commands for the dispatch
// scheduling backend. Commands are organized using the cobra library.
// The root command starts the web server itself while the "db"
// sub-command groups the database management actions.
//
//	./dispatchd [-c /path/of/main/config.yaml]       # start web server
//	./dispatchd db init [--dev] [-c /path/of/main/config.yaml]
package command

import (
	"context"
	"fmt"
	"os"

	"github.com/climatec/dispatch/pkg/adapter/config"
	"github.com/climatec/dispatch/pkg/adapter/restful/gin/routes"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var cfgPath string

var rootCmd = &cobra.Command{
	Use:   "dispatchd",
	Short: "Scheduling backend of the ClimaTec dispatch operation",
	Long: `Scheduling backend of the ClimaTec dispatch operation,
covering the clients, technicians, service catalog, client addresses,
and appointments of a home-service business. The appointment booking
engine validates the entity references and guards every technician
time slot against double-booking, both in the booking transaction and
by a partial unique database index.`,
	RunE: startWebServer,
}

func startWebServer(_ *cobra.Command, _ []string) error {
	ctx := context.Background()
	c, err := config.LoadFile(cfgPath)
	if err != nil {
		return fmt.Errorf("config.LoadFile(%q): %w", cfgPath, err)
	}
	p, err := c.ConnectionPool(ctx)
	if err != nil {
		return fmt.Errorf("creating DB pool: %w", err)
	}
	defer p.Close()
	e := c.Gin.NewEngine()
	if err = routes.Register(e, p, c); err != nil {
		return fmt.Errorf("registering routes: %w", err)
	}
	if err = e.Run(c.Gin.Address); err != nil {
		return fmt.Errorf("running Gin engine: %w", err)
	}
	return nil
}

// Execute runs the rootCmd which in turn parses CLI arguments and
// flags and runs the most specific cobra command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(loadDotEnv, fixConfigPath)
	rootCmd.PersistentFlags().StringVarP(
		&cfgPath, "config", "c", "", "config file path",
	)
}

// loadDotEnv fills the process environment from a .env file in the
// working directory, if one exists, so the DB_PASSWORD and
// TOKEN_SECRET secrets may be kept out of both the configuration file
// and the shell history. Existing environment variables win.
func loadDotEnv() {
	_ = godotenv.Load()
}

// fixConfigPath ensures that cfgPath is set respectively by either the
// CLI args, the CONFIG_FILE environment variable, or its default
// value.
func fixConfigPath() {
	if cfgPath != "" {
		return
	}
	var found bool
	if cfgPath, found = os.LookupEnv("CONFIG_FILE"); !found {
		cfgPath = "configs/sample-config.yaml"
	}
}
