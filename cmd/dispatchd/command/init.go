// Copyright (c) 2025 ClimaTec Sistemas
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package command

import (
	"context"
	"fmt"

	"github.com/climatec/dispatch/pkg/adapter/config"
	"github.com/climatec/dispatch/pkg/adapter/db/postgres"
	"github.com/climatec/dispatch/pkg/core/repo"
	"github.com/spf13/cobra"
)

var withDevData bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the database schema",
	Long: `Initialize the database schema by creating the dispatch
tables and indices. The database connection information are read from
the configuration file. Initialization is idempotent, so re-running it
against an existing database makes no changes.
With the --dev flag, a sample technician, client, address, and service
are inserted too, so appointments may be booked right away in a
development environment.`,
	RunE: initDB,
	Args: cobra.NoArgs,
}

func initDB(_ *cobra.Command, _ []string) error {
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
	err = p.Conn(ctx, func(ctx context.Context, conn repo.Conn) error {
		return conn.Tx(ctx, func(ctx context.Context, tx repo.Tx) error {
			if err := postgres.InitSchema(ctx, tx); err != nil {
				return err
			}
			if withDevData {
				return postgres.SeedDev(ctx, tx)
			}
			return nil
		})
	})
	if err != nil {
		return fmt.Errorf("initializing DB: %w", err)
	}
	return nil
}

func init() {
	initCmd.Flags().BoolVar(
		&withDevData, "dev", false, "insert development sample data",
	)
	dbCmd.AddCommand(initCmd)
}
