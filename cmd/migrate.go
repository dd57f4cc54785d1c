/*
Copyright 2024 Blnk Finance Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

/*
Package main provides the CLI commands for managing database migrations of the lookup schema.
This includes commands for applying and rolling back migrations.
*/

package main

import (
	"fmt"

	migrate "github.com/rubenv/sql-migrate"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/blnkfinance/purchase-lookup/database"
	pgconn "github.com/blnkfinance/purchase-lookup/internal/pg-conn"
)

// migrateCommands creates the root command for migration-related operations.
func migrateCommands(l *lookupInstance) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "apply or roll back the lookup schema",
	}

	cmd.AddCommand(migrateDirectionCommand(l, "up", migrate.Up))
	cmd.AddCommand(migrateDirectionCommand(l, "down", migrate.Down))

	return cmd
}

// migrateDirectionCommand runs every pending migration in one direction.
func migrateDirectionCommand(l *lookupInstance, use string, dir migrate.MigrationDirection) *cobra.Command {
	cmd := &cobra.Command{
		Use: use,
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := pgconn.ConnectDB(l.cnf.DataSource)
			if err != nil {
				return fmt.Errorf("error connecting to database: %v", err)
			}
			defer func() { _ = db.Close() }()

			n, err := database.Migrate(db.DB, l.cnf.DataSource.Driver, dir)
			if err != nil {
				return fmt.Errorf("error migrating %s: %v", use, err)
			}

			if dir == migrate.Up {
				logrus.Infof("Applied %d migrations!", n)
			} else {
				logrus.Infof("Rolled back %d migrations!", n)
			}
			return nil
		},
	}

	return cmd
}
