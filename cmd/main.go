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

package main

import (
	"fmt"
	"log"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/blnkfinance/purchase-lookup/config"
	"github.com/blnkfinance/purchase-lookup/internal/notification"
)

// Lookup represents the CLI application, encapsulating the root Cobra command.
type Lookup struct {
	cmd *cobra.Command
}

// lookupInstance carries the loaded configuration to the subcommands.
// Commands that need the database open their own pool.
type lookupInstance struct {
	cnf *config.Configuration
}

// recoverPanic handles any panics during program execution and logs the error using Logrus.
func recoverPanic() {
	if rec := recover(); rec != nil {
		notification.NotifyError(fmt.Errorf("panic: %v", rec))
		os.Exit(1)
	}
}

// preRun loads the configuration file named by --config before any command runs.
func preRun(app *lookupInstance, configFile *string) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		err := config.InitConfig(*configFile)
		if err != nil {
			log.Fatal("error loading config", err)
		}

		cnf, err := config.Fetch()
		if err != nil {
			return err
		}
		if cnf.Debug {
			logrus.SetLevel(logrus.DebugLevel)
		}

		app.cnf = cnf
		return nil
	}
}

// NewCLI creates the command-line interface with the start, migrate, config and healthcheck commands.
func NewCLI() *Lookup {
	var configFile string
	l := &lookupInstance{}

	var rootCmd = &cobra.Command{
		Use:   "purchase-lookup",
		Short: "Account and purchase lookup service",
		Run:   func(cmd *cobra.Command, args []string) {},
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "./purchase.json", "Configuration file for the lookup service")
	rootCmd.PersistentPreRunE = preRun(l, &configFile)

	rootCmd.AddCommand(serverCommands(l))
	rootCmd.AddCommand(migrateCommands(l))
	rootCmd.AddCommand(configCommands(l))
	rootCmd.AddCommand(healthcheckCommands(l))

	return &Lookup{cmd: rootCmd}
}

// executeCLI runs the root command, handling any errors that occur during execution.
func (w Lookup) executeCLI() {
	if err := w.cmd.Execute(); err != nil {
		notification.NotifyError(err)
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func main() {
	defer recoverPanic()

	cli := NewCLI()
	cli.executeCLI()
}
