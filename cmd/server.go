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
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	lookup "github.com/blnkfinance/purchase-lookup"
	"github.com/blnkfinance/purchase-lookup/api"
	"github.com/blnkfinance/purchase-lookup/config"
	"github.com/blnkfinance/purchase-lookup/database"
	pgconn "github.com/blnkfinance/purchase-lookup/internal/pg-conn"
	trace "github.com/blnkfinance/purchase-lookup/internal/traces"
)

// setupLookup builds the service on top of an open pool.
func setupLookup(db *sqlx.DB, cfg *config.Configuration) (*lookup.Lookup, error) {
	ds, err := database.NewDataSource(db, cfg.Query.PageSize)
	if err != nil {
		return nil, fmt.Errorf("error getting datasource: %v", err)
	}

	l, err := lookup.NewLookup(ds)
	if err != nil {
		return nil, fmt.Errorf("error creating lookup: %v", err)
	}
	return l, nil
}

func initializeRouter(l *lookup.Lookup, cfg *config.Configuration) *gin.Engine {
	return api.NewAPI(l, cfg).Router()
}

func initializeTracing(ctx context.Context, cfg *config.Configuration) (func(context.Context) error, error) {
	if !cfg.EnableTelemetry {
		return func(context.Context) error { return nil }, nil
	}
	if err := config.SetOtlpExporterEnvs(); err != nil {
		return nil, fmt.Errorf("error exporting OTLP settings: %v", err)
	}
	shutdown, err := trace.SetupOTelSDK(ctx, cfg.ProjectName)
	if err != nil {
		return nil, fmt.Errorf("error setting up OTel SDK: %v", err)
	}
	return shutdown, nil
}

// startServer serves until ctx is done, then drains in-flight requests.
func startServer(ctx context.Context, router *gin.Engine, cfg config.ServerConfig) error {
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logrus.Infof("Starting server on http://localhost:%s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logrus.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("error shutting down server: %v", err)
	}
	return <-errCh
}

// serverCommands returns the command that opens the pool and serves the lookup API.
func serverCommands(l *lookupInstance) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "start",
		Short: "start the lookup server",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			shutdown, err := initializeTracing(ctx, l.cnf)
			if err != nil {
				return err
			}
			defer func() {
				if err := shutdown(context.Background()); err != nil {
					logrus.Errorf("Error during tracer shutdown: %v", err)
				}
			}()

			db, err := pgconn.ConnectDB(l.cnf.DataSource)
			if err != nil {
				return err
			}
			defer func() {
				if err := db.Close(); err != nil {
					logrus.Errorf("Error closing database: %v", err)
				}
			}()

			service, err := setupLookup(db, l.cnf)
			if err != nil {
				return err
			}

			return startServer(ctx, initializeRouter(service, l.cnf), l.cnf.Server)
		},
	}

	return cmd
}
