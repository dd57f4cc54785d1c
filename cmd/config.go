package main

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/blnkfinance/purchase-lookup/internal/request"
)

func configCommands(l *lookupInstance) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "config outputs your instances computed configuration",
		Run: func(cmd *cobra.Command, args []string) {
			data, err := json.MarshalIndent(l.cnf, "", "    ")
			if err != nil {
				log.Fatalf("Error printing config: %v\n", err)
			}

			fmt.Println(string(data))
		},
	}
	return cmd
}

// healthcheckCommands probes the health endpoint of a running server.
// It exits non-zero when the server or its database is unreachable.
func healthcheckCommands(l *lookupInstance) *cobra.Command {
	var timeout time.Duration
	cmd := &cobra.Command{
		Use:   "healthcheck",
		Short: "check that a running server can reach its database",
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := http.NewRequestWithContext(cmd.Context(), http.MethodGet, "http://localhost:"+l.cnf.Server.Port+"/health", nil)
			if err != nil {
				return err
			}

			var body map[string]interface{}
			resp, err := request.Call(req, &body, timeout)
			if err != nil {
				return fmt.Errorf("health check failed: %v", err)
			}
			if resp.StatusCode != http.StatusOK {
				return fmt.Errorf("health check failed: %s %v", resp.Status, body["error"])
			}

			fmt.Println("ok")
			return nil
		},
	}
	cmd.Flags().DurationVar(&timeout, "timeout", 5*time.Second, "Request timeout")
	return cmd
}
