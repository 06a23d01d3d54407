package main

import (
	"context"

	"github.com/spf13/cobra"
)

func newHealthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check server liveness and dataset readiness",
		Run: func(cmd *cobra.Command, args []string) {
			health, err := apiClient.Health(context.Background())
			if err != nil {
				fatal("health check", err)
			}
			ready, err := apiClient.Ready(context.Background())
			if err != nil {
				formatJSON(map[string]any{"health": health, "ready": false})
				return
			}
			formatJSON(map[string]any{"health": health, "ready": ready})
		},
	}
}
