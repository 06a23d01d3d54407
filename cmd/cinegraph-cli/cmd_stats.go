package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func itoa(n int) string { return strconv.Itoa(n) }

func ftoa(f float64) string { return strconv.FormatFloat(f, 'f', 1, 64) }

func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Service statistics",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "request-count",
		Short: "Number of queries the server has handled",
		Run: func(cmd *cobra.Command, args []string) {
			n, err := apiClient.Stats.RequestCount(context.Background())
			if err != nil {
				fatal("get request count", err)
			}
			fmt.Println(n)
		},
	})
	return cmd
}
