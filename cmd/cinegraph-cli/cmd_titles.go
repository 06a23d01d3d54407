package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/cinegraph/cinegraph/client"
)

func newTitlesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "titles",
		Short: "Query titles",
	}
	cmd.AddCommand(titlesSameDirectorWriterCmd())
	cmd.AddCommand(titlesBothActorsCmd())
	cmd.AddCommand(titlesBestByGenreCmd())
	return cmd
}

func pageFlags(cmd *cobra.Command, page, size *int) {
	cmd.Flags().IntVar(page, "page", 0, "Page number (0-indexed)")
	cmd.Flags().IntVar(size, "size", 10, "Items per page")
}

func titlesSameDirectorWriterCmd() *cobra.Command {
	var page, size int
	cmd := &cobra.Command{
		Use:   "same-director-writer",
		Short: "Titles whose living director also wrote them",
		Run: func(cmd *cobra.Command, args []string) {
			resp, err := apiClient.Titles.SameDirectorWriter(context.Background(), &client.PageOptions{Page: page, Size: size})
			if err != nil {
				fatal("query titles", err)
			}
			outputTitles(resp.Items, resp)
		},
	}
	pageFlags(cmd, &page, &size)
	return cmd
}

func titlesBothActorsCmd() *cobra.Command {
	var page, size int
	var byID bool
	cmd := &cobra.Command{
		Use:   "both-actors <actor1> <actor2>",
		Short: "Titles both actors are credited on",
		Long: `Titles both actors are credited on.

By default actors may be given as identifiers or exact primary names and
results are paginated. With --by-id both arguments must be identifiers and
the full list is returned in one response.`,
		Args: cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			if byID {
				titles, err := apiClient.Titles.BothActors(context.Background(), args[0], args[1])
				if err != nil {
					fatal("query titles", err)
				}
				outputTitles(titles, titles)
				return
			}
			resp, err := apiClient.Titles.BothActorsByNames(context.Background(), args[0], args[1], &client.PageOptions{Page: page, Size: size})
			if err != nil {
				fatal("query titles", err)
			}
			outputTitles(resp.Items, resp)
		},
	}
	cmd.Flags().BoolVar(&byID, "by-id", false, "Treat both arguments as identifiers and return the full list")
	pageFlags(cmd, &page, &size)
	return cmd
}

func titlesBestByGenreCmd() *cobra.Command {
	var page, size int
	cmd := &cobra.Command{
		Use:   "best-by-genre <genre>",
		Short: "Top five titles per release year for a genre",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			resp, err := apiClient.Titles.BestByGenre(context.Background(), args[0], &client.PageOptions{Page: page, Size: size})
			if err != nil {
				fatal("query titles", err)
			}
			if flagFmt == "table" {
				rows := [][]string{}
				for _, group := range resp.Items {
					for _, t := range group.Titles {
						rows = append(rows, []string{
							itoa(group.Year),
							t.Tconst,
							t.PrimaryTitle,
							ftoa(t.Rating),
							itoa(t.NumVotes),
						})
					}
				}
				formatTable([]string{"YEAR", "TCONST", "TITLE", "RATING", "VOTES"}, rows)
				return
			}
			formatJSON(resp)
		},
	}
	pageFlags(cmd, &page, &size)
	return cmd
}
