package main

import (
	"context"
	"strings"

	"github.com/spf13/cobra"
)

func newPersonCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "person",
		Short: "Look up people",
	}
	cmd.AddCommand(personGetCmd())
	return cmd
}

func personGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <nconst>",
		Short: "Get a person by identifier",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			person, err := apiClient.People.Get(context.Background(), args[0])
			if err != nil {
				fatal("get person", err)
			}
			if flagFmt == "table" {
				formatTable(
					[]string{"NCONST", "NAME", "BORN", "DIED", "PROFESSIONS"},
					[][]string{{
						person.Nconst,
						person.PrimaryName,
						optYear(person.BirthYear),
						optYear(person.DeathYear),
						strings.Join(person.PrimaryProfessions, ","),
					}},
				)
				return
			}
			formatJSON(person)
		},
	}
}
