package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ai8future/searchkey"
)

func newSlugCmd(a *app) *cobra.Command {
	var id string

	c := &cobra.Command{
		Use:     "slug <text>",
		Short:   "Print a URL slug for the text",
		Example: `  searchkey slug --id F13D1B0F57244688 "crème brûlée"`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args, " ")
			var (
				slug string
				err  error
			)
			if id != "" {
				slug, err = searchkey.PermaLinkWithID(text, id)
			} else {
				slug, err = searchkey.PermaLink(text)
			}
			if err != nil {
				return err
			}
			a.log.Debug().Str("input", text).Str("slug", slug).Msg("slug")
			_, err = fmt.Fprintln(cmd.OutOrStdout(), slug)
			return err
		},
	}
	c.Flags().StringVar(&id, "id", "", "identifier appended to the slug (first 10 characters)")
	return c
}
