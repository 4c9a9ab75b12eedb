package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ai8future/searchkey"
)

func newNormalizeCmd(a *app) *cobra.Command {
	var (
		arabic  bool
		phrase  bool
		profile string
	)

	c := &cobra.Command{
		Use:   "normalize [text...]",
		Short: "Print the search key of each input",
		Example: `  searchkey normalize "Crème Brûlée"
  searchkey normalize --phrase --arabic < names.txt
  searchkey normalize --profile arabic.yaml "أحمد"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := pickNormalizer(profile, arabic, phrase)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			return eachInput(cmd, args, func(s string) error {
				key := n(s)
				a.log.Debug().Str("input", s).Str("key", key).Msg("normalized")
				_, err := fmt.Fprintln(out, key)
				return err
			})
		},
	}
	c.Flags().BoolVar(&arabic, "arabic", false, "fold Arabic letter variants")
	c.Flags().BoolVar(&phrase, "phrase", false, "keep single spaces between words")
	c.Flags().StringVar(&profile, "profile", "", "YAML normalization profile (overrides --arabic and --phrase)")
	return c
}

func pickNormalizer(profile string, arabic, phrase bool) (searchkey.Normalizer, error) {
	if profile != "" {
		p, err := searchkey.LoadProfile(profile)
		if err != nil {
			return nil, err
		}
		return p.Normalizer(), nil
	}
	mode := searchkey.ModeSearch
	if phrase {
		mode = searchkey.ModePhrase
	}
	if arabic {
		mode += "_ar"
	}
	return searchkey.GetNormalizer(mode)
}
