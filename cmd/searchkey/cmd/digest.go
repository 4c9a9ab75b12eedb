package cmd

import (
	"encoding/hex"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ai8future/searchkey"
)

func newDigestCmd(a *app) *cobra.Command {
	var (
		secretID string
		arabic   bool
	)

	c := &cobra.Command{
		Use:   "digest [text...]",
		Short: "Print the hex HMAC digest of each input's search key",
		Long: `digest prints the keyed digest stored in {column}_digest columns.
The 32-byte secret is read hex encoded from ` + envSecret + `.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			secret, err := secretFromEnv()
			if err != nil {
				return err
			}
			n := searchkey.NormalizeSearch
			if arabic {
				n = searchkey.NormalizeSearchArabic
			}
			d, err := searchkey.New(
				searchkey.WithSecret(secretID, secret),
				searchkey.WithNormalizer(n),
			)
			clear(secret)
			if err != nil {
				return err
			}
			defer d.Close()

			out := cmd.OutOrStdout()
			return eachInput(cmd, args, func(s string) error {
				sum := d.Digest(s)
				if sum == nil {
					a.log.Warn().Str("input", s).Msg("empty search key, no digest")
				}
				_, err := fmt.Fprintln(out, hex.EncodeToString(sum))
				return err
			})
		},
	}
	c.Flags().StringVar(&secretID, "secret-id", "v1", "secret ID reported in logs and search conditions")
	c.Flags().BoolVar(&arabic, "arabic", false, "fold Arabic letter variants before digesting")
	return c
}

func secretFromEnv() ([]byte, error) {
	raw := strings.TrimSpace(os.Getenv(envSecret))
	if raw == "" {
		return nil, fmt.Errorf("%s is not set", envSecret)
	}
	secret, err := hex.DecodeString(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", envSecret, err)
	}
	if len(secret) != 32 {
		return nil, fmt.Errorf("%s: %w", envSecret, searchkey.ErrInvalidSecretSize)
	}
	return secret, nil
}
