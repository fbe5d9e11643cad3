package cli

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/jub0bs/isolation"
)

func newCheckCmd() *cobra.Command {
	var s isolation.Signals
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Evaluate the policy for a set of request signals",
		Long: "Prints \"allow\" or \"block\" for the given Sec-Fetch-Site, Sec-Fetch-Mode, " +
			"and method.\nA header whose flag is omitted is treated as absent; pass an " +
			"empty value (e.g. --site=\"\") to model a header sent with an empty value.",
		Example: "  isolationd check --site cross-site --mode navigate --method POST",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s.SitePresent = cmd.Flags().Changed("site")
			s.ModePresent = cmd.Flags().Changed("mode")
			_, err := fmt.Fprintln(cmd.OutOrStdout(), isolation.Decide(s))
			return err
		},
	}
	cmd.Flags().StringVar(&s.Site, "site", "", "Value of the Sec-Fetch-Site header")
	cmd.Flags().StringVar(&s.Mode, "mode", "", "Value of the Sec-Fetch-Mode header")
	cmd.Flags().StringVar(&s.Method, "method", http.MethodGet, "Request method")
	return cmd
}
