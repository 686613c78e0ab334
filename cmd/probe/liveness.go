package probe

import (
	"fmt"
	"net/url"

	"github.com/spf13/cobra"
	"github/custodia/signing-service/internal/config"
)

func newLiveness() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "liveness",
		Short: "Runs liveness probes against the local server",
		Run: func(cmd *cobra.Command, _ []string) {
			verbose, err := cmd.Flags().GetBool(verboseFlag)
			if err != nil {
				fmt.Println("Error while parsing flags:", err)
			}

			cfg := config.DefaultServiceConfigFromEnv()
			query := url.Values{"mgmt-secret": []string{cfg.Management.Secret}}

			runProbe(cfg, "/-/healthy?"+query.Encode(), cfg.Management.LivenessTimeout, verbose)
		},
	}

	cmd.Flags().BoolP(verboseFlag, "v", false, "Show verbose output")

	return cmd
}
