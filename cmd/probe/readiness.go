package probe

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github/custodia/signing-service/internal/config"
)

func newReadiness() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "readiness",
		Short: "Runs readiness probes against the local server",
		Run: func(cmd *cobra.Command, _ []string) {
			verbose, err := cmd.Flags().GetBool(verboseFlag)
			if err != nil {
				fmt.Println("Error while parsing flags:", err)
			}

			cfg := config.DefaultServiceConfigFromEnv()

			runProbe(cfg, "/-/ready", cfg.Management.ReadinessTimeout, verbose)
		},
	}

	cmd.Flags().BoolP(verboseFlag, "v", false, "Show verbose output")

	return cmd
}

// runProbe performs a GET against the local server and exits non-zero unless
// the probe endpoint returns 200.
func runProbe(cfg config.Server, path string, timeout time.Duration, verbose bool) {
	addr := cfg.Echo.ListenAddress
	if strings.HasPrefix(addr, ":") {
		addr = "localhost" + addr
	}

	client := &http.Client{Timeout: timeout}

	res, err := client.Get("http://" + addr + path)
	if err != nil {
		fmt.Println("Probe failed:", err)
		os.Exit(1)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		fmt.Println("Probe failed:", err)
		os.Exit(1)
	}

	if verbose {
		fmt.Println(string(body))
	}

	if res.StatusCode != http.StatusOK {
		fmt.Printf("Probe failed with status %d.\n", res.StatusCode)
		os.Exit(1)
	}

	fmt.Println("Probe succeeded.")
}
