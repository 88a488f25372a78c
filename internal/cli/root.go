// Package cli implements the textgate command line interface over the
// client core.
package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"textgate/pkg/client"
)

var serverURL string

var rootCmd = &cobra.Command{
	Use:   "textgate",
	Short: "Submit text to analysis providers through the textgate service",
	Long: `textgate routes free text to third-party text-analysis providers
(huggingface, google_nlp, openai) through the textgate service, which
substitutes your stored API keys server-side and normalizes each
provider's response into a uniform result.

Run ` + "`textgate register`" + ` or ` + "`textgate login`" + ` first; the session
token is kept under your user config directory until logout or expiry.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", defaultServerURL(),
		"base URL of the textgate service")
}

func defaultServerURL() string {
	if url := os.Getenv("TEXTGATE_SERVER"); url != "" {
		return url
	}
	return "http://localhost:8000"
}

// newClient builds a Client over the configured server with the
// file-persisted credential store.
func newClient() (*client.Client, error) {
	store, err := client.DefaultCredentialStore()
	if err != nil {
		return nil, fmt.Errorf("locating session store: %w", err)
	}
	transport := client.NewHTTPTransport(serverURL, 30*time.Second)
	return client.New(transport, store, func() {
		fmt.Fprintln(os.Stderr, "Session expired. Run `textgate login` to re-authenticate.")
	}), nil
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
