package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"textgate/pkg/provider"
)

var submitAPI string

var submitCmd = &cobra.Command{
	Use:   "submit --api <provider> <text>...",
	Short: "Send text to a provider and print the normalized result",
	Long: `Send text to the chosen provider. Supported providers: ` +
		providerList() + `.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSubmit,
}

func init() {
	submitCmd.Flags().StringVar(&submitAPI, "api", "", "provider to use ("+providerList()+")")
	_ = submitCmd.MarkFlagRequired("api")
	rootCmd.AddCommand(submitCmd)
}

func providerList() string {
	ids := provider.All()
	names := make([]string, len(ids))
	for i, id := range ids {
		names[i] = string(id)
	}
	return strings.Join(names, ", ")
}

func runSubmit(cmd *cobra.Command, args []string) error {
	c, err := newClient()
	if err != nil {
		return err
	}

	result, err := c.Submit(cmd.Context(), provider.ID(submitAPI), strings.Join(args, " "))
	if err != nil {
		return err
	}

	fmt.Print(formatResult(result))
	return nil
}

// formatResult renders a normalized result for the terminal, one layout
// per provider variant.
func formatResult(result *provider.Result) string {
	var b strings.Builder
	switch result.API {
	case provider.HuggingFace:
		fmt.Fprintf(&b, "Label: %s\n", result.HuggingFace.Label)
		fmt.Fprintf(&b, "Score: %.4f\n", result.HuggingFace.Score)
	case provider.GoogleNLP:
		fmt.Fprintf(&b, "Sentiment score:     %+.2f\n", result.GoogleNLP.Sentiment.Score)
		fmt.Fprintf(&b, "Sentiment magnitude: %.2f\n", result.GoogleNLP.Sentiment.Magnitude)
		if len(result.GoogleNLP.Entities) > 0 {
			b.WriteString("Entities:\n")
			for _, entity := range result.GoogleNLP.Entities {
				fmt.Fprintf(&b, "  %-20s %-14s salience %.2f\n", entity.Name, entity.Type, entity.Salience)
			}
		}
	case provider.OpenAI:
		fmt.Fprintf(&b, "%s\n", result.OpenAI.Text)
	}
	return b.String()
}
