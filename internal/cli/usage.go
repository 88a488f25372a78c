package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var usageCmd = &cobra.Command{
	Use:   "usage",
	Short: "Show per-provider usage counts",
	RunE:  runUsage,
}

func init() {
	rootCmd.AddCommand(usageCmd)
}

func runUsage(cmd *cobra.Command, args []string) error {
	c, err := newClient()
	if err != nil {
		return err
	}

	records, err := c.Usage(cmd.Context())
	if err != nil {
		return err
	}
	if len(records) == 0 {
		fmt.Println("No provider calls recorded yet.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "PROVIDER\tCALLS\tLAST USED")
	for _, record := range records {
		fmt.Fprintf(w, "%s\t%d\t%s\n", record.APIName, record.UsageCount,
			record.LastUsed.Local().Format("2006-01-02 15:04:05"))
	}
	return w.Flush()
}
