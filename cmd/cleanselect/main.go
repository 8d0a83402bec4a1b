// Command cleanselect runs a terminal form whose select fields open a
// searchable dropdown.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "cleanselect",
		Short: "Searchable dropdowns for terminal forms",
		Long: `cleanselect renders a form described by a TOML file. Each field is a
select control that opens a searchable, themed dropdown overlay.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newRunCmd(), newCheckCmd())
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
