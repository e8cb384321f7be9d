package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/cyclact/internal/domain"
)

const listLongDescription = `Print the candidate group orders of a query and the largest quotient
genus allowed for each of them, without searching.`

// listCmd represents the list command.
var listCmd = newListCmd()

func newListCmd() *cobra.Command {
	flags := &queryFlags{}

	cmd := &cobra.Command{
		Use:   "list GENUS [ORDER/ROTATION ...]",
		Short: "List candidate group orders",
		Long:  listLongDescription,
		Args:  flags.args,
		RunE: func(_ *cobra.Command, args []string) error {
			query, input, err := flags.query(args)
			if err != nil {
				return err
			}

			return workflow.List(domain.ListArgs{Query: query, Input: input})
		},
	}
	flags.register(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(listCmd)
}
