package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/cyclact/internal/domain"
	m "github.com/mouse-blink/cyclact/internal/model"
)

// viewCmd represents the view command.
var viewCmd = newViewCmd()

func newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view",
		Short: "View saved reports",
		Long:  "View the reports saved with run --save in the reports directory.",
		Args:  cobra.ExactArgs(0),
		RunE: func(_ *cobra.Command, _ []string) error {
			return workflow.View(domain.ViewArgs{Reports: m.Path(cfg.GetString("reports"))})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
