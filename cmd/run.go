package cmd

import (
	"os"
	"os/signal"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/cyclact/internal/controller"
	"github.com/mouse-blink/cyclact/internal/domain"
	m "github.com/mouse-blink/cyclact/internal/model"
)

const runLongDescription = `Search every candidate group order and print the signatures found.

Examples:
  cyclact run 2                  all cyclic actions on a genus 2 curve
  cyclact run 3 4/1 4/3          actions on genus 3 with two points of order 4
  cyclact run 1 -n 2 -n 3        actions of Z/2 and Z/3 on a torus
  cyclact run -i query.yaml -f latex --save`

// runCmd represents the run command.
var runCmd = newRunCmd()

func newRunCmd() *cobra.Command {
	flags := &queryFlags{}

	cmd := &cobra.Command{
		Use:   "run GENUS [ORDER/ROTATION ...]",
		Short: "Enumerate signatures",
		Long:  runLongDescription,
		Args:  flags.args,
		RunE: func(cmd *cobra.Command, args []string) error {
			query, input, err := flags.query(args)
			if err != nil {
				return err
			}

			format, err := controller.ParseFormat(cfg.GetString("format"))
			if err != nil {
				return err
			}

			ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer cancel()

			return workflow.Search(ctx, domain.SearchArgs{
				Query:   query,
				Input:   input,
				Threads: cfg.GetInt("parallel"),
				Format:  format,
				Save:    cfg.GetBool("save"),
				Reports: m.Path(cfg.GetString("reports")),
			})
		},
	}
	flags.register(cmd)
	cmd.Flags().IntP("parallel", "p", runtime.NumCPU(), "number of parallel search workers")
	cmd.Flags().StringP("format", "f", string(controller.FormatText), "output format: text, latex or yaml")
	cmd.Flags().Bool("save", false, "save the result to the reports directory")

	return cmd
}

func init() {
	rootCmd.AddCommand(runCmd)
}
