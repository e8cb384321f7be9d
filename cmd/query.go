package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/cyclact/internal/domain"
	m "github.com/mouse-blink/cyclact/internal/model"
)

// queryFlags are the flags shared by the commands that take a query.
type queryFlags struct {
	orders []int
	input  string
}

func (f *queryFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntSliceVarP(&f.orders, "order", "n", nil, "only consider these group orders (can be repeated)")
	cmd.Flags().Bool("fixed-generator", false, "compare rotation indices literally instead of up to a change of generator")
	cmd.Flags().StringVarP(&f.input, "input", "i", "", "read the query from a YAML file")
}

// args accepts GENUS followed by points, or only points when --input is set.
func (f *queryFlags) args(_ *cobra.Command, args []string) error {
	if f.input == "" && len(args) == 0 {
		return fmt.Errorf("requires GENUS or --input")
	}

	return nil
}

// query builds the query from the positional arguments and the flags.
func (f *queryFlags) query(args []string) (m.Query, m.Path, error) {
	query, err := parseQueryArgs(args, f.input == "")
	if err != nil {
		return m.Query{}, "", err
	}

	query.Orders = f.orders

	query.Policy = m.RelabelFree
	if cfg.GetBool("fixed-generator") {
		query.Policy = m.RelabelFixed
	}

	return query, m.Path(f.input), nil
}

func parseQueryArgs(args []string, withGenus bool) (m.Query, error) {
	var query m.Query

	if withGenus {
		if len(args) == 0 {
			return m.Query{}, fmt.Errorf("%w: genus is required", domain.ErrInvalidInput)
		}

		genus, err := strconv.Atoi(args[0])
		if err != nil {
			return m.Query{}, fmt.Errorf("%w: genus %q is not an integer", domain.ErrInvalidInput, args[0])
		}

		query.Genus = genus
		args = args[1:]
	}

	for _, arg := range args {
		p, err := m.ParsePoint(arg)
		if err != nil {
			return m.Query{}, fmt.Errorf("%w: %w", domain.ErrInvalidInput, err)
		}

		query.Known = append(query.Known, p)
	}

	return query, nil
}
