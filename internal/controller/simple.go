package controller

import (
	"bytes"
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "github.com/mouse-blink/cyclact/internal/model"
)

// SimpleUI implements UI using cobra Command's output writer.
type SimpleUI struct {
	cmd    *cobra.Command
	config StartConfig
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd, config: newStartConfig(nil)}
}

// Start initializes the UI.
func (s *SimpleUI) Start(options ...StartOption) error {
	s.config = newStartConfig(options)
	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close() {
}

// DisplayPlan prints the candidate group orders of a query.
func (s *SimpleUI) DisplayPlan(plan m.Plan, err error) error {
	if err != nil {
		s.errorf("enumeration error: %v\n", err)
		return err
	}

	s.printf("%s.\n\n", DescribeQuery(plan.Query))
	s.printf("%s", renderPlanTable(plan))

	return nil
}

// DisplaySignatures prints the signatures in the configured format.
func (s *SimpleUI) DisplaySignatures(query m.Query, signatures []m.Signature, err error) error {
	if err != nil {
		s.errorf("search error: %v\n", err)
		return err
	}

	out, err := Render(s.config.format, query, signatures)
	if err != nil {
		return err
	}

	s.printf("%s", out)

	return nil
}

// DisplayReports prints the saved reports index.
func (s *SimpleUI) DisplayReports(reports []m.ReportSummary, err error) error {
	if err != nil {
		s.errorf("reports error: %v\n", err)
		return err
	}

	if len(reports) == 0 {
		s.printf("No saved reports found\n")
		return nil
	}

	s.printf("%s", renderReportsTable(reports))

	return nil
}

// DisplaySaved reports where a run was stored.
func (s *SimpleUI) DisplaySaved(path m.Path) {
	s.errorf("saved report to %s\n", path)
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

func (s *SimpleUI) errorf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.ErrOrStderr(), format, args...)
}

func renderPlanTable(plan m.Plan) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Order", "Quotient genus"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_CENTER})

	for _, c := range plan.Candidates {
		table.Append([]string{fmt.Sprintf("%d", c.Order), fmt.Sprintf("0..%d", c.MaxQuotientGenus)})
	}

	table.SetFooter([]string{
		fmt.Sprintf("Candidates %d", len(plan.Candidates)),
		fmt.Sprintf("n <= %d", plan.Upper),
	})

	table.Render()

	return tableBuffer.String()
}

func renderReportsTable(reports []m.ReportSummary) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"File", "Genus", "Known", "Policy", "Signatures", "Created"})
	table.SetBorder(false)
	table.SetCenterSeparator("")

	total := 0

	for _, r := range reports {
		table.Append([]string{
			r.File,
			fmt.Sprintf("%d", r.Genus),
			r.Known,
			r.Policy,
			fmt.Sprintf("%d", r.Signatures),
			r.CreatedAt.Format("2006-01-02 15:04"),
		})

		total += r.Signatures
	}

	table.SetFooter([]string{fmt.Sprintf("Reports %d", len(reports)), "", "", "", fmt.Sprintf("%d", total), ""})
	table.Render()

	return tableBuffer.String()
}
