package controller

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	m "github.com/mouse-blink/cyclact/internal/model"
)

// TUI implements UI using Bubble Tea for interactive display.
type TUI struct {
	output io.Writer
	config StartConfig
	run    func(model tea.Model) error
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	t := &TUI{output: output, config: newStartConfig(nil)}
	t.run = func(model tea.Model) error {
		_, err := tea.NewProgram(model, tea.WithOutput(t.output), tea.WithAltScreen()).Run()
		return err
	}

	return t
}

// Start initializes the UI.
func (t *TUI) Start(options ...StartOption) error {
	t.config = newStartConfig(options)
	return nil
}

// Close finalizes the UI.
func (t *TUI) Close() {
}

// DisplayPlan prints the candidate group orders below a styled heading.
func (t *TUI) DisplayPlan(plan m.Plan, err error) error {
	if err != nil {
		_, _ = fmt.Fprintf(t.output, "%s\n", errorStyle.Render(fmt.Sprintf("enumeration error: %v", err)))
		return err
	}

	_, _ = fmt.Fprintf(t.output, "%s\n\n%s", headingStyle.Render(DescribeQuery(plan.Query)), renderPlanTable(plan))

	return nil
}

// DisplaySignatures shows the signatures. Long text listings open an
// interactive list; everything else is printed.
func (t *TUI) DisplaySignatures(query m.Query, signatures []m.Signature, err error) error {
	if err != nil {
		_, _ = fmt.Fprintf(t.output, "%s\n", errorStyle.Render(fmt.Sprintf("search error: %v", err)))
		return err
	}

	if t.config.format != FormatText {
		out, err := Render(t.config.format, query, signatures)
		if err != nil {
			return err
		}

		_, err = fmt.Fprint(t.output, out)

		return err
	}

	model := newSignatureModel()
	if width, height, ok := t.terminalSize(); ok {
		model.width = width
		model.height = height
	}

	model = model.handleSignaturesMsg(signaturesMsg{query: query, signatures: signatures})

	if !model.needsPagination() {
		_, err := fmt.Fprint(t.output, RenderText(query, signatures))
		return err
	}

	return t.run(model)
}

// DisplayReports prints the saved reports index.
func (t *TUI) DisplayReports(reports []m.ReportSummary, err error) error {
	if err != nil {
		_, _ = fmt.Fprintf(t.output, "%s\n", errorStyle.Render(fmt.Sprintf("reports error: %v", err)))
		return err
	}

	if len(reports) == 0 {
		_, _ = fmt.Fprintln(t.output, "No saved reports found")
		return nil
	}

	_, _ = fmt.Fprint(t.output, renderReportsTable(reports))

	return nil
}

// DisplaySaved reports where a run was stored.
func (t *TUI) DisplaySaved(path m.Path) {
	_, _ = fmt.Fprintf(t.output, "%s\n", faintStyle.Render(fmt.Sprintf("saved report to %s", path)))
}

func (t *TUI) terminalSize() (int, int, bool) {
	f, ok := t.output.(*os.File)
	if !ok {
		return 0, 0, false
	}

	width, height, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0, 0, false
	}

	return width, height, true
}

var (
	headingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	faintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)
