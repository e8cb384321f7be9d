package controller

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// signatureDelegate renders one signature per list row.
type signatureDelegate struct{}

func (d signatureDelegate) Height() int  { return 1 }
func (d signatureDelegate) Spacing() int { return 0 }
func (d signatureDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d signatureDelegate) Render(w io.Writer, model list.Model, index int, item list.Item) {
	entry, ok := item.(signatureItem)
	if !ok {
		return
	}

	orderStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true).Width(6).Align(lipgloss.Right)
	genusStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("13")).Width(4).Align(lipgloss.Right)
	pointsStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("14"))

	if index == model.Index() {
		selected := lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("6")).
			Bold(true)
		orderStyle = selected.Width(6).Align(lipgloss.Right)
		genusStyle = selected.Width(4).Align(lipgloss.Right)
		pointsStyle = selected
	}

	points := truncateToWidth(entry.sig.Points.String(), model.Width()-14)

	line := fmt.Sprintf("%s  %s  %s",
		orderStyle.Render(fmt.Sprintf("%d", entry.sig.Order)),
		genusStyle.Render(fmt.Sprintf("%d", entry.sig.QuotientGenus)),
		pointsStyle.Render(points),
	)
	_, _ = fmt.Fprint(w, line)
}

func truncateToWidth(text string, width int) string {
	if width <= 0 {
		return ""
	}

	if lipgloss.Width(text) <= width {
		return text
	}

	const ellipsis = "…"

	maxWidth := width - lipgloss.Width(ellipsis)
	if maxWidth <= 0 {
		return ellipsis
	}

	currentWidth := 0

	result := make([]rune, 0, len(text))
	for _, r := range text {
		rWidth := lipgloss.Width(string(r))
		if currentWidth+rWidth > maxWidth {
			break
		}

		result = append(result, r)
		currentWidth += rWidth
	}

	return string(result) + ellipsis
}

// signatureModel is the interactive, filterable list of search results.
type signatureModel struct {
	width    int
	height   int
	heading  string
	sigList  list.Model
	total    int
	orders   int
	rendered bool
}

func newSignatureModel() signatureModel {
	sigList := list.New([]list.Item{}, signatureDelegate{}, 80, 20)
	sigList.SetShowPagination(false)
	sigList.SetShowFilter(true)
	sigList.SetShowHelp(false)
	sigList.SetShowTitle(false)
	sigList.SetShowStatusBar(false)
	sigList.FilterInput.Placeholder = "Filter by order or point…"

	return signatureModel{sigList: sigList, width: 80, height: 24}
}

func (m signatureModel) Init() tea.Cmd {
	return nil
}

func (m signatureModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.sigList.SetWidth(m.width)

	case tea.KeyMsg:
		if m.sigList.FilterState() != list.Filtering {
			switch msg.String() {
			case "q", "ctrl+c":
				return m, tea.Quit
			}
		}

		m.sigList, cmd = m.sigList.Update(msg)

		return m, cmd

	case signaturesMsg:
		m = m.handleSignaturesMsg(msg)
	}

	return m, cmd
}

func (m signatureModel) handleSignaturesMsg(msg signaturesMsg) signatureModel {
	items := make([]list.Item, 0, len(msg.signatures))
	orders := make(map[int]struct{})

	for _, sig := range msg.signatures {
		items = append(items, signatureItem{sig: sig})
		orders[sig.Order] = struct{}{}
	}

	m.sigList.SetItems(items)
	m.heading = DescribeQuery(msg.query)
	m.total = len(msg.signatures)
	m.orders = len(orders)
	m.rendered = true

	return m
}

// needsPagination reports whether the results fit on one screen.
func (m signatureModel) needsPagination() bool {
	return m.total > m.listHeight()
}

func (m signatureModel) listHeight() int {
	// title (2) + summary (2) + footer (1) + border (2) + header (2)
	return max(m.height-9, 5)
}

func (m signatureModel) View() string {
	if !m.rendered {
		return "Searching signatures…\n"
	}

	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Bold(true).
		Padding(1, 0, 0, 2)

	summaryStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252")).
		Padding(0, 0, 1, 2)

	accentStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("6"))

	title := titleStyle.Render(m.heading)

	summary := summaryStyle.Render(fmt.Sprintf(
		"Signatures: %s   Group orders: %s",
		accentStyle.Render(fmt.Sprintf("%d", m.total)),
		accentStyle.Render(fmt.Sprintf("%d", m.orders)),
	))

	footer := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Align(lipgloss.Center).
		Width(m.width).
		Render("↑/k up • ↓/j down • g/G top/bottom • / filter • q quit")

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		summary,
		m.renderTable(),
		footer,
	)
}

func (m signatureModel) renderTable() string {
	listWidth := m.width - 6

	m.sigList.SetHeight(m.listHeight())
	m.sigList.SetWidth(listWidth)

	headerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Bold(true).
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("8")).
		Width(listWidth)

	headers := headerStyle.Render(fmt.Sprintf("%6s  %4s  %s", "n", "g'", "Ramification"))

	tableContainer := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("6")).
		Margin(0, 1).
		Padding(0, 1)

	return tableContainer.Render(
		lipgloss.JoinVertical(lipgloss.Left,
			headers,
			m.sigList.View(),
		),
	)
}
