package controller

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/cyclact/internal/model"
)

func manySignatures(count int) []m.Signature {
	sigs := make([]m.Signature, count)
	for i := range sigs {
		n := i + 2
		sigs[i] = m.Signature{Order: n, Points: m.Points{{Order: n, Rotation: 1}, {Order: n, Rotation: n - 1}}}
	}

	return sigs
}

func TestTUI_DisplaySignatures_ShortListIsPrinted(t *testing.T) {
	out := &bytes.Buffer{}
	ui := NewTUI(out)
	ui.run = func(tea.Model) error {
		t.Fatal("interactive list should not be started for a short result")
		return nil
	}

	require.NoError(t, ui.Start(WithSearchMode()))
	require.NoError(t, ui.DisplaySignatures(m.Query{Genus: 2}, sampleSignatures(), nil))

	assert.Equal(t, RenderText(m.Query{Genus: 2}, sampleSignatures()), out.String())
}

func TestTUI_DisplaySignatures_LongListStartsProgram(t *testing.T) {
	ui := NewTUI(&bytes.Buffer{})

	var started tea.Model

	ui.run = func(model tea.Model) error {
		started = model
		return nil
	}

	require.NoError(t, ui.Start(WithSearchMode()))
	require.NoError(t, ui.DisplaySignatures(m.Query{Genus: 0}, manySignatures(40), nil))

	model, ok := started.(signatureModel)
	require.True(t, ok)
	assert.Equal(t, 40, model.total)
	assert.Equal(t, 40, model.orders)
	assert.True(t, model.rendered)
}

func TestTUI_DisplaySignatures_NonTextFormatIsPrinted(t *testing.T) {
	out := &bytes.Buffer{}
	ui := NewTUI(out)
	ui.run = func(tea.Model) error {
		t.Fatal("interactive list should only be used for text output")
		return nil
	}

	require.NoError(t, ui.Start(WithSearchMode(), WithFormat(FormatYAML)))
	require.NoError(t, ui.DisplaySignatures(m.Query{Genus: 0}, manySignatures(40), nil))

	assert.True(t, strings.HasPrefix(out.String(), "query:"))
}

func TestTUI_DisplaySignatures_Error(t *testing.T) {
	out := &bytes.Buffer{}
	ui := NewTUI(out)

	searchErr := errors.New("boom")
	err := ui.DisplaySignatures(m.Query{}, nil, searchErr)

	assert.ErrorIs(t, err, searchErr)
	assert.Contains(t, out.String(), "search error: boom")
}

func TestTUI_DisplayPlanAndReports(t *testing.T) {
	out := &bytes.Buffer{}
	ui := NewTUI(out)

	plan := m.Plan{Query: m.Query{Genus: 1}, Upper: 6, Candidates: []m.Candidate{{Order: 6}}}
	require.NoError(t, ui.DisplayPlan(plan, nil))
	assert.Contains(t, out.String(), "genus 1")
	assert.Contains(t, out.String(), "0..0")

	out.Reset()
	require.NoError(t, ui.DisplayReports(nil, nil))
	assert.Equal(t, "No saved reports found\n", out.String())

	out.Reset()
	ui.DisplaySaved(m.Path("r/x.yaml"))
	assert.Contains(t, out.String(), "saved report to r/x.yaml")
}

func TestSignatureModel_Update(t *testing.T) {
	model := newSignatureModel()
	assert.Equal(t, "Searching signatures…\n", model.View())

	updated, _ := model.Update(signaturesMsg{query: m.Query{Genus: 0}, signatures: manySignatures(3)})
	model = updated.(signatureModel)
	assert.Equal(t, 3, model.total)

	updated, _ = model.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	model = updated.(signatureModel)
	assert.Equal(t, 100, model.width)
	assert.Equal(t, 40, model.height)
	assert.False(t, model.needsPagination())

	view := model.View()
	assert.Contains(t, view, "genus 0")
	assert.Contains(t, view, "Ramification")
	assert.Contains(t, view, "(4,1)")

	_, cmd := model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestSignatureModel_NeedsPagination(t *testing.T) {
	model := newSignatureModel()
	model.height = 20

	model = model.handleSignaturesMsg(signaturesMsg{signatures: manySignatures(11)})
	assert.Equal(t, 11, model.listHeight())
	assert.False(t, model.needsPagination())

	model = model.handleSignaturesMsg(signaturesMsg{signatures: manySignatures(12)})
	assert.True(t, model.needsPagination())

	model.height = 3
	assert.Equal(t, 5, model.listHeight())
}

func TestSignatureItem_FilterValue(t *testing.T) {
	item := signatureItem{sig: m.Signature{Order: 6, QuotientGenus: 1, Points: m.Points{{Order: 2, Rotation: 1}}}}
	assert.Equal(t, fmt.Sprintf("n=6 g'=1 %s", item.sig.Points), item.FilterValue())
}

func TestTruncateToWidth(t *testing.T) {
	tests := []struct {
		text     string
		width    int
		expected string
	}{
		{text: "(2,1) (3,1)", width: 20, expected: "(2,1) (3,1)"},
		{text: "(2,1) (3,1)", width: 6, expected: "(2,1)…"},
		{text: "(2,1)", width: 1, expected: "…"},
		{text: "(2,1)", width: 0, expected: ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, truncateToWidth(tt.text, tt.width), "width %d", tt.width)
	}
}
