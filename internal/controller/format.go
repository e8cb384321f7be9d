package controller

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	m "github.com/mouse-blink/cyclact/internal/model"
)

// DescribeQuery returns the one-line heading used by the text and LaTeX formats.
func DescribeQuery(query m.Query) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Faithful actions of cyclic groups on a curve of genus %d", query.Genus)

	if len(query.Known) > 0 {
		fmt.Fprintf(&b, " with ramification points %s", joinPowers(query.Known.Sorted(), "(%d,%d)", "^%d"))
	}

	if len(query.Orders) > 0 {
		orders := make([]string, len(query.Orders))
		for i, n := range query.Orders {
			orders[i] = fmt.Sprint(n)
		}

		fmt.Fprintf(&b, ", group orders %s", strings.Join(orders, ", "))
	}

	if query.Policy == m.RelabelFixed {
		b.WriteString(", fixed generator")
	}

	return b.String()
}

// RenderText renders one signature per line below a heading.
func RenderText(query m.Query, signatures []m.Signature) string {
	var b strings.Builder

	b.WriteString(DescribeQuery(query))
	b.WriteString(".\n\n")

	if len(signatures) == 0 {
		b.WriteString("No signatures found.\n")
		return b.String()
	}

	for _, sig := range signatures {
		b.WriteString(sig.String())
		b.WriteByte('\n')
	}

	return b.String()
}

// RenderLaTeX renders the signatures as a booktabs table grouped by group
// order and, within an order, by decreasing quotient genus.
func RenderLaTeX(query m.Query, signatures []m.Signature) string {
	var b strings.Builder

	b.WriteString(`\begin{table}
  \centering
  \begin{tabular}{lll}
    \toprule
    $n$ & $g'$ & Ramification\\
    \midrule[1pt]
`)

	groups := groupByOrder(signatures)

	for gi, group := range groups {
		quotients := groupByQuotientGenus(group)

		for qi, rows := range quotients {
			for ri, sig := range rows {
				b.WriteString("    ")

				if qi == 0 && ri == 0 {
					fmt.Fprintf(&b, "\\multirow{%d}{*}{$%d$} ", len(group), sig.Order)
				}

				b.WriteString("& ")

				if ri == 0 {
					fmt.Fprintf(&b, "\\multirow{%d}{*}{$%d$} ", len(rows), sig.QuotientGenus)
				}

				fmt.Fprintf(&b, "& $%s$\\\\\n", joinPowers(sig.Points, "(%d,%d)", "^{%d}"))
			}

			if qi != len(quotients)-1 {
				b.WriteString("    \\cmidrule{2-3}\n")
			}
		}

		if gi != len(groups)-1 {
			b.WriteString("    \\midrule\n")
		}
	}

	caption := strings.Replace(DescribeQuery(query), "Faithful actions of cyclic groups on", "Cyclic groups acting on", 1)

	fmt.Fprintf(&b, `    \bottomrule
  \end{tabular}
  \caption{%s.}
  \label{tab:cyclic_group_actions}
\end{table}
`, caption)

	return b.String()
}

type yamlDocument struct {
	Query      m.Query       `yaml:"query"`
	Signatures []m.Signature `yaml:"signatures"`
}

// RenderYAML renders the query and its signatures as a YAML document.
func RenderYAML(query m.Query, signatures []m.Signature) (string, error) {
	if signatures == nil {
		signatures = []m.Signature{}
	}

	out, err := yaml.Marshal(yamlDocument{Query: query, Signatures: signatures})
	if err != nil {
		return "", fmt.Errorf("failed to encode signatures: %w", err)
	}

	return string(out), nil
}

// Render dispatches to the formatter selected by f.
func Render(f Format, query m.Query, signatures []m.Signature) (string, error) {
	switch f {
	case FormatLaTeX:
		return RenderLaTeX(query, signatures), nil
	case FormatYAML:
		return RenderYAML(query, signatures)
	default:
		return RenderText(query, signatures), nil
	}
}

// joinPowers collapses repeated points into powers, e.g. (2,1)^3 (5,2).
func joinPowers(points m.Points, pointFmt, powerFmt string) string {
	if len(points) == 0 {
		return "\\emptyset"
	}

	var parts []string

	for i := 0; i < len(points); {
		j := i
		for j < len(points) && points[j] == points[i] {
			j++
		}

		part := fmt.Sprintf(pointFmt, points[i].Order, points[i].Rotation)
		if j-i > 1 {
			part += fmt.Sprintf(powerFmt, j-i)
		}

		parts = append(parts, part)
		i = j
	}

	return strings.Join(parts, " ")
}

func groupByOrder(signatures []m.Signature) [][]m.Signature {
	var groups [][]m.Signature

	for _, sig := range signatures {
		if n := len(groups); n > 0 && groups[n-1][0].Order == sig.Order {
			groups[n-1] = append(groups[n-1], sig)
			continue
		}

		groups = append(groups, []m.Signature{sig})
	}

	return groups
}

// groupByQuotientGenus splits signatures of one order by quotient genus,
// largest first, keeping the input order inside each group.
func groupByQuotientGenus(signatures []m.Signature) [][]m.Signature {
	byGenus := make(map[int][]m.Signature)
	maxGenus := -1

	for _, sig := range signatures {
		byGenus[sig.QuotientGenus] = append(byGenus[sig.QuotientGenus], sig)
		maxGenus = max(maxGenus, sig.QuotientGenus)
	}

	var groups [][]m.Signature

	for h := maxGenus; h >= 0; h-- {
		if rows, ok := byGenus[h]; ok {
			groups = append(groups, rows)
		}
	}

	return groups
}
