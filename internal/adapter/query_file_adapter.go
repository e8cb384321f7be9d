// Package adapter contains the file system adapters of the cyclact CLI.
package adapter

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	m "github.com/mouse-blink/cyclact/internal/model"
)

// ErrEmptyQueryFile is returned for a query file without any YAML content.
var ErrEmptyQueryFile = errors.New("query file is empty")

// QueryFileAdapter reads a query from a structured file.
type QueryFileAdapter interface {
	Load(path m.Path) (m.Query, error)
}

// LocalQueryFileAdapter reads YAML query files from the local file system:
//
//	genus: 3
//	known:
//	  - 4/1
//	  - {order: 4, rotation: 3}
//	orders: [4, 8]
//	fixed_generator: false
type LocalQueryFileAdapter struct{}

// NewLocalQueryFileAdapter constructs a LocalQueryFileAdapter.
func NewLocalQueryFileAdapter() *LocalQueryFileAdapter {
	return &LocalQueryFileAdapter{}
}

type queryFile struct {
	Genus          *int        `yaml:"genus"`
	Known          []filePoint `yaml:"known"`
	Orders         []int       `yaml:"orders"`
	FixedGenerator bool        `yaml:"fixed_generator"`
}

// filePoint accepts either the "d/r" shorthand or an {order, rotation} mapping.
type filePoint m.Point

func (p *filePoint) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		point, err := m.ParsePoint(node.Value)
		if err != nil {
			return fmt.Errorf("line %d: %w", node.Line, err)
		}

		*p = filePoint(point)

		return nil
	}

	var point m.Point
	if err := node.Decode(&point); err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}

	*p = filePoint(point)

	return nil
}

// Load parses the query file at path. Values are not validated beyond their
// syntax; range checks belong to the domain.
func (a *LocalQueryFileAdapter) Load(path m.Path) (m.Query, error) {
	data, err := os.ReadFile(string(path))
	if err != nil {
		return m.Query{}, fmt.Errorf("read query file %s: %w", path, err)
	}

	return parseQuery(data, path)
}

func parseQuery(data []byte, path m.Path) (m.Query, error) {
	var doc queryFile

	if err := yaml.Unmarshal(data, &doc); err != nil {
		return m.Query{}, fmt.Errorf("parse query file %s: %w", path, err)
	}

	if doc.Genus == nil {
		if len(doc.Known) == 0 && len(doc.Orders) == 0 {
			return m.Query{}, fmt.Errorf("%s: %w", path, ErrEmptyQueryFile)
		}

		return m.Query{}, fmt.Errorf("query file %s: genus is required", path)
	}

	query := m.Query{
		Genus:  *doc.Genus,
		Orders: doc.Orders,
		Policy: m.RelabelFree,
	}

	if doc.FixedGenerator {
		query.Policy = m.RelabelFixed
	}

	for _, p := range doc.Known {
		query.Known = append(query.Known, m.Point(p))
	}

	return query, nil
}
