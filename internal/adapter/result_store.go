package adapter

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	m "github.com/mouse-blink/cyclact/internal/model"
)

const indexFileName = "_index.yaml"

// ResultStore persists and retrieves the reports of past runs.
type ResultStore interface {
	SaveReport(dir m.Path, report m.Report) (m.Path, error)
	LoadReports(dir m.Path) ([]m.Report, error)
	LoadIndex(dir m.Path) ([]m.ReportSummary, error)
	RegenerateIndex(dir m.Path) error
}

// LocalResultStore keeps one YAML file per query in a reports directory, named
// after a hash of the query, plus an _index.yaml summary of all of them.
type LocalResultStore struct{}

// NewLocalResultStore constructs a LocalResultStore.
func NewLocalResultStore() *LocalResultStore {
	return &LocalResultStore{}
}

type indexYAML struct {
	Reports []m.ReportSummary `yaml:"reports"`
}

// SaveReport writes report to dir, replacing an earlier run of the same query.
func (rs *LocalResultStore) SaveReport(dir m.Path, report m.Report) (m.Path, error) {
	if dir == "" {
		return "", errors.New("reports directory path is required")
	}

	if err := os.MkdirAll(string(dir), 0o755); err != nil {
		return "", fmt.Errorf("create reports directory: %w", err)
	}

	if report.Signatures == nil {
		report.Signatures = []m.Signature{}
	}

	data, err := yaml.Marshal(report)
	if err != nil {
		return "", fmt.Errorf("encode report: %w", err)
	}

	path := filepath.Join(string(dir), rs.computeReportHash(report.Query)+".yaml")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return "", fmt.Errorf("write report %s: %w", path, err)
	}

	return m.Path(path), nil
}

// LoadReports returns every saved report in dir, newest first. A missing
// directory holds no reports.
func (rs *LocalResultStore) LoadReports(dir m.Path) ([]m.Report, error) {
	files, err := rs.reportFiles(dir)
	if err != nil {
		return nil, err
	}

	reports := make([]m.Report, 0, len(files))

	for _, file := range files {
		report, err := readReport(filepath.Join(string(dir), file))
		if err != nil {
			return nil, err
		}

		reports = append(reports, report)
	}

	sort.SliceStable(reports, func(i, j int) bool {
		return reports[i].CreatedAt.After(reports[j].CreatedAt)
	})

	return reports, nil
}

// LoadIndex returns the summaries stored in _index.yaml, or builds them from
// the report files when no index has been written yet.
func (rs *LocalResultStore) LoadIndex(dir m.Path) ([]m.ReportSummary, error) {
	if dir == "" {
		return nil, errors.New("reports directory path is required")
	}

	data, err := os.ReadFile(filepath.Join(string(dir), indexFileName))
	if errors.Is(err, os.ErrNotExist) {
		return rs.summarize(dir)
	}

	if err != nil {
		return nil, fmt.Errorf("read index: %w", err)
	}

	var idx indexYAML
	if err := yaml.Unmarshal(data, &idx); err != nil {
		return nil, fmt.Errorf("parse index: %w", err)
	}

	return idx.Reports, nil
}

// RegenerateIndex rewrites _index.yaml from the report files in dir.
func (rs *LocalResultStore) RegenerateIndex(dir m.Path) error {
	summaries, err := rs.summarize(dir)
	if err != nil {
		return err
	}

	if summaries == nil {
		summaries = []m.ReportSummary{}
	}

	data, err := yaml.Marshal(indexYAML{Reports: summaries})
	if err != nil {
		return fmt.Errorf("encode index: %w", err)
	}

	if err := os.MkdirAll(string(dir), 0o755); err != nil {
		return fmt.Errorf("create reports directory: %w", err)
	}

	if err := os.WriteFile(filepath.Join(string(dir), indexFileName), data, 0o600); err != nil {
		return fmt.Errorf("write index: %w", err)
	}

	return nil
}

func (rs *LocalResultStore) summarize(dir m.Path) ([]m.ReportSummary, error) {
	files, err := rs.reportFiles(dir)
	if err != nil {
		return nil, err
	}

	var summaries []m.ReportSummary

	for _, file := range files {
		report, err := readReport(filepath.Join(string(dir), file))
		if err != nil {
			return nil, err
		}

		policy := report.Query.Policy
		if policy == "" {
			policy = m.RelabelFree
		}

		summaries = append(summaries, m.ReportSummary{
			File:       file,
			Genus:      report.Query.Genus,
			Known:      report.Query.Known.String(),
			Policy:     string(policy),
			Signatures: len(report.Signatures),
			CreatedAt:  report.CreatedAt,
		})
	}

	sort.SliceStable(summaries, func(i, j int) bool {
		return summaries[i].CreatedAt.After(summaries[j].CreatedAt)
	})

	return summaries, nil
}

// reportFiles lists the report file names in dir, sorted.
func (rs *LocalResultStore) reportFiles(dir m.Path) ([]string, error) {
	if dir == "" {
		return nil, errors.New("reports directory path is required")
	}

	info, err := os.Stat(string(dir))
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}

	if err != nil {
		return nil, fmt.Errorf("stat reports directory: %w", err)
	}

	if !info.IsDir() {
		return nil, fmt.Errorf("path is not a directory: %s", dir)
	}

	entries, err := os.ReadDir(string(dir))
	if err != nil {
		return nil, fmt.Errorf("read reports directory: %w", err)
	}

	var files []string

	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || name == indexFileName || !strings.HasSuffix(name, ".yaml") {
			continue
		}

		files = append(files, name)
	}

	sort.Strings(files)

	return files, nil
}

func readReport(path string) (m.Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return m.Report{}, fmt.Errorf("read report %s: %w", path, err)
	}

	var report m.Report
	if err := yaml.Unmarshal(data, &report); err != nil {
		return m.Report{}, fmt.Errorf("parse report %s: %w", path, err)
	}

	return report, nil
}

// computeReportHash fingerprints the query so that rerunning it overwrites the
// earlier report.
func (rs *LocalResultStore) computeReportHash(query m.Query) string {
	policy := query.Policy
	if policy == "" {
		policy = m.RelabelFree
	}

	h := sha256.New()
	fmt.Fprintf(h, "genus=%d\n", query.Genus)

	for _, p := range query.Known.Sorted() {
		fmt.Fprintf(h, "known=%d/%d\n", p.Order, p.Rotation)
	}

	for _, n := range query.Orders {
		fmt.Fprintf(h, "order=%d\n", n)
	}

	fmt.Fprintf(h, "policy=%s\n", policy)

	return fmt.Sprintf("%x", h.Sum(nil))[:16]
}
