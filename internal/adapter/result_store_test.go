package adapter

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
	"time"

	"gopkg.in/yaml.v3"

	m "github.com/mouse-blink/cyclact/internal/model"
)

func sampleReport(genus int, createdAt time.Time) m.Report {
	return m.Report{
		Query: m.Query{Genus: genus, Known: m.Points{{Order: 2, Rotation: 1}}, Policy: m.RelabelFree},
		Signatures: []m.Signature{
			{Order: 2, QuotientGenus: 0, Points: m.Points{{Order: 2, Rotation: 1}, {Order: 2, Rotation: 1}}},
		},
		CreatedAt: createdAt,
	}
}

func TestLocalResultStore_SaveReport_WritesHashedYAML(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	rs := NewLocalResultStore()
	report := sampleReport(0, time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC))

	path, err := rs.SaveReport(m.Path(dir), report)
	if err != nil {
		t.Fatalf("SaveReport returned error: %v", err)
	}

	expectedFile := filepath.Join(dir, rs.computeReportHash(report.Query)+".yaml")
	if string(path) != expectedFile {
		t.Fatalf("SaveReport path = %s, want %s", path, expectedFile)
	}

	matched, err := regexp.MatchString(`^[0-9a-f]{16}\.yaml$`, filepath.Base(expectedFile))
	if err != nil {
		t.Fatalf("regex error: %v", err)
	}
	if !matched {
		t.Fatalf("unexpected filename: %s", filepath.Base(expectedFile))
	}

	data, err := os.ReadFile(expectedFile)
	if err != nil {
		t.Fatalf("read report file: %v", err)
	}

	var decoded m.Report
	if err := yaml.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal YAML: %v", err)
	}

	if decoded.Query.Genus != 0 || len(decoded.Query.Known) != 1 {
		t.Fatalf("unexpected query: %+v", decoded.Query)
	}
	if len(decoded.Signatures) != 1 || decoded.Signatures[0].Order != 2 {
		t.Fatalf("unexpected signatures: %+v", decoded.Signatures)
	}
	if !decoded.CreatedAt.Equal(report.CreatedAt) {
		t.Fatalf("created_at = %v, want %v", decoded.CreatedAt, report.CreatedAt)
	}
}

func TestLocalResultStore_SaveReport_SameQueryOverwrites(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	rs := NewLocalResultStore()

	first, err := rs.SaveReport(m.Path(dir), sampleReport(1, time.Now()))
	if err != nil {
		t.Fatalf("SaveReport returned error: %v", err)
	}

	second, err := rs.SaveReport(m.Path(dir), sampleReport(1, time.Now()))
	if err != nil {
		t.Fatalf("SaveReport returned error: %v", err)
	}

	if first != second {
		t.Fatalf("same query saved to %s and %s", first, second)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir returned error: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected one report file, found %d", len(entries))
	}
}

func TestLocalResultStore_ComputeReportHash_DistinguishesQueries(t *testing.T) {
	t.Parallel()

	rs := NewLocalResultStore()
	base := m.Query{Genus: 2, Known: m.Points{{Order: 2, Rotation: 1}}}

	variants := []m.Query{
		{Genus: 3, Known: base.Known},
		{Genus: 2},
		{Genus: 2, Known: base.Known, Orders: []int{2}},
		{Genus: 2, Known: base.Known, Policy: m.RelabelFixed},
	}

	for _, v := range variants {
		if rs.computeReportHash(v) == rs.computeReportHash(base) {
			t.Fatalf("hash collision between %+v and %+v", v, base)
		}
	}

	explicitFree := base
	explicitFree.Policy = m.RelabelFree
	if rs.computeReportHash(explicitFree) != rs.computeReportHash(base) {
		t.Fatalf("empty policy should hash like free")
	}
}

func TestLocalResultStore_SaveReport_EmptyPath_ReturnsError(t *testing.T) {
	t.Parallel()

	_, err := NewLocalResultStore().SaveReport("", sampleReport(0, time.Now()))
	if err == nil {
		t.Fatalf("expected error")
	}
	if !strings.Contains(err.Error(), "reports directory path is required") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestLocalResultStore_RegenerateIndex_WritesIndexYAML(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	rs := NewLocalResultStore()

	older := sampleReport(0, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	newer := sampleReport(2, time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC))
	newer.Signatures = nil

	for _, r := range []m.Report{older, newer} {
		if _, err := rs.SaveReport(m.Path(dir), r); err != nil {
			t.Fatalf("SaveReport returned error: %v", err)
		}
	}

	indexPath := filepath.Join(dir, "_index.yaml")
	if _, err := os.Stat(indexPath); err == nil {
		t.Fatalf("expected _index.yaml to not exist until RegenerateIndex is called")
	}

	if err := rs.RegenerateIndex(m.Path(dir)); err != nil {
		t.Fatalf("RegenerateIndex returned error: %v", err)
	}

	data, err := os.ReadFile(indexPath)
	if err != nil {
		t.Fatalf("expected _index.yaml to exist: %v", err)
	}

	var idx indexYAML
	if err := yaml.Unmarshal(data, &idx); err != nil {
		t.Fatalf("unmarshal _index.yaml: %v", err)
	}

	if len(idx.Reports) != 2 {
		t.Fatalf("expected 2 index entries, got %d", len(idx.Reports))
	}

	if idx.Reports[0].Genus != 2 || idx.Reports[0].Signatures != 0 {
		t.Fatalf("expected newest report first, got %+v", idx.Reports[0])
	}
	if idx.Reports[1].Genus != 0 || idx.Reports[1].Signatures != 1 {
		t.Fatalf("unexpected older entry: %+v", idx.Reports[1])
	}
	if idx.Reports[1].Known != "[(2,1)]" || idx.Reports[1].Policy != "free" {
		t.Fatalf("unexpected older entry: %+v", idx.Reports[1])
	}
	if idx.Reports[1].File != rs.computeReportHash(older.Query)+".yaml" {
		t.Fatalf("unexpected file name %q", idx.Reports[1].File)
	}

	loaded, err := rs.LoadIndex(m.Path(dir))
	if err != nil {
		t.Fatalf("LoadIndex returned error: %v", err)
	}
	if len(loaded) != 2 || loaded[0].File != idx.Reports[0].File {
		t.Fatalf("LoadIndex = %+v, want %+v", loaded, idx.Reports)
	}
}

func TestLocalResultStore_LoadIndex_WithoutIndexSummarizesReports(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	rs := NewLocalResultStore()

	if _, err := rs.SaveReport(m.Path(dir), sampleReport(4, time.Now())); err != nil {
		t.Fatalf("SaveReport returned error: %v", err)
	}

	summaries, err := rs.LoadIndex(m.Path(dir))
	if err != nil {
		t.Fatalf("LoadIndex returned error: %v", err)
	}
	if len(summaries) != 1 || summaries[0].Genus != 4 {
		t.Fatalf("unexpected summaries: %+v", summaries)
	}
}

func TestLocalResultStore_LoadReports_NoReportsDir_ReturnsNothing(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "does-not-exist")

	reports, err := NewLocalResultStore().LoadReports(m.Path(dir))
	if err != nil {
		t.Fatalf("LoadReports returned error: %v", err)
	}
	if len(reports) != 0 {
		t.Fatalf("expected no reports, got %d", len(reports))
	}
}

func TestLocalResultStore_LoadReports_PathIsFile_ReturnsError(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	filePath := filepath.Join(dir, "not-a-dir")
	if err := os.WriteFile(filePath, []byte("x"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	_, err := NewLocalResultStore().LoadReports(m.Path(filePath))
	if err == nil {
		t.Fatalf("expected error")
	}
	if !strings.Contains(err.Error(), "path is not a directory") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestLocalResultStore_LoadReports_SkipsIndexAndForeignFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	rs := NewLocalResultStore()

	if _, err := rs.SaveReport(m.Path(dir), sampleReport(3, time.Now())); err != nil {
		t.Fatalf("SaveReport returned error: %v", err)
	}
	if err := rs.RegenerateIndex(m.Path(dir)); err != nil {
		t.Fatalf("RegenerateIndex returned error: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("hi"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	reports, err := rs.LoadReports(m.Path(dir))
	if err != nil {
		t.Fatalf("LoadReports returned error: %v", err)
	}
	if len(reports) != 1 || reports[0].Query.Genus != 3 {
		t.Fatalf("unexpected reports: %+v", reports)
	}
}

func TestLocalResultStore_LoadReports_CorruptFile_ReturnsError(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "0123456789abcdef.yaml"), []byte("query: [\n"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	_, err := NewLocalResultStore().LoadReports(m.Path(dir))
	if err == nil || !strings.Contains(err.Error(), "parse report") {
		t.Fatalf("expected parse error, got %v", err)
	}
}
