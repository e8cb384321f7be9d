package model

import "time"

// Report is the persisted outcome of a run.
type Report struct {
	Query      Query       `yaml:"query"`
	Signatures []Signature `yaml:"signatures"`
	CreatedAt  time.Time   `yaml:"created_at"`
}

// ReportSummary is a saved report as listed by the result store index.
type ReportSummary struct {
	File       string    `yaml:"file"`
	Genus      int       `yaml:"genus"`
	Known      string    `yaml:"known"`
	Policy     string    `yaml:"policy"`
	Signatures int       `yaml:"signatures"`
	CreatedAt  time.Time `yaml:"created_at"`
}

// Path represents a file system path.
type Path string
