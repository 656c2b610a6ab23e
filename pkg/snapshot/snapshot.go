// Package snapshot reads and writes the YAML handoff artifacts exchanged
// with the stages outside the conversion core: the model snapshot produced
// by the parsing/scaffolding stage, and the model plus run report consumed
// by the reporting stage.
package snapshot

// snapshot.go — Model snapshot and run report serialization.

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"buslift/pkg/diag"
	"buslift/pkg/model"
	"buslift/pkg/pipeline"
)

// LoadModel reads an integration model snapshot.
func LoadModel(path string) (*model.IntegrationModel, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read model snapshot: %w", err)
	}
	var m model.IntegrationModel
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse model snapshot %s: %w", path, err)
	}
	return &m, nil
}

// WriteModel writes an integration model snapshot.
func WriteModel(path string, m *model.IntegrationModel) error {
	data, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("marshal model snapshot: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write model snapshot: %w", err)
	}
	return nil
}

// Report summarizes one run for the reporting stage: outcome, the ordered
// diagnostics, and per-application conversion counts.
type Report struct {
	RunID        string              `yaml:"run_id"`
	Outcome      pipeline.Outcome    `yaml:"outcome"`
	Errors       []diag.Entry        `yaml:"errors,omitempty"`
	Warnings     []diag.Entry        `yaml:"warnings,omitempty"`
	Applications []ReportApplication `yaml:"applications,omitempty"`
}

// ReportApplication counts what one target application accumulated.
type ReportApplication struct {
	Name       string `yaml:"name"`
	Messages   int    `yaml:"messages"`
	Endpoints  int    `yaml:"endpoints"`
	Transforms int    `yaml:"transforms"`
}

// BuildReport assembles a report from the post-run context and model.
// Entry and application order is preserved from execution order. A nil
// context or model contributes nothing to the report.
func BuildReport(dc *diag.Context, outcome pipeline.Outcome, m *model.IntegrationModel) Report {
	rep := Report{Outcome: outcome}
	if dc != nil {
		rep.RunID = dc.RunID
		rep.Errors, rep.Warnings = dc.Snapshot()
	}
	if m != nil && m.Target.MessageBus != nil {
		for _, a := range m.Target.MessageBus.Applications {
			rep.Applications = append(rep.Applications, ReportApplication{
				Name:       a.Name,
				Messages:   len(a.Messages),
				Endpoints:  len(a.Endpoints),
				Transforms: len(a.Transforms),
			})
		}
	}
	return rep
}

// WriteReport writes a run report.
func WriteReport(path string, rep Report) error {
	data, err := yaml.Marshal(rep)
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
