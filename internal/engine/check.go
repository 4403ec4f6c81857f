package engine

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/danieljhkim/dupekeys/internal/analyzer"
	"github.com/danieljhkim/dupekeys/internal/profiles"
)

// Check acquires the installed profiles, finds keys defined by several
// profiles and classifies them.
func (e *Engine) Check(ctx context.Context, req *CheckRequest) (*CheckResult, error) {
	if e.source.RequiresPrivilege() {
		if err := e.privilege.Check(); err != nil {
			return nil, err
		}
	}

	slog.Debug("acquiring profiles", "source", e.source.Describe())
	data, err := e.source.Fetch(ctx)
	if err != nil {
		return nil, err
	}

	profs, err := profiles.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", e.source.Describe(), err)
	}
	slog.Debug("decoded profiles", "count", len(profs))

	entries := analyzer.Flatten(profs)
	groups := analyzer.Aggregate(entries)
	analysis := analyzer.Analyze(groups)

	width := e.settings.Width
	if req != nil && req.Width > 0 {
		width = req.Width
	}

	result := &CheckResult{
		GeneratedAt:  e.clock.Now(),
		Source:       e.source.Describe(),
		Width:        width,
		Profiles:     len(profs),
		Entries:      len(entries),
		Keys:         len(groups),
		Unique:       analysis.Unique,
		ConflictFree: analysis.Count(analyzer.ConflictFree),
		Conflicting:  analysis.Count(analyzer.Conflicting),
		Suppressed:   analysis.Suppressed,
		Findings:     make([]Finding, 0, len(analysis.Findings)),
	}
	if result.Suppressed == nil {
		result.Suppressed = []string{}
	}

	for _, p := range profs {
		result.PayloadItems += len(p.Items)
		for _, item := range p.Items {
			if !item.Valid {
				result.SkippedItems++
			}
		}
	}

	for _, f := range analysis.Findings {
		result.Findings = append(result.Findings, e.buildFinding(f, width))
	}

	slog.Debug("check complete",
		"keys", result.Keys,
		"conflict_free", result.ConflictFree,
		"conflicting", result.Conflicting,
		"suppressed", len(result.Suppressed))

	return result, nil
}

func (e *Engine) buildFinding(f analyzer.Finding, width int) Finding {
	out := Finding{
		Key:            f.Key,
		Classification: f.Classification,
		Sources:        make([]FindingSource, 0, len(f.Sources)),
	}
	for _, s := range f.Sources {
		out.Sources = append(out.Sources, FindingSource{
			Profile: s.Profile,
			Value:   s.Value,
			Display: analyzer.DisplayValue(s.Value, width),
			Digest:  e.hasher.HashValue(s.Value),
		})
	}
	return out
}
