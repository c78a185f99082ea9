package adr

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
)

// Home is one registered diagnostic storage location: a component kind
// plus the absolute path <BaseDir>/<family>/<instance>/<instanceID>.
type Home struct {
	Kind Kind
	Path string
}

// classified is the result of matching one reported relative path
// against the four fixed home shapes. Zero value means "no match".
type classified struct {
	Kind     Kind
	Family   string
	Instance string
	ID       string
}

// classifyHome matches a relative home path against the fixed
// family/instance/id shape. A leading "diag" segment, as the query tool
// reports it, is tolerated. Paths matching no shape return the zero
// value and are dropped by callers.
func classifyHome(rel string) classified {
	rel = strings.TrimSpace(rel)
	rel = strings.Trim(rel, "/")
	parts := strings.Split(rel, "/")
	if len(parts) > 0 && parts[0] == "diag" {
		parts = parts[1:]
	}
	if len(parts) != 3 {
		return classified{}
	}
	kind := kindForFamily(parts[0])
	if kind == "" || parts[1] == "" || parts[2] == "" {
		return classified{}
	}
	return classified{Kind: kind, Family: parts[0], Instance: parts[1], ID: parts[2]}
}

// Catalog lists the diagnostic homes for one kind (or every kind, for
// All). It re-invokes the tool's home listing rather than reusing the
// probe's copy, preserves the tool's reporting order, and does not
// de-duplicate repeated paths. Unclassifiable lines are dropped
// silently.
func Catalog(ctx context.Context, env Environment, kind Kind, q Querier) ([]Home, error) {
	lines, err := q.ShowHomes(ctx)
	if err != nil {
		return nil, fmt.Errorf("list diagnostic homes: %w", err)
	}

	var homes []Home
	for _, line := range lines {
		c := classifyHome(line)
		if c.Kind == "" {
			continue
		}
		if kind != All && c.Kind != kind {
			continue
		}
		homes = append(homes, Home{
			Kind: c.Kind,
			Path: filepath.Join(env.BaseDir, c.Family, c.Instance, c.ID),
		})
	}
	return homes, nil
}
