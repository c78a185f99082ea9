package adr

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
)

// Querier is the slice of the diagnostic query tool this package needs.
// internal/adrci provides the real implementation; tests provide fakes.
type Querier interface {
	// ShowBase reports the repository base directory configured for the
	// tool (the parent of the "diag" tree).
	ShowBase(ctx context.Context) (string, error)
	// ShowHomes reports the registered home paths, relative to the base,
	// in the tool's own order. Implementations return whatever lines were
	// parsed even when the invocation itself failed.
	ShowHomes(ctx context.Context) ([]string, error)
}

// Capabilities records which component kinds the probed host actually
// runs. Derived once per run; read-only afterwards.
type Capabilities struct {
	Database bool
	ASM      bool
	CRS      bool
	Listener bool
}

// Has reports whether the concrete kind is present.
func (c Capabilities) Has(k Kind) bool {
	switch k {
	case Database:
		return c.Database
	case ASM:
		return c.ASM
	case CRS:
		return c.CRS
	case Listener:
		return c.Listener
	}
	return false
}

// List returns the present kinds in menu order.
func (c Capabilities) List() []Kind {
	var kinds []Kind
	for _, k := range ConcreteKinds() {
		if c.Has(k) {
			kinds = append(kinds, k)
		}
	}
	return kinds
}

// Any reports whether at least one kind is present.
func (c Capabilities) Any() bool { return len(c.List()) > 0 }

// Environment is the probed state of the host's diagnostic repository.
// BaseDir is the directory under which <family>/<instance>/<id> homes
// live. Immutable for the process lifetime once returned by Probe.
type Environment struct {
	Identity string
	BaseDir  string
	Caps     Capabilities
}

// DefaultBase returns the conventional repository base for an identity
// when the query tool cannot report one and no profile overrides it.
func DefaultBase(identity string) string {
	return filepath.Join("/u01/app", identity)
}

// Probe derives the Environment for one run. Query failures degrade
// rather than abort: the base directory falls back to baseOverride (or
// the identity default) and capability flags are computed from whatever
// home listing was obtained, all-false on total failure. Each
// degradation is reported as a warning string for the caller to emit.
func Probe(ctx context.Context, identity, baseOverride string, q Querier) (Environment, []string) {
	var warnings []string

	base, err := q.ShowBase(ctx)
	if err != nil || strings.TrimSpace(base) == "" {
		if baseOverride != "" {
			base = baseOverride
		} else {
			base = DefaultBase(identity)
		}
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("diagnostic base query failed (%v); assuming %s", err, base))
		}
	}

	homes, err := q.ShowHomes(ctx)
	if err != nil {
		warnings = append(warnings, fmt.Sprintf("diagnostic home listing failed (%v); capabilities may be incomplete", err))
	}

	env := Environment{
		Identity: identity,
		BaseDir:  filepath.Join(base, "diag"),
		Caps:     capabilitiesFromListing(homes),
	}
	return env, warnings
}

// capabilitiesFromListing flags every kind whose family marker occurs
// anywhere in the raw home listing. This is deliberately a substring
// test, not a structural parse: a malformed home line still advertises
// its family, and the catalog stage decides later what is usable.
func capabilitiesFromListing(lines []string) Capabilities {
	joined := strings.Join(lines, "\n")
	has := func(k Kind) bool {
		return strings.Contains(joined, "diag/"+k.Family()+"/")
	}
	return Capabilities{
		Database: has(Database),
		ASM:      has(ASM),
		CRS:      has(CRS),
		Listener: has(Listener),
	}
}
