// Package profile loads the per-identity settings file that tunes how
// the diagnostic tool is located and invoked.
package profile

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// Profile captures the optional per-identity settings. All fields are
// hints; the zero profile is a fully working configuration.
type Profile struct {
	// ADRCI is an explicit path to the query tool binary.
	ADRCI string `yaml:"adrci"`
	// Base overrides the fallback repository base used when the tool
	// cannot report one.
	Base string `yaml:"base"`
	// Env holds extra variables exported to every tool invocation,
	// e.g. ORACLE_HOME, ORACLE_SID, LD_LIBRARY_PATH.
	Env map[string]string `yaml:"env"`
}

// Load reads the profile at path. A missing file is not an error: it
// returns the zero profile with found=false so the caller can warn that
// tool-location hints may be lost. Unreadable or unparseable files
// return the error alongside the zero profile; callers degrade rather
// than abort.
func Load(path string) (Profile, bool, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Profile{}, false, nil
		}
		return Profile{}, false, fmt.Errorf("read profile: %w", err)
	}

	var p Profile
	if err := yaml.Unmarshal(contents, &p); err != nil {
		return Profile{}, true, fmt.Errorf("parse profile: %w", err)
	}
	return p, true, nil
}

// Environ renders the env map as KEY=VALUE pairs in sorted key order,
// ready to append to a tool invocation's environment.
func (p Profile) Environ() []string {
	if len(p.Env) == 0 {
		return nil
	}
	keys := make([]string, 0, len(p.Env))
	for k := range p.Env {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, k+"="+p.Env[k])
	}
	return pairs
}

// OracleHome returns the ORACLE_HOME hint when the profile carries one.
func (p Profile) OracleHome() string {
	return p.Env["ORACLE_HOME"]
}
