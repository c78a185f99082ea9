package adr

import (
	"fmt"
	"strings"
)

// Kind identifies one of the diagnostic component families a host can
// run, plus the pseudo-kind All meaning "every kind the environment has".
type Kind string

const (
	Database Kind = "database"
	ASM      Kind = "asm"
	CRS      Kind = "crs"
	Listener Kind = "listener"
	All      Kind = "all"
)

// ConcreteKinds lists the real component kinds in menu/reporting order.
// All is deliberately excluded; it is sugar resolved by Resolve.
func ConcreteKinds() []Kind {
	return []Kind{Database, ASM, CRS, Listener}
}

// ParseKind validates a component token from the command line. Matching
// is case-insensitive; anything outside the known set is a usage error.
func ParseKind(token string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(token)) {
	case "database":
		return Database, nil
	case "asm":
		return ASM, nil
	case "crs":
		return CRS, nil
	case "listener":
		return Listener, nil
	case "all":
		return All, nil
	}
	return "", fmt.Errorf("unknown component %q", token)
}

// Family returns the directory name that the diagnostic repository uses
// for this kind, i.e. the first segment of a home's relative path.
func (k Kind) Family() string {
	switch k {
	case Database:
		return "rdbms"
	case ASM:
		return "asm"
	case CRS:
		return "crs"
	case Listener:
		return "tnslsnr"
	}
	return ""
}

// Role names the host environment a kind belongs to, for
// capability-mismatch messages.
func (k Kind) Role() string {
	switch k {
	case Database:
		return "Oracle Database"
	case ASM, CRS:
		return "Grid Infrastructure"
	case Listener:
		return "Net Listener"
	}
	return ""
}

// Label is the one-line description shown in the interactive menu.
func (k Kind) Label() string {
	switch k {
	case Database:
		return "database instance logs"
	case ASM:
		return "ASM instance logs"
	case CRS:
		return "Clusterware (CRS) logs"
	case Listener:
		return "net listener logs"
	case All:
		return "everything available on this host"
	}
	return string(k)
}

func (k Kind) String() string { return string(k) }

// kindForFamily maps a home path's leading family segment back to its
// kind. Unknown families classify as "", which callers drop.
func kindForFamily(family string) Kind {
	switch family {
	case "rdbms":
		return Database
	case "asm":
		return ASM
	case "crs":
		return CRS
	case "tnslsnr":
		return Listener
	}
	return ""
}
