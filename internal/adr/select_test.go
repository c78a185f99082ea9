package adr

import (
	"errors"
	"strings"
	"testing"
)

func TestResolveConcreteKind(t *testing.T) {
	env := Environment{Caps: Capabilities{Database: true, Listener: true}}

	kinds, err := Resolve(env, Listener)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if len(kinds) != 1 || kinds[0] != Listener {
		t.Fatalf("kinds = %v", kinds)
	}
}

func TestResolveAbsentKind(t *testing.T) {
	env := Environment{Caps: Capabilities{Database: true}}

	_, err := Resolve(env, ASM)
	var capErr *CapabilityError
	if !errors.As(err, &capErr) {
		t.Fatalf("expected CapabilityError, got %v", err)
	}
	if capErr.Kind != ASM {
		t.Fatalf("error kind = %s", capErr.Kind)
	}
	if !strings.Contains(capErr.Error(), "Grid Infrastructure") {
		t.Fatalf("message should name the missing role: %q", capErr.Error())
	}
}

func TestResolveAllExpandsToPresentKinds(t *testing.T) {
	env := Environment{Caps: Capabilities{Database: true, CRS: true}}

	kinds, err := Resolve(env, All)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	want := []Kind{Database, CRS}
	if len(kinds) != len(want) {
		t.Fatalf("kinds = %v, want %v", kinds, want)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Fatalf("kinds = %v, want %v", kinds, want)
		}
	}
}

func TestResolveAllOnEmptyEnvironment(t *testing.T) {
	_, err := Resolve(Environment{}, All)
	if !errors.Is(err, ErrNoComponents) {
		t.Fatalf("expected ErrNoComponents, got %v", err)
	}
}

func TestCapabilityErrorArticles(t *testing.T) {
	cases := []struct {
		kind Kind
		want string
	}{
		{Database, "an Oracle Database environment"},
		{ASM, "a Grid Infrastructure environment"},
		{Listener, "a Net Listener environment"},
	}
	for _, tc := range cases {
		msg := (&CapabilityError{Kind: tc.kind}).Error()
		if !strings.Contains(msg, tc.want) {
			t.Errorf("%s message = %q, want substring %q", tc.kind, msg, tc.want)
		}
	}
}

func TestAvailable(t *testing.T) {
	env := Environment{Caps: Capabilities{ASM: true, CRS: true}}
	got := Available(env)
	want := []Kind{ASM, CRS, All}
	if len(got) != len(want) {
		t.Fatalf("Available() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Available() = %v, want %v", got, want)
		}
	}

	if got := Available(Environment{}); got != nil {
		t.Fatalf("empty environment should offer nothing, got %v", got)
	}
}
