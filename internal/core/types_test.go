package core

import "testing"

func TestRegisterRejectsInvalidEntries(t *testing.T) {
	factory := func(cfg map[string]string) (Automaton, error) { return nil, nil }

	before := len(Automata())
	Register("", factory)
	Register("ghost", nil)
	if len(Automata()) != before {
		t.Fatalf("invalid registrations changed the registry")
	}

	Register("types-test-automaton", factory)
	defer delete(Automata(), "types-test-automaton")
	if _, ok := Automata()["types-test-automaton"]; !ok {
		t.Fatalf("valid registration missing from registry")
	}
}
