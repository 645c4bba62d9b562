package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Automaton defines the minimal contract a cellular automaton must implement.
type Automaton interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Toggle(x, y int)
	Randomize()
	Advance()
	Population() int
	Snapshot(dst []bool) []bool
}

// Factory constructs an Automaton from an optional configuration map.
type Factory func(cfg map[string]string) (Automaton, error)

var automata = map[string]Factory{}

// Register adds an automaton factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	automata[name] = f
}

// Automata exposes the registry of available automaton factories.
func Automata() map[string]Factory {
	return automata
}
