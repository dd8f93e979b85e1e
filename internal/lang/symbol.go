package lang

import "sync"

// Symbol is an interned variable/identifier name; equality is
// pointer-equal after interning.
type Symbol struct {
	name *string
}

var (
	internMu    sync.Mutex
	internTable = map[string]*string{}
)

// Intern returns the unique Symbol for name, interning it on first use.
func Intern(name string) Symbol {
	internMu.Lock()
	defer internMu.Unlock()
	if p, ok := internTable[name]; ok {
		return Symbol{name: p}
	}
	p := new(string)
	*p = name
	internTable[name] = p
	return Symbol{name: p}
}

func (s Symbol) String() string {
	if s.name == nil {
		return ""
	}
	return *s.name
}

// Equal compares two symbols by pointer identity.
func (s Symbol) Equal(o Symbol) bool { return s.name == o.name }

// Key returns the canonical hash-cons key for this symbol, used by
// internal/egraph to build e-node memo keys.
func (s Symbol) Key() string { return "$" + s.String() }
