package match

import (
	"sort"
	"strconv"
	"strings"

	"github.com/herbie-fp/eggcore/internal/egraph"
)

// Substitution binds each pattern hole to an e-class Id.
type Substitution map[string]egraph.Id

// clone returns a shallow copy, used so each branch of a search can
// extend a shared prefix without aliasing its sibling branches.
func (s Substitution) clone() Substitution {
	out := make(Substitution, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// merge binds hole to id, succeeding only if any existing binding for
// hole already names the same class.
func (s Substitution) merge(hole string, id egraph.Id) (Substitution, bool) {
	if bound, ok := s[hole]; ok {
		return s, bound == id
	}
	out := s.clone()
	out[hole] = id
	return out, true
}

// key returns a canonical string encoding of s, used to deduplicate
// substitutions discovered for the same root class.
func (s Substitution) key() string {
	holes := make([]string, 0, len(s))
	for h := range s {
		holes = append(holes, h)
	}
	sort.Strings(holes)

	var b strings.Builder
	for _, h := range holes {
		b.WriteString(h)
		b.WriteByte('=')
		b.WriteString(strconv.Itoa(int(s[h])))
		b.WriteByte(';')
	}
	return b.String()
}
