// Package egraph implements a hash-consed, union-find-backed e-graph:
// dense integer Ids naming e-classes, canonical e-nodes, the
// congruence-closure rebuild algorithm, and a pluggable analysis
// framework.
package egraph

// Id names an e-class. Ids are never reused after a class is merged
// away; Find resolves any Id to its current canonical Id.
type Id int

// UnionFind is a Hopcroft-style union-find over dense Ids with path
// compression and union-by-size.
type UnionFind struct {
	parent []Id
	size   []int
}

// Make allocates a fresh singleton set and returns its Id.
func (u *UnionFind) Make() Id {
	id := Id(len(u.parent))
	u.parent = append(u.parent, id)
	u.size = append(u.size, 1)
	return id
}

// Find returns the canonical Id for id, compressing the path as it goes.
// No component other than UnionFind may interpret a non-canonical Id for
// anything but calling Find on it.
func (u *UnionFind) Find(id Id) Id {
	root := id
	for u.parent[root] != root {
		root = u.parent[root]
	}
	for u.parent[id] != root {
		next := u.parent[id]
		u.parent[id] = root
		id = next
	}
	return root
}

// Union merges the sets containing a and b, returning the surviving root
// and whether a merge actually occurred (false if a and b were already
// joined). The larger set's root survives, bounding parent-list growth
// when internal/egraph.EGraph.union appends the loser's data to it.
func (u *UnionFind) Union(a, b Id) (root Id, changed bool) {
	ra, rb := u.Find(a), u.Find(b)
	if ra == rb {
		return ra, false
	}
	if u.size[ra] < u.size[rb] {
		ra, rb = rb, ra
	}
	u.parent[rb] = ra
	u.size[ra] += u.size[rb]
	return ra, true
}
