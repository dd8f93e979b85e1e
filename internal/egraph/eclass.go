package egraph

// parentEdge records one e-node that names a class as a child, plus the
// class that owns that e-node.
type parentEdge struct {
	Node  ENode
	Class Id
}

// EClass is an equivalence class of e-nodes: its canonical Id,
// its e-node set (no two canonically equal after rebuild), its parent
// list, and its analysis datum.
type EClass struct {
	ID      Id
	Nodes   []ENode
	Parents []parentEdge
	Data    Data

	// dirty marks that this class was created, merged or repaired since
	// the extractor last called ClearDirty; extraction skips its
	// relaxation pass only when no class is dirty.
	dirty bool
}

func newEClass(id Id, n ENode) *EClass {
	return &EClass{ID: id, Nodes: []ENode{n}, dirty: true}
}

// addParent records that e-node n (owned by class owner) names this
// class as a child.
func (c *EClass) addParent(n ENode, owner Id) {
	c.Parents = append(c.Parents, parentEdge{Node: n, Class: owner})
}
