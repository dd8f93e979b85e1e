// Package cffi is a handle-table backed cgo export boundary: a C ABI
// implementing create/destroy/add_expr/add_rules/run_iteration/best/size
// over internal/engine.Engine.
//
// Handles are opaque ksuid-keyed tokens rather than passed-through Go
// pointers, so a stale or forged handle from the C side fails a map
// lookup instead of dereferencing freed/foreign memory.
package cffi

/*
#include <stdlib.h>
*/
import "C"

import (
	"strconv"
	"sync"
	"unsafe"

	"github.com/segmentio/ksuid"
	"github.com/tliron/commonlog"

	"github.com/herbie-fp/eggcore/internal/egraph"
	"github.com/herbie-fp/eggcore/internal/engine"
)

var (
	registryMu sync.Mutex
	registry   = make(map[string]*engine.Engine)
)

func init() {
	commonlog.Configure(1, nil)
}

// eggcore_create allocates a fresh, independent engine and returns its
// opaque handle as a C string (host ABI "create").
//
//export eggcore_create
func eggcore_create(foldConstants, leafPrune C.int, nodeLimit, iterLimit C.int) *C.char {
	config := engine.Config{
		FoldConstants: foldConstants != 0,
		LeafPrune:     leafPrune != 0,
		NodeLimit:     int(nodeLimit),
		IterLimit:     int(iterLimit),
	}
	handle := ksuid.New().String()

	registryMu.Lock()
	registry[handle] = engine.New(config)
	registryMu.Unlock()

	return C.CString(handle)
}

// eggcore_destroy releases the engine named by handle. A stale or
// unknown handle is a silent no-op (the C side cannot corrupt state it
// no longer has a valid handle to).
//
//export eggcore_destroy
func eggcore_destroy(handle *C.char) {
	key := C.GoString(handle)
	registryMu.Lock()
	delete(registry, key)
	registryMu.Unlock()
}

// eggcore_add_expr parses source as one term and inserts it, returning
// its class Id as a decimal string, or an empty string on error (host
// ABI "add_expr"). Callers distinguish failure by checking for "".
//
//export eggcore_add_expr
func eggcore_add_expr(handle, source *C.char) *C.char {
	e, ok := lookup(handle)
	if !ok {
		return C.CString("")
	}
	id, err := e.AddExpr(C.GoString(source))
	if err != nil {
		return C.CString("")
	}
	return C.CString(strconv.Itoa(int(id)))
}

// eggcore_add_rules parses source as a rule file and registers every
// rule in it, returning the count added or -1 on error (host ABI
// "add_rules").
//
//export eggcore_add_rules
func eggcore_add_rules(handle, source *C.char) C.int {
	e, ok := lookup(handle)
	if !ok {
		return -1
	}
	n, err := e.AddRules(C.GoString(source))
	if err != nil {
		return -1
	}
	return C.int(n)
}

// eggcore_run_iteration runs the rewrite driver to saturation, the node
// limit, or the iteration limit (host ABI "run_iteration"). Returns the
// stop reason as a C string.
//
//export eggcore_run_iteration
func eggcore_run_iteration(handle *C.char) *C.char {
	e, ok := lookup(handle)
	if !ok {
		return C.CString("")
	}
	result := e.RunIteration()
	return C.CString(string(result.Stop))
}

// eggcore_best extracts the cheapest known term for the class named by
// id, rendered as surface S-expression text (host ABI "best").
//
//export eggcore_best
func eggcore_best(handle *C.char, id C.int) *C.char {
	e, ok := lookup(handle)
	if !ok {
		return C.CString("")
	}
	best, err := e.Best(egraph.Id(id))
	if err != nil {
		return C.CString("")
	}
	return C.CString(best)
}

// eggcore_size returns the e-graph's current total e-node count (host
// ABI "size").
//
//export eggcore_size
func eggcore_size(handle *C.char) C.int {
	e, ok := lookup(handle)
	if !ok {
		return -1
	}
	return C.int(e.Size())
}

// eggcore_free_string releases a string previously returned across this
// boundary, as required by cgo's ownership rules for C.CString.
//
//export eggcore_free_string
func eggcore_free_string(s *C.char) {
	C.free(unsafe.Pointer(s))
}

func lookup(handle *C.char) (*engine.Engine, bool) {
	key := C.GoString(handle)
	registryMu.Lock()
	defer registryMu.Unlock()
	e, ok := registry[key]
	return e, ok
}
