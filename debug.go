package graft

import (
	"fmt"
	"os"
)

// SetDebugMode enables or disables debug mode. When enabled, per-pass timing
// and mutation stats are logged to stderr and the tree is validated after
// every pass: broken alternate pairing, a dangling child back-reference, or a
// cyclic parent chain panics; non-contiguous element indices print a warning.
func (h *Host) SetDebugMode(enabled bool) {
	h.debug = enabled
}

// debugLog prints pass stats to stderr.
func (h *Host) debugLog(stats passStats) {
	_, _ = fmt.Fprintf(os.Stderr,
		"[graft] pass %d: %v | visited: %d | insert: %d | update: %d | remove: %d | replace: %d\n",
		h.generation, stats.duration, stats.visited,
		stats.inserts, stats.updates, stats.removes, stats.replaces)
}

// debugMaxTreeDepth bounds parent-chain walks during validation; exceeding it
// almost certainly means a cycle crept into the non-owning links.
const debugMaxTreeDepth = 512

// debugValidateTree checks structural invariants over the whole tree after a
// pass: mutual alternate pairing, parent back-references, acyclic parent
// chains, and contiguous 0-based element indices under every element parent.
func debugValidateTree(root *Fiber) {
	counts := make(map[*Fiber]int)
	debugValidateFiber(root, counts)
}

func debugValidateFiber(f *Fiber, counts map[*Fiber]int) {
	if f.alternate != nil && f.alternate.alternate != f {
		panic(fmt.Sprintf("graft debug: alternate pairing not mutual on %q fiber", f.desc.Type))
	}

	depth := 0
	for p := f; p != nil; p = p.parent {
		depth++
		if depth > debugMaxTreeDepth {
			panic(fmt.Sprintf("graft debug: parent chain deeper than %d (cycle?)", debugMaxTreeDepth))
		}
	}

	if f.elem != nil && f.elemParent != nil {
		want := counts[f.elemParent]
		if f.elemIndex != want {
			_, _ = fmt.Fprintf(os.Stderr,
				"[graft] warning: element index %d under %q, want %d (gap or duplicate)\n",
				f.elemIndex, f.elemParent.desc.Type, want)
		}
		counts[f.elemParent]++
	}

	for c := f.child; c != nil; c = c.sibling {
		if c.parent != f {
			panic(fmt.Sprintf("graft debug: child %q does not point back at %q", c.desc.Type, f.desc.Type))
		}
		debugValidateFiber(c, counts)
	}
}
