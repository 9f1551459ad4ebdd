package graft

// MutationKind identifies the kind of mutation record.
type MutationKind uint8

const (
	MutationInsert  MutationKind = iota // insert Element under Parent at Index
	MutationUpdate                      // apply Content/Geometry to Previous in place
	MutationRemove                      // remove Element from Parent
	MutationReplace                     // swap Previous for Replacement under Parent
)

func (k MutationKind) String() string {
	switch k {
	case MutationInsert:
		return "insert"
	case MutationUpdate:
		return "update"
	case MutationRemove:
		return "remove"
	case MutationReplace:
		return "replace"
	default:
		return "unknown"
	}
}

// Mutation is a single instruction for the render backend, emitted during a
// reconciliation pass. Only the fields relevant to Kind are set; the log is
// consumed strictly in order.
//
// The vocabulary has no move: a pure reorder of reused element-bearing
// children emits nothing, so a backend's child order reflects insertion
// history rather than the declared order. Backends that need the declared
// order consult Fiber.ElementIndex or the subview lists, not their own child
// order.
type Mutation struct {
	Kind MutationKind

	// Insert / remove fields.
	Element Element // the element being inserted or removed
	Parent  Element // the element parent the operation addresses
	Index   int     // position among the parent's element children (insert only)

	// Update / replace fields.
	Previous    Element  // the existing element
	Replacement Element  // the element taking Previous's place (replace only)
	Content     any      // new content value (update only)
	Geometry    Geometry // best-known geometry; zero value when none was cached
}

// mutationLog is the ordered output buffer of one reconciliation pass.
// Removals are placed at the front of the log so that removals discovered
// deeper in the traversal precede removals (and every other mutation) queued
// earlier, preserving child-before-parent removal order. Everything else
// appends.
type mutationLog struct {
	ops []Mutation
}

func (l *mutationLog) reset() {
	l.ops = l.ops[:0]
}

func (l *mutationLog) append(m Mutation) {
	l.ops = append(l.ops, m)
}

// prependRemovals places batch at the front of the log, before previously
// queued removals.
func (l *mutationLog) prependRemovals(batch []Mutation) {
	if len(batch) == 0 {
		return
	}
	l.ops = append(l.ops, batch...)         // grow
	copy(l.ops[len(batch):], l.ops[:len(l.ops)-len(batch)])
	copy(l.ops, batch)
}
