package storage

// opKind says how a pending write combines with the durable value.
type opKind int

const (
	opSet opKind = iota
	opMax
	opAdd
)

// pendingOp is a write waiting for Flush. Max and add are kept as operations
// rather than results so that a flush merges them into whatever another
// process stored in the meantime.
type pendingOp struct {
	kind  opKind
	value int
}

// apply returns the value after the op lands on durable.
func (op pendingOp) apply(durable int) int {
	switch op.kind {
	case opMax:
		return max(durable, op.value)
	case opAdd:
		return durable + op.value
	default:
		return op.value
	}
}

// mergeOp folds next into the op already pending for the same key. cached is
// the key's in-memory value after next was applied; mixed kinds collapse to
// a plain set of it.
func mergeOp(prev pendingOp, pending bool, next pendingOp, cached int) pendingOp {
	switch {
	case !pending, next.kind == opSet:
		return next
	case prev.kind == opMax && next.kind == opMax:
		return pendingOp{kind: opMax, value: max(prev.value, next.value)}
	case prev.kind == opAdd && next.kind == opAdd:
		return pendingOp{kind: opAdd, value: prev.value + next.value}
	default:
		return pendingOp{kind: opSet, value: cached}
	}
}
