// Package effect defines the provisioning actions a plan is made of.
//
// An Effect describes a single action on a target host — run a shell
// command, or write file content to a path — without executing anything.
// Effects are immutable values compared by structure, so a generated plan
// can be asserted against an expected literal plan as plain data.
package effect

// Effect is a single provisioning action. The concrete types are Run,
// Put, and Sequence; no other implementations exist.
type Effect interface {
	isEffect()
}

// Run is a shell command to execute on the target host.
type Run struct {
	Command string
}

func (Run) isEffect() {}

// Put is file content to write at an absolute path on the target host,
// overwriting any existing file. Content is preserved byte for byte,
// trailing newline included.
type Put struct {
	Content string
	Path    string
}

func (Put) isEffect() {}

// Sequence is an ordered list of effects. Nested sequences are flattened
// at construction, so equality is equality of the flat effect list.
type Sequence []Effect

func (Sequence) isEffect() {}

// NewSequence builds a Sequence from effects and/or other sequences,
// preserving argument order. Nested sequences are spliced in place.
func NewSequence(effects ...Effect) Sequence {
	seq := make(Sequence, 0, len(effects))
	for _, e := range effects {
		if nested, ok := e.(Sequence); ok {
			seq = append(seq, NewSequence(nested...)...)
			continue
		}
		seq = append(seq, e)
	}
	return seq
}

// Equal reports whether two sequences contain equal effects in equal
// order. Both sides are flattened first, so a literal-nested sequence
// compares equal to its flat equivalent.
func (s Sequence) Equal(other Sequence) bool {
	a, b := NewSequence(s...), NewSequence(other...)
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
