package effect

import "testing"

func TestNewSequenceFlattensNested(t *testing.T) {
	inner := NewSequence(
		Run{Command: "b"},
		Run{Command: "c"},
	)
	seq := NewSequence(
		Run{Command: "a"},
		inner,
		Run{Command: "d"},
	)

	want := Sequence{
		Run{Command: "a"},
		Run{Command: "b"},
		Run{Command: "c"},
		Run{Command: "d"},
	}
	if !seq.Equal(want) {
		t.Errorf("flattened sequence = %v, want %v", seq, want)
	}
}

func TestNestedAndFlatConstructionsAreEqual(t *testing.T) {
	flat := NewSequence(
		Run{Command: "a"},
		Put{Content: "x\n", Path: "/etc/x"},
		Run{Command: "b"},
	)
	nested := NewSequence(
		NewSequence(Run{Command: "a"}),
		NewSequence(
			Put{Content: "x\n", Path: "/etc/x"},
			NewSequence(Run{Command: "b"}),
		),
	)

	if !flat.Equal(nested) {
		t.Errorf("flat and nested constructions differ: %v vs %v", flat, nested)
	}
}

func TestEqualFlattensLiteralNesting(t *testing.T) {
	// Sequences built by hand, without NewSequence, may still nest.
	nested := Sequence{
		Run{Command: "a"},
		Sequence{Run{Command: "b"}},
	}
	flat := NewSequence(Run{Command: "a"}, Run{Command: "b"})

	if !nested.Equal(flat) {
		t.Errorf("literal nested sequence != flat equivalent: %v vs %v", nested, flat)
	}
	if !flat.Equal(nested) {
		t.Errorf("flat sequence != literal nested equivalent: %v vs %v", flat, nested)
	}
}

func TestEqualLiteralNestingBothSides(t *testing.T) {
	a := Sequence{Sequence{Run{Command: "x"}}}
	b := Sequence{Sequence{Run{Command: "x"}}}

	if !a.Equal(b) {
		t.Error("equal literal-nested sequences compared unequal")
	}

	c := Sequence{Sequence{Run{Command: "y"}}}
	if a.Equal(c) {
		t.Error("different literal-nested sequences compared equal")
	}
}

func TestSequenceOrderIsSignificant(t *testing.T) {
	a := NewSequence(Run{Command: "a"}, Run{Command: "b"})
	b := NewSequence(Run{Command: "b"}, Run{Command: "a"})

	if a.Equal(b) {
		t.Error("sequences with different order compared equal")
	}
}

func TestSequenceLengthMismatch(t *testing.T) {
	a := NewSequence(Run{Command: "a"})
	b := NewSequence(Run{Command: "a"}, Run{Command: "b"})

	if a.Equal(b) {
		t.Error("sequences of different length compared equal")
	}
}

func TestEffectsCompareByValue(t *testing.T) {
	if (Run{Command: "x"}) != (Run{Command: "x"}) {
		t.Error("equal Run effects compared unequal")
	}
	if (Put{Content: "c", Path: "/p"}) != (Put{Content: "c", Path: "/p"}) {
		t.Error("equal Put effects compared unequal")
	}
	a := NewSequence(Run{Command: "x"})
	b := NewSequence(Put{Content: "x", Path: "/p"})
	if a.Equal(b) {
		t.Error("Run and Put compared equal")
	}
}

func TestEmptySequence(t *testing.T) {
	if !NewSequence().Equal(NewSequence()) {
		t.Error("empty sequences compared unequal")
	}
	if NewSequence().Equal(NewSequence(Run{Command: "a"})) {
		t.Error("empty sequence compared equal to non-empty")
	}
}
