package clause

import "testing"

func TestStringReprTerminals(t *testing.T) {
	cases := []struct {
		c    *Clause
		want string
	}{
		{NewNothing(), "()"},
		{NewAnyChar(), "."},
		{NewLiteral("ab"), "'ab'"},
		{NewCharSet(false, Range{'a', 'z'}), "[a-z]"},
		{NewCharSet(true, Range{'0', '9'}), "[^0-9]"},
	}
	for _, tc := range cases {
		if got := StringRepr(tc.c); got != tc.want {
			t.Errorf("StringRepr(%v) = %q, want %q", tc.c.Term, got, tc.want)
		}
	}
}

func TestStringReprNonTerminals(t *testing.T) {
	a := NewLiteral("a")
	a.Repr = StringRepr(a)
	b := NewLiteral("b")
	b.Repr = StringRepr(b)

	seq := NewSeq(a, b)
	if got, want := StringRepr(seq), "('a' 'b')"; got != want {
		t.Errorf("Seq repr = %q, want %q", got, want)
	}

	first := NewFirst(a, b)
	if got, want := StringRepr(first), "('a' / 'b')"; got != want {
		t.Errorf("First repr = %q, want %q", got, want)
	}

	plus := NewOneOrMore(a)
	if got, want := StringRepr(plus), "('a')+"; got != want {
		t.Errorf("OneOrMore repr = %q, want %q", got, want)
	}
}

func TestDuplicateIsIndependent(t *testing.T) {
	inner := NewLiteral("x")
	seq := NewSeq(inner, NewAnyChar())
	dup := seq.Duplicate()

	if dup == seq || dup.SubClauses[0] == seq.SubClauses[0] {
		t.Fatal("Duplicate() shared structure with the original")
	}
	if StringRepr(dup) != StringRepr(seq) {
		t.Fatalf("duplicate diverged: %q vs %q", StringRepr(dup), StringRepr(seq))
	}

	dup.SubClauses[0].Lit[0] = 'y'
	if seq.SubClauses[0].Lit[0] != 'x' {
		t.Fatal("mutating the duplicate mutated the original")
	}
}

func TestMatchesRune(t *testing.T) {
	cs := NewCharSet(false, Range{'a', 'c'}, Range{'x', 'x'})
	for _, r := range []rune{'a', 'b', 'c', 'x'} {
		if !cs.MatchesRune(r) {
			t.Errorf("expected %q to match", r)
		}
	}
	for _, r := range []rune{'d', 'y'} {
		if cs.MatchesRune(r) {
			t.Errorf("expected %q not to match", r)
		}
	}

	neg := NewCharSet(true, Range{'a', 'z'})
	if neg.MatchesRune('m') {
		t.Error("negated charset matched a member of the range")
	}
	if !neg.MatchesRune('5') {
		t.Error("negated charset failed to match a non-member")
	}

	if !NewAnyChar().MatchesRune('\n') {
		t.Error("AnyChar should match any rune")
	}
}
