package ast

import (
	"testing"

	"github.com/krotik/cypherast/position"
)

func rng(w int) position.Range {
	return position.Range{Start: position.Start, End: position.Position{Offset: w, Line: 1, Column: w + 1}}
}

func TestIntegerLiteralIsExpression(t *testing.T) {
	r := NewResult("test", Config{})

	n, err := r.New(KindIntegerLiteral, rng(1), nil, nil)
	if err != nil {
		t.Fatal(err)
	}

	if !n.Is(KindExpression) {
		t.Error("expected INTEGER to be a kind of EXPRESSION")
	}

	if n.Is(KindClause) {
		t.Error("did not expect INTEGER to be a kind of CLAUSE")
	}
}

func TestBinaryOperatorRequiresSlots(t *testing.T) {
	r := NewResult("test", Config{})

	left, _ := r.New(KindIntegerLiteral, rng(1), nil, nil)
	left.Text = "1"
	right, _ := r.New(KindIntegerLiteral, rng(1), nil, nil)
	right.Text = "2"
	op, _ := r.New(KindOperatorSymbol, rng(1), nil, nil)
	op.Text = "+"

	if _, err := r.New(KindBinaryOperator, rng(3), []*Node{left, right}, map[string]*Node{
		"left": left, "right": right,
	}); err != ErrInvalidChildKind {
		t.Error("expected missing required 'operator' slot to fail construction")
	}

	n, err := r.New(KindBinaryOperator, rng(3), []*Node{left, right, op}, map[string]*Node{
		"left": left, "right": right, "operator": op,
	})
	if err != nil {
		t.Fatal(err)
	}

	if n.Slot("left") != left || n.Slot("right") != right || n.Slot("operator") != op {
		t.Error("unexpected slot wiring")
	}
}

func TestSlotKindMismatchRejected(t *testing.T) {
	r := NewResult("test", Config{})

	notAnOperator, _ := r.New(KindIntegerLiteral, rng(1), nil, nil)
	left, _ := r.New(KindIntegerLiteral, rng(1), nil, nil)
	right, _ := r.New(KindIntegerLiteral, rng(1), nil, nil)

	_, err := r.New(KindBinaryOperator, rng(3), []*Node{left, right, notAnOperator}, map[string]*Node{
		"left": left, "right": right, "operator": notAnOperator,
	})

	if err != ErrInvalidChildKind {
		t.Error("expected a non-OPERATOR_SYMBOL 'operator' slot to be rejected, got:", err)
	}
}

func TestOrdinalsAreDenseAndDepthFirst(t *testing.T) {
	r := NewResult("test", Config{})

	leaf1, _ := r.New(KindIntegerLiteral, rng(1), nil, nil)
	leaf2, _ := r.New(KindIntegerLiteral, rng(1), nil, nil)
	op, _ := r.New(KindOperatorSymbol, rng(1), nil, nil)

	bin, err := r.New(KindBinaryOperator, rng(3), []*Node{leaf1, leaf2, op}, map[string]*Node{
		"left": leaf1, "right": leaf2, "operator": op,
	})
	if err != nil {
		t.Fatal(err)
	}

	r.AddDirective(bin)
	r.Finalize()

	seen := map[int]bool{}
	for _, n := range []*Node{bin, leaf1, leaf2, op} {
		o, ok := n.Ordinal()
		if !ok {
			t.Error("expected ordinal to be set after Finalize")
		}
		if seen[o] {
			t.Error("duplicate ordinal", o)
		}
		seen[o] = true
	}

	if len(seen) != 4 {
		t.Error("expected 4 distinct ordinals, got", len(seen))
	}

	bo, _ := bin.Ordinal()
	lo, _ := leaf1.Ordinal()
	if bo != 0 || lo != 1 {
		t.Error("expected depth-first numbering: parent before children; got parent=", bo, "left=", lo)
	}
}

func TestErrorsSortedByPosition(t *testing.T) {
	r := NewResult("test", Config{})

	r.AddError(Diagnostic{Position: position.Position{Offset: 10}, Message: "second"})
	r.AddError(Diagnostic{Position: position.Position{Offset: 2}, Message: "first"})
	r.Finalize()

	errs := r.Errors()
	if len(errs) != 2 || errs[0].Message != "first" || errs[1].Message != "second" {
		t.Error("expected errors sorted by position, got:", errs)
	}
}

func TestAllocationCap(t *testing.T) {
	r := NewResult("test", Config{MaxNodes: 1})

	if _, err := r.New(KindIntegerLiteral, rng(1), nil, nil); err != nil {
		t.Fatal(err)
	}

	if _, err := r.New(KindIntegerLiteral, rng(1), nil, nil); err != ErrAllocationFailed {
		t.Error("expected ErrAllocationFailed once the node budget is exhausted, got:", err)
	}
}

func TestCreateUniqueConstraintDetail(t *testing.T) {
	r := NewResult("test", Config{})

	id, _ := r.New(KindIdentifier, rng(1), nil, nil)
	id.Text = "n"
	label, _ := r.New(KindLabel, rng(1), nil, nil)
	label.Text = "Book"
	key, _ := r.New(KindPropertyKeyName, rng(1), nil, nil)
	key.Text = "isbn"
	target, _ := r.New(KindIdentifier, rng(1), nil, nil)
	target.Text = "n"
	access, err := r.New(KindPropertyAccess, rng(1), []*Node{target, key}, map[string]*Node{
		"target": target, "property": key,
	})
	if err != nil {
		t.Fatal(err)
	}

	n, err := r.New(KindCreateUniqueNodePropConstraint, rng(3), []*Node{id, label, access}, map[string]*Node{
		"identifier": id, "label": label, "expression": access,
	})
	if err != nil {
		t.Fatal(err)
	}

	r.AddDirective(n)
	r.Finalize()

	if got := n.Detail(); got != "ON=(@1:@2), IS UNIQUE=(@3)" {
		t.Error("unexpected detail string:", got)
	}
}
