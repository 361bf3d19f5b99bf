package dpparse

import "testing"

func TestRelax_CheaperPathWins(t *testing.T) {
	table := NewTable(4)

	Relax(table, 0, 4, 0, 40) // one expensive literal run covering everything
	Relax(table, 0, 2, 1, 5)  // cheap match to position 2
	Relax(table, 2, 2, 1, 5)  // cheap match to position 4

	if table[4].Bits != 10 {
		t.Fatalf("want 10, got %d", table[4].Bits)
	}
	if table[4].Offset != 1 || table[4].Length != 2 {
		t.Fatalf("want offset=1 length=2, got offset=%d length=%d", table[4].Offset, table[4].Length)
	}
}

func TestRelax_TiesDoNotOverwrite(t *testing.T) {
	table := NewTable(2)

	Relax(table, 0, 2, 1, 10) // first choice, offset=1
	fired := Relax(table, 0, 2, 2, 10) // equal cost, offset=2

	if fired {
		t.Fatalf("equal-cost relax must not fire")
	}
	if table[2].Offset != 1 {
		t.Fatalf("earlier choice must survive a tie, got offset=%d", table[2].Offset)
	}
}

func TestRelax_OutOfBoundsIgnored(t *testing.T) {
	table := NewTable(2)
	if Relax(table, 1, 5, 1, 1) {
		t.Fatalf("relaxing past the table end must not fire")
	}
}

func TestWalk_ReconstructsForwardOrder(t *testing.T) {
	table := NewTable(5)
	Relax(table, 0, 2, 0, 18)
	Relax(table, 2, 3, 2, 13)

	tokens := Walk(table)
	if len(tokens) != 2 {
		t.Fatalf("want 2 tokens, got %d", len(tokens))
	}
	if tokens[0].Length != 2 || tokens[0].Offset != 0 {
		t.Fatalf("first token wrong: %+v", tokens[0])
	}
	if tokens[1].Length != 3 || tokens[1].Offset != 2 {
		t.Fatalf("second token wrong: %+v", tokens[1])
	}
}

func TestTotalBits(t *testing.T) {
	table := NewTable(3)
	Relax(table, 0, 3, 0, 27)
	if got := TotalBits(table); got != 27 {
		t.Fatalf("want 27, got %d", got)
	}
}

func TestNewTable_UnreachableExceptStart(t *testing.T) {
	table := NewTable(3)
	if table[0].Bits != 0 {
		t.Fatalf("start must be reachable at 0 bits")
	}
	for i := 1; i <= 3; i++ {
		if table[i].Bits != InfBits {
			t.Fatalf("position %d must start unreachable", i)
		}
	}
}
