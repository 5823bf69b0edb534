package arena

import "testing"

func TestNumaArenaNegativeNodeDisablesPlacement(t *testing.T) {
	a := NewNumaArena(64, -1)
	if a.Node() != -1 {
		t.Fatalf("expected Node()==-1 for negative preferred node, got %d", a.Node())
	}
	if _, ok := a.Allocate(64, 1); !ok {
		t.Fatal("expected allocation to behave like a plain arena")
	}
}

func TestNumaArenaOutOfRangeNodeDisablesPlacement(t *testing.T) {
	a := NewNumaArena(64, 1<<30)
	if a.Node() != -1 {
		t.Fatalf("expected Node()==-1 for a node beyond the platform's topology, got %d", a.Node())
	}
}

func TestNumaArenaBehavesAsPlainArena(t *testing.T) {
	a := NewNumaArena(128, 0)
	p1, ok := a.Allocate(16, 8)
	if !ok {
		t.Fatal("expected allocation to succeed")
	}
	if len(p1) != 16 {
		t.Fatalf("expected 16-byte slice, got %d", len(p1))
	}
	a.Reset()
	if a.Used() != 0 {
		t.Fatal("expected Reset to rewind the bump pointer")
	}
}
