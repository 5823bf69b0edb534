package fixedpool

import "testing"

func TestNumaPoolBehavesAsFixedPool(t *testing.T) {
	p := NewNumaPool(4, 4, -1)
	if p.Node() != -1 {
		t.Fatalf("expected Node()==-1 for negative preferred node, got %d", p.Node())
	}

	var blocks [][]byte
	for i := 0; i < 4; i++ {
		b, ok := p.Allocate()
		if !ok {
			t.Fatalf("expected allocation %d to succeed", i)
		}
		blocks = append(blocks, b)
	}
	if _, ok := p.Allocate(); ok {
		t.Fatal("expected pool to be exhausted after Cap() allocations")
	}

	p.Deallocate(blocks[0])
	if _, ok := p.Allocate(); !ok {
		t.Fatal("expected allocation after free to succeed")
	}
}

func TestNumaPoolSingleBackingAllocation(t *testing.T) {
	p := NewNumaPool(8, 8, 0)
	if p.Cap() != 8 {
		t.Fatalf("expected Cap()==8, got %d", p.Cap())
	}
	if &p.buf[0] != &p.arena.Data()[0] {
		t.Fatal("expected the pool's blocks to be the NumaArena's own backing bytes")
	}
}
