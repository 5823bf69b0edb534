package fixedpool

import "testing"

// TestFixedPoolExhaustionAndReuse is scenario S5 from spec.md §8: a pool of
// four blocks requested at 4 bytes each (raised to the 8-byte link size by
// New) yields four non-null allocations then fails on the
// fifth; freeing one block makes the next allocation return that same
// block.
func TestFixedPoolExhaustionAndReuse(t *testing.T) {
	p := New(4, 4)

	var blocks [][]byte
	for i := 0; i < 4; i++ {
		b, ok := p.Allocate()
		if !ok {
			t.Fatalf("expected allocation %d to succeed", i)
		}
		blocks = append(blocks, b)
	}

	if _, ok := p.Allocate(); ok {
		t.Fatal("expected fifth allocation to fail, pool should be exhausted")
	}

	p2 := blocks[1]
	p.Deallocate(p2)

	got, ok := p.Allocate()
	if !ok {
		t.Fatal("expected allocation after free to succeed")
	}
	if &got[0] != &p2[0] {
		t.Fatal("expected reused block to be the same block that was freed")
	}
}

// TestFixedPoolDistinctBlocks is the round-trip / non-aliasing invariant:
// blocks handed out simultaneously never alias each other.
func TestFixedPoolDistinctBlocks(t *testing.T) {
	p := New(8, 16)
	seen := make(map[*byte]bool)
	for i := 0; i < 16; i++ {
		b, ok := p.Allocate()
		if !ok {
			t.Fatalf("expected allocation %d to succeed", i)
		}
		if seen[&b[0]] {
			t.Fatalf("block %d aliases a previously issued block", i)
		}
		seen[&b[0]] = true
	}
	if _, ok := p.Allocate(); ok {
		t.Fatal("expected pool to be exhausted after Cap() allocations")
	}
}

func TestFixedPoolCap(t *testing.T) {
	p := New(4, 10)
	if p.Cap() != 10 {
		t.Fatalf("expected Cap()==10, got %d", p.Cap())
	}
}

func TestFixedPoolMinimumElementSize(t *testing.T) {
	p := New(1, 4)
	if _, ok := p.Allocate(); !ok {
		t.Fatal("expected allocation to succeed when requested size is below link size")
	}
}

func TestFixedPoolDeallocateNilIsNoOp(t *testing.T) {
	p := New(4, 2)
	p.Deallocate(nil)
	if _, ok := p.Allocate(); !ok {
		t.Fatal("expected first allocation to succeed")
	}
	if _, ok := p.Allocate(); !ok {
		t.Fatal("expected second allocation to succeed")
	}
}

func TestFixedPoolHugePageBacked(t *testing.T) {
	p := NewHugePage(4, 4)
	defer p.Release()

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
