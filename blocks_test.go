package gridplot

import "testing"

func TestQuadBlocksExhaustive(t *testing.T) {
	seen := make(map[rune]int)
	for mask, r := range quadBlocks {
		if prev, dup := seen[r]; dup {
			t.Errorf("glyph %q appears for both mask %d and %d", r, prev, mask)
		}
		seen[r] = mask
	}

	if quadBlocks[0] != ' ' {
		t.Error("empty mask should map to space")
	}
	if quadBlocks[15] != '█' {
		t.Error("full mask should map to the full block")
	}
}

func TestEighthBlockTables(t *testing.T) {
	for name, table := range map[string][9]rune{"hBlocks": hBlocks, "vBlocks": vBlocks} {
		if table[0] != ' ' {
			t.Errorf("%s[0] should be space", name)
		}
		if table[8] != '█' {
			t.Errorf("%s[8] should be the full block", name)
		}
		for i := 1; i < 9; i++ {
			if table[i] == table[i-1] {
				t.Errorf("%s has duplicate glyph at %d", name, i)
			}
		}
	}
}
