package bundle

import "testing"

func docsWithCounts(counts ...int) []*Document {
	docs := make([]*Document, len(counts))
	for i, c := range counts {
		docs[i] = &Document{Name: "doc", Kind: KindPDF, PageCount: c}
	}
	return docs
}

func TestOffsets(t *testing.T) {
	tests := []struct {
		name       string
		counts     []int
		tocPages   int
		wantStarts []int
		wantTotal  int
	}{
		{
			name:       "no toc",
			counts:     []int{3, 1},
			tocPages:   0,
			wantStarts: []int{1, 4},
			wantTotal:  4,
		},
		{
			name:       "single page toc",
			counts:     []int{3, 1},
			tocPages:   1,
			wantStarts: []int{2, 5},
			wantTotal:  5,
		},
		{
			name:       "overflowing toc shifts everything",
			counts:     []int{3, 1},
			tocPages:   2,
			wantStarts: []int{3, 6},
			wantTotal:  6,
		},
		{
			name:       "single document",
			counts:     []int{10},
			tocPages:   1,
			wantStarts: []int{2},
			wantTotal:  11,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			offsets, total := Offsets(docsWithCounts(tt.counts...), tt.tocPages)

			if total != tt.wantTotal {
				t.Errorf("total = %d, want %d", total, tt.wantTotal)
			}
			for i, off := range offsets {
				if off.StartPage != tt.wantStarts[i] {
					t.Errorf("startPage[%d] = %d, want %d", i, off.StartPage, tt.wantStarts[i])
				}
			}
		})
	}
}

// Each start page must be the previous start plus the previous count,
// and the total must equal the sum of counts plus the TOC pages.
func TestOffsets_Invariants(t *testing.T) {
	counts := []int{7, 1, 12, 2, 1, 30}
	for tocPages := 0; tocPages <= 2; tocPages++ {
		offsets, total := Offsets(docsWithCounts(counts...), tocPages)

		if offsets[0].StartPage != tocPages+1 {
			t.Errorf("first start = %d, want %d", offsets[0].StartPage, tocPages+1)
		}

		sum := tocPages
		for i, off := range offsets {
			if i > 0 {
				prev := offsets[i-1]
				if off.StartPage != prev.StartPage+prev.PageCount {
					t.Errorf("startPage[%d] = %d, want %d", i, off.StartPage, prev.StartPage+prev.PageCount)
				}
			}
			sum += off.PageCount
		}
		if total != sum {
			t.Errorf("total = %d, want %d", total, sum)
		}
	}
}
