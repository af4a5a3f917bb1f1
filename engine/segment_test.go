package engine

import "testing"

// ============================================================================
// SEGMENT CLASSIFIER TESTS
// ============================================================================

func TestClassifyCascadeOrder(t *testing.T) {
	cases := []struct {
		r, f, m int
		want    Segment
	}{
		{5, 5, 5, SegmentChampion},
		{4, 4, 4, SegmentChampion},
		{3, 5, 1, SegmentLoyal}, // rule 2 wins over Fence Sitter
		{4, 5, 3, SegmentLoyal}, // high F but M < 4: not Champion
		{5, 4, 1, SegmentLoyal},
		{3, 3, 5, SegmentFenceSitter},
		{5, 1, 1, SegmentFenceSitter},
		{2, 5, 5, SegmentAtRisk}, // high F cannot rescue R=2
		{2, 1, 1, SegmentAtRisk},
		{1, 5, 5, SegmentChurned},
		{1, 1, 1, SegmentChurned},
	}

	for _, c := range cases {
		if got := Classify(c.r, c.f, c.m); got != c.want {
			t.Errorf("Classify(%d,%d,%d) = %q, want %q", c.r, c.f, c.m, got, c.want)
		}
	}
}

func TestClassifyTotalAndDeterministic(t *testing.T) {
	valid := make(map[Segment]bool, len(AllSegments))
	for _, s := range AllSegments {
		valid[s] = true
	}

	for r := 1; r <= 5; r++ {
		for f := 1; f <= 5; f++ {
			for m := 1; m <= 5; m++ {
				first := Classify(r, f, m)
				if !valid[first] {
					t.Fatalf("Classify(%d,%d,%d) produced unknown segment %q", r, f, m, first)
				}
				if second := Classify(r, f, m); second != first {
					t.Fatalf("Classify(%d,%d,%d) is not deterministic: %q then %q", r, f, m, first, second)
				}
			}
		}
	}
}

func TestClassifyAll(t *testing.T) {
	customers := []CustomerRFM{
		{CustomerID: "A", RScore: 5, FScore: 5, MScore: 5},
		{CustomerID: "B", RScore: 1, FScore: 3, MScore: 3},
	}
	ClassifyAll(customers)
	if customers[0].Segment != SegmentChampion {
		t.Errorf("A segment = %q, want Champion", customers[0].Segment)
	}
	if customers[1].Segment != SegmentChurned {
		t.Errorf("B segment = %q, want Churned", customers[1].Segment)
	}
}

func TestParseSegment(t *testing.T) {
	cases := map[string]Segment{
		"champion":          SegmentChampion,
		"Champion Customer": SegmentChampion,
		"loyal":             SegmentLoyal,
		"fence":             SegmentFenceSitter,
		"at-risk":           SegmentAtRisk,
		"at_risk":           SegmentAtRisk,
		"churned":           SegmentChurned,
	}
	for in, want := range cases {
		got, ok := ParseSegment(in)
		if !ok || got != want {
			t.Errorf("ParseSegment(%q) = (%q, %v), want (%q, true)", in, got, ok, want)
		}
	}
	if _, ok := ParseSegment("whale"); ok {
		t.Error("ParseSegment should reject unknown labels")
	}
}
