package engine

import (
	"errors"
	"fmt"
	"testing"
)

// ============================================================================
// PERCENTILE SCORER TESTS
// ============================================================================

// evenPopulation builds n customers with distinct, evenly spread measures:
// customer i has Recency n-i, Frequency i, Monetary 100*i.
func evenPopulation(n int) []CustomerRFM {
	customers := make([]CustomerRFM, n)
	for i := 1; i <= n; i++ {
		customers[i-1] = CustomerRFM{
			CustomerID: fmt.Sprintf("C%02d", i),
			Recency:    n - i,
			Frequency:  i,
			Monetary:   float64(100 * i),
		}
	}
	return customers
}

func TestScoreEvenSpreadTwoPerBucket(t *testing.T) {
	customers := evenPopulation(10)
	if err := Score(customers); err != nil {
		t.Fatalf("Score failed: %v", err)
	}

	var rCounts, fCounts, mCounts [6]int
	for _, c := range customers {
		rCounts[c.RScore]++
		fCounts[c.FScore]++
		mCounts[c.MScore]++
	}
	for score := 1; score <= 5; score++ {
		if mCounts[score] != 2 {
			t.Errorf("M score %d holds %d customers, want 2", score, mCounts[score])
		}
		if fCounts[score] != 2 {
			t.Errorf("F score %d holds %d customers, want 2", score, fCounts[score])
		}
		if rCounts[score] != 2 {
			t.Errorf("R score %d holds %d customers, want 2", score, rCounts[score])
		}
	}
}

func TestScoreDirections(t *testing.T) {
	customers := evenPopulation(10)
	if err := Score(customers); err != nil {
		t.Fatalf("Score failed: %v", err)
	}

	// Customer 10: most recent, highest frequency, highest monetary.
	top := customers[9]
	if top.RScore != 5 || top.FScore != 5 || top.MScore != 5 {
		t.Errorf("top customer scores = %d%d%d, want 555", top.RScore, top.FScore, top.MScore)
	}
	// Customer 1: least recent, lowest frequency, lowest monetary.
	bottom := customers[0]
	if bottom.RScore != 1 || bottom.FScore != 1 || bottom.MScore != 1 {
		t.Errorf("bottom customer scores = %d%d%d, want 111", bottom.RScore, bottom.FScore, bottom.MScore)
	}
}

func TestScoreCodeIsConcatenation(t *testing.T) {
	customers := evenPopulation(10)
	if err := Score(customers); err != nil {
		t.Fatalf("Score failed: %v", err)
	}
	for _, c := range customers {
		want := fmt.Sprintf("%d%d%d", c.RScore, c.FScore, c.MScore)
		if c.Code != want {
			t.Errorf("customer %s code = %q, want %q", c.CustomerID, c.Code, want)
		}
		if len(c.Code) != 3 {
			t.Errorf("customer %s code %q is not 3 characters", c.CustomerID, c.Code)
		}
	}
}

func TestScoreRangeAndQuantileBalance(t *testing.T) {
	// 23 customers: bucket populations must stay within one customer of 20%.
	customers := evenPopulation(23)
	if err := Score(customers); err != nil {
		t.Fatalf("Score failed: %v", err)
	}

	var fCounts [6]int
	for _, c := range customers {
		for _, s := range []int{c.RScore, c.FScore, c.MScore} {
			if s < 1 || s > 5 {
				t.Fatalf("customer %s has out-of-range score %d", c.CustomerID, s)
			}
		}
		fCounts[c.FScore]++
	}

	ideal := 23.0 / 5.0
	for score := 1; score <= 5; score++ {
		diff := float64(fCounts[score]) - ideal
		if diff < -1 || diff > 1 {
			t.Errorf("F score %d holds %d customers, want within 1 of %.1f", score, fCounts[score], ideal)
		}
	}
}

func TestScoreTiedFrequenciesSplitDeterministically(t *testing.T) {
	// All frequencies identical: rank-first tie-breaking must still spread
	// customers across bins, ordered by customer ID.
	customers := make([]CustomerRFM, 10)
	for i := range customers {
		customers[i] = CustomerRFM{
			CustomerID: fmt.Sprintf("C%02d", i+1),
			Recency:    i,
			Frequency:  3,
			Monetary:   float64(100 * (i + 1)),
		}
	}
	if err := Score(customers); err != nil {
		t.Fatalf("Score failed on tied frequencies: %v", err)
	}

	var fCounts [6]int
	for _, c := range customers {
		fCounts[c.FScore]++
	}
	for score := 1; score <= 5; score++ {
		if fCounts[score] != 2 {
			t.Errorf("F score %d holds %d customers, want 2", score, fCounts[score])
		}
	}

	// Lowest customer IDs take the lowest ranks.
	if customers[0].FScore != 1 {
		t.Errorf("C01 FScore = %d, want 1", customers[0].FScore)
	}
	if customers[9].FScore != 5 {
		t.Errorf("C10 FScore = %d, want 5", customers[9].FScore)
	}
}

func TestScoreIndependentOfInputOrder(t *testing.T) {
	a := evenPopulation(12)
	b := evenPopulation(12)
	// Reverse b's input order.
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}

	if err := Score(a); err != nil {
		t.Fatalf("Score a: %v", err)
	}
	if err := Score(b); err != nil {
		t.Fatalf("Score b: %v", err)
	}

	byID := make(map[string]CustomerRFM)
	for _, c := range b {
		byID[c.CustomerID] = c
	}
	for _, c := range a {
		other := byID[c.CustomerID]
		if c.Code != other.Code {
			t.Errorf("customer %s code differs across input orders: %s vs %s", c.CustomerID, c.Code, other.Code)
		}
	}
}

func TestScoreTooFewCustomers(t *testing.T) {
	customers := evenPopulation(4)
	err := Score(customers)
	var insufficientErr *InsufficientDataError
	if !errors.As(err, &insufficientErr) {
		t.Fatalf("expected InsufficientDataError for 4 customers, got %v", err)
	}
}

func TestScoreUniformRecencyFails(t *testing.T) {
	customers := make([]CustomerRFM, 10)
	for i := range customers {
		customers[i] = CustomerRFM{
			CustomerID: fmt.Sprintf("C%02d", i+1),
			Recency:    7, // everyone ordered on the same day
			Frequency:  i + 1,
			Monetary:   float64(100 * (i + 1)),
		}
	}
	err := Score(customers)
	var insufficientErr *InsufficientDataError
	if !errors.As(err, &insufficientErr) {
		t.Fatalf("expected InsufficientDataError for uniform recency, got %v", err)
	}
}

func TestQuantileEdgesInterpolation(t *testing.T) {
	// Ranks 1..10: edges at 1, 2.8, 4.6, 6.4, 8.2, 10.
	values := make([]float64, 10)
	for i := range values {
		values[i] = float64(i + 1)
	}
	edges, ok := quantileEdges(values)
	if !ok {
		t.Fatal("edges over distinct values should be well formed")
	}
	want := [6]float64{1, 2.8, 4.6, 6.4, 8.2, 10}
	for k := range want {
		if diff := edges[k] - want[k]; diff > 1e-9 || diff < -1e-9 {
			t.Errorf("edge[%d] = %v, want %v", k, edges[k], want[k])
		}
	}
}
