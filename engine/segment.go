package engine

import "strings"

// ============================================================================
// SEGMENT CLASSIFIER — (R, F, M) scores → named segment
// ============================================================================
// An ordered decision table, first matching rule wins. Rule order matters:
// the conditions overlap (R=3,F=5 is Loyal, not Fence Sitter). The final
// rule is a catch-all, so the cascade is total over {1..5}³.
// ============================================================================

type segmentRule struct {
	segment Segment
	match   func(r, f, m int) bool
}

var segmentRules = []segmentRule{
	{SegmentChampion, func(r, f, m int) bool { return r >= 4 && f >= 4 && m >= 4 }},
	{SegmentLoyal, func(r, f, m int) bool { return f >= 4 && r >= 3 }},
	{SegmentFenceSitter, func(r, f, m int) bool { return r >= 3 }},
	{SegmentAtRisk, func(r, f, m int) bool { return r == 2 }},
	{SegmentChurned, func(r, f, m int) bool { return true }},
}

// Classify maps a score triple to its segment.
func Classify(r, f, m int) Segment {
	for _, rule := range segmentRules {
		if rule.match(r, f, m) {
			return rule.segment
		}
	}
	return SegmentChurned // unreachable: last rule is a catch-all
}

// ClassifyAll attaches a segment to every scored customer, in place.
func ClassifyAll(customers []CustomerRFM) {
	for i := range customers {
		c := &customers[i]
		c.Segment = Classify(c.RScore, c.FScore, c.MScore)
	}
}

// ParseSegment resolves a segment from its label or a short alias
// ("champion", "loyal", "fence", "at-risk", "churned").
func ParseSegment(s string) (Segment, bool) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	normalized = strings.ReplaceAll(normalized, "_", " ")
	normalized = strings.ReplaceAll(normalized, "-", " ")

	for _, seg := range AllSegments {
		if normalized == strings.ToLower(string(seg)) {
			return seg, true
		}
	}

	switch normalized {
	case "champion", "champions":
		return SegmentChampion, true
	case "loyal":
		return SegmentLoyal, true
	case "fence", "fence sitter", "fence sitters":
		return SegmentFenceSitter, true
	case "at risk", "risk":
		return SegmentAtRisk, true
	case "churned":
		return SegmentChurned, true
	}
	return "", false
}
