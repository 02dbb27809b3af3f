package lighting

// Weight combines two sampling strategies' PDFs with the fixed 0.5/0.5
// weighting spec §4.3 mandates (rather than a power/balance heuristic).
func Weight(pA, pB float64) float64 {
	return 0.5*pA + 0.5*pB
}
