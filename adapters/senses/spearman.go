package senses

// Spearman computes the Spearman rank correlation between the target and one
// feature: Pearson correlation on tie-averaged ranks.
func Spearman(target, feature []float64) (float64, error) {
	if err := checkPair(target, feature); err != nil {
		return 0, err
	}
	return pearson(rankData(target), rankData(feature)), nil
}
