package utils

import "math"

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// CTR calcula a taxa de cliques em percentual com duas casas
func CTR(views, clicks int64) float64 {
	if views <= 0 {
		return 0
	}
	return RoundWithTwoDecimalPlace(float64(clicks) / float64(views) * 100)
}
