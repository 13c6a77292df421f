package adserving

import "time"

// InWindow verifica se t está dentro de [from, to]. Limites ausentes não restringem.
func InWindow(from, to *time.Time, t time.Time) bool {
	if from != nil && t.Before(*from) {
		return false
	}
	if to != nil && t.After(*to) {
		return false
	}
	return true
}
