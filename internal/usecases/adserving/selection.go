package adserving

import (
	"math"
	"math/rand/v2"
	"sort"

	"github.com/vfg2006/mko-api/internal/domain"
)

// maxWeight limita pesos absurdos para a soma acumulada não estourar
const maxWeight = math.MaxInt32

// Picker é a fonte de aleatoriedade do sorteio; *rand.Rand satisfaz a interface
type Picker interface {
	IntN(n int) int
}

type globalPicker struct{}

func (globalPicker) IntN(n int) int {
	return rand.IntN(n)
}

// DefaultPicker usa o gerador global de math/rand/v2
var DefaultPicker Picker = globalPicker{}

// EffectiveWeight trunca o peso e aplica o mínimo de 1
func EffectiveWeight(weight float64) int {
	if math.IsNaN(weight) || weight < 1 {
		return 1
	}
	if weight >= maxWeight {
		return maxWeight
	}
	return int(weight)
}

// WeightedPick sorteia um criativo com probabilidade proporcional ao peso efetivo.
// Retorna nil quando não há candidatos.
func WeightedPick(candidates []*domain.AdCreative, picker Picker) *domain.AdCreative {
	if len(candidates) == 0 {
		return nil
	}
	if picker == nil {
		picker = DefaultPicker
	}

	cumulative := make([]int, len(candidates))
	total := 0
	for i, c := range candidates {
		total += EffectiveWeight(c.Weight)
		cumulative[i] = total
	}

	draw := picker.IntN(total)
	idx := sort.Search(len(cumulative), func(i int) bool {
		return cumulative[i] > draw
	})

	return candidates[idx]
}
