package adserving

import (
	"strings"

	"github.com/vfg2006/mko-api/internal/domain"
)

// Matches indica se o contexto atende todas as dimensões presentes na regra.
// Uma dimensão com lista vazia aceita qualquer valor, inclusive ausente.
func Matches(rule domain.TargetingRule, ctx domain.RequestContext) bool {
	return matchesDimension(rule.Cities, ctx.City) &&
		matchesDimension(rule.Categories, ctx.Category) &&
		matchesDimension(rule.Pages, ctx.Page)
}

func matchesDimension(allowed []string, value string) bool {
	if len(allowed) == 0 {
		return true
	}
	if value == "" {
		return false
	}

	for _, candidate := range allowed {
		if strings.EqualFold(strings.TrimSpace(candidate), value) {
			return true
		}
	}
	return false
}
