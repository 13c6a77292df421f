package domain

import "strings"

// TargetingRule restringe as requisições elegíveis para um criativo.
// Lista vazia em uma dimensão significa "qualquer valor".
type TargetingRule struct {
	Cities     []string `json:"cities,omitempty"`
	Categories []string `json:"categories,omitempty"`
	Pages      []string `json:"pages,omitempty"`
}

// NewTargetingRule monta a regra já normalizada
func NewTargetingRule(cities, categories, pages []string) TargetingRule {
	return TargetingRule{
		Cities:     normalizeValues(cities),
		Categories: normalizeValues(categories),
		Pages:      normalizeValues(pages),
	}
}

// Normalize remove espaços e entradas vazias de todas as dimensões
func (t TargetingRule) Normalize() TargetingRule {
	return NewTargetingRule(t.Cities, t.Categories, t.Pages)
}

func (t TargetingRule) IsEmpty() bool {
	return len(t.Cities) == 0 && len(t.Categories) == 0 && len(t.Pages) == 0
}

func normalizeValues(values []string) []string {
	if len(values) == 0 {
		return nil
	}

	out := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		out = append(out, v)
	}

	if len(out) == 0 {
		return nil
	}
	return out
}

// RequestContext é o contexto da página que pede um anúncio
type RequestContext struct {
	City     string `json:"city,omitempty"`
	Category string `json:"category,omitempty"`
	Page     string `json:"page,omitempty"`
}

// NewRequestContext remove espaços dos valores recebidos
func NewRequestContext(city, category, page string) RequestContext {
	return RequestContext{
		City:     strings.TrimSpace(city),
		Category: strings.TrimSpace(category),
		Page:     strings.TrimSpace(page),
	}
}
