package domain

import (
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// LooseString aceita qualquer valor JSON no lugar de uma string.
// Números e booleanos viram texto, null vira vazio.
type LooseString string

func (s *LooseString) UnmarshalJSON(data []byte) error {
	var value any
	if err := json.Unmarshal(data, &value); err != nil {
		return err
	}

	*s = LooseString(looseText(value))
	return nil
}

func (s LooseString) String() string {
	return string(s)
}

func looseText(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case []any:
		parts := make([]string, len(v))
		for i, item := range v {
			parts[i] = looseText(item)
		}
		return strings.Join(parts, ",")
	default:
		return "[object Object]"
	}
}
