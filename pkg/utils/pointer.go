package utils

// StringPtr converte vazio em nil
func StringPtr(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}
