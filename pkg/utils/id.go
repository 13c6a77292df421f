package utils

import (
	"crypto/rand"
	"encoding/hex"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

const hexCharacters = "0123456789abcdef"

// MakeID gera um identificador opaco no formato <prefixo>_<24 hex>
func MakeID(prefix string) string {
	id, err := gonanoid.Generate(hexCharacters, 24)
	if err != nil {
		// gonanoid só falha quando o gerador aleatório falha
		panic(err)
	}

	if prefix == "" {
		return id
	}
	return prefix + "_" + id
}

// RandomToken gera um token hexadecimal a partir de n bytes criptograficamente seguros
func RandomToken(n int) (string, error) {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
