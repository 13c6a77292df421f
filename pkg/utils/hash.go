package utils

import (
	"crypto/sha256"
	"encoding/hex"
)

// SHA256Hex devolve o hash SHA-256 em hexadecimal
func SHA256Hex(value string) string {
	sum := sha256.Sum256([]byte(value))
	return hex.EncodeToString(sum[:])
}

// HashIP aplica o salt ao IP antes do hash; o IP puro nunca é persistido
func HashIP(ip, salt string) string {
	return SHA256Hex(ip + salt)
}
