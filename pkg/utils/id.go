package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const idAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// GenerateID gera um identificador curto e seguro para URLs
func GenerateID() (string, error) {
	return gonanoid.Generate(idAlphabet, 16)
}
