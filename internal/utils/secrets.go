package utils

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

// GenerateJWTSecrets produces a random access and refresh secret pair
func GenerateJWTSecrets() (accessSecret, refreshSecret string, err error) {
	accessSecret, err = randomSecret(48)
	if err != nil {
		return "", "", fmt.Errorf("failed to generate access secret: %w", err)
	}

	refreshSecret, err = randomSecret(48)
	if err != nil {
		return "", "", fmt.Errorf("failed to generate refresh secret: %w", err)
	}

	return accessSecret, refreshSecret, nil
}

func randomSecret(bytes int) (string, error) {
	buf := make([]byte, bytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
