// Command gensecrets is a one-shot generator for the session secret and the
// email-encryption key. It writes both, plus a default port, to .env in the
// working directory, overwriting any existing file.
package main

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
)

const envFilePath = ".env"

// generateKey returns n random bytes hex-encoded.
func generateKey(n int) (string, error) {
	key := make([]byte, n)
	if _, err := rand.Read(key); err != nil {
		return "", err
	}
	return hex.EncodeToString(key), nil
}

func main() {
	sessionSecret, err := generateKey(32) // 256-bit session secret
	if err != nil {
		logrus.Fatalf("Failed to generate session secret: %v", err)
	}
	encryptionKey, err := generateKey(32) // 256-bit key for AES-256
	if err != nil {
		logrus.Fatalf("Failed to generate encryption key: %v", err)
	}

	content := fmt.Sprintf("SESSION_SECRET=%s\nSECRET_KEY=%s\nPORT=3000\n",
		sessionSecret, encryptionKey)

	// 0600: the file holds key material.
	if err := os.WriteFile(envFilePath, []byte(content), 0o600); err != nil {
		logrus.Fatalf("Error writing to .env file: %v", err)
	}
	logrus.Info(".env file created/updated with new secrets")
}
