package secrets

import (
	"errors"
	"os"
	"strings"

	"github.com/zalando/go-keyring"
)

const (
	// Service groups this app's secrets in the OS keychain.
	Service        = "signal-engine"
	classifierItem = "openai-api-key"
)

// ClassifierAPIKey resolves the classifier credential: environment
// first (CI, containers), OS keyring second (developer machines).
// Empty return means run with the mock classifier.
func ClassifierAPIKey() string {
	if v := strings.TrimSpace(os.Getenv("OPENAI_API_KEY")); v != "" {
		return v
	}
	if pw, err := keyring.Get(Service, classifierItem); err == nil {
		return strings.TrimSpace(pw)
	}
	return ""
}

// SetClassifierAPIKey stores the credential in the OS keyring.
func SetClassifierAPIKey(key string) error {
	if strings.TrimSpace(key) == "" {
		return errors.New("api key is empty")
	}
	return keyring.Set(Service, classifierItem, key)
}

// DeleteClassifierAPIKey removes the stored credential.
func DeleteClassifierAPIKey() error {
	return keyring.Delete(Service, classifierItem)
}
