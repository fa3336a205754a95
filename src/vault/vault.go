package vault

import (
	"errors"
	"log/slog"

	"github.com/zalando/go-keyring"

	"byoa-assistant/src/logutil"
)

// DefaultService namespaces every secret this app stores in the OS credential manager.
const DefaultService = "com.byoa.assistant.vault"

// Vault maps keys to opaque secrets held by the OS credential store
// (Keychain, Windows Credential Manager, Secret Service).
type Vault struct {
	service string
	log     *slog.Logger
}

func New(service string, logger *slog.Logger) *Vault {
	if service == "" {
		service = DefaultService
	}
	return &Vault{service: service, log: logutil.Component(logger, "vault")}
}

// Store creates or overwrites the secret for key.
func (v *Vault) Store(key, value string) bool {
	if key == "" {
		v.log.Warn("store rejected, empty key")
		return false
	}
	if err := keyring.Set(v.service, key, value); err != nil {
		v.log.Error("store failed", "key", key, "error", err)
		return false
	}
	return true
}

// Get returns the secret for key. found is false when no secret exists
// or the store could not be read.
func (v *Vault) Get(key string) (value string, found bool) {
	if key == "" {
		return "", false
	}
	value, err := keyring.Get(v.service, key)
	if err != nil {
		if !errors.Is(err, keyring.ErrNotFound) {
			v.log.Error("get failed", "key", key, "error", err)
		}
		return "", false
	}
	return value, true
}

// Delete removes the secret for key. Returns false when it did not exist.
func (v *Vault) Delete(key string) bool {
	if key == "" {
		return false
	}
	if err := keyring.Delete(v.service, key); err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			v.log.Debug("delete of missing key", "key", key)
		} else {
			v.log.Error("delete failed", "key", key, "error", err)
		}
		return false
	}
	return true
}

// Has reports whether a secret exists for key.
func (v *Vault) Has(key string) bool {
	_, found := v.Get(key)
	return found
}
