// Package keyring keeps secrets that must not live in the YAML config
// (the postgres connection string and the identity provider's anon key)
// in the OS keyring.
package keyring

import (
	"errors"
	"fmt"

	gokeyring "github.com/zalando/go-keyring"

	"github.com/chronox22/eco-gamer-collective/internal/constants"
)

// Entry names one secret stored under the application's keyring service.
type Entry string

const (
	EntryDatabase Entry = constants.DefaultKeyringUser
	EntryAnonKey  Entry = "auth-anon-key"
)

var (
	// ErrNotFound is returned when the entry has never been stored
	ErrNotFound = errors.New("secret not found in keyring")
	// ErrKeyringUnavailable is returned when the OS keyring cannot be reached
	ErrKeyringUnavailable = errors.New("OS keyring is not available")
)

// Get retrieves a secret. Returns ErrNotFound if nothing is stored.
func Get(entry Entry) (string, error) {
	v, err := gokeyring.Get(constants.AppName, string(entry))
	if err != nil {
		if errors.Is(err, gokeyring.ErrNotFound) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("%w: %v", ErrKeyringUnavailable, err)
	}
	return v, nil
}

// Set stores a secret, replacing any previous value.
func Set(entry Entry, value string) error {
	if value == "" {
		return fmt.Errorf("%s cannot be empty", entry)
	}
	if err := gokeyring.Set(constants.AppName, string(entry), value); err != nil {
		return fmt.Errorf("failed to store %s in keyring: %w", entry, err)
	}
	return nil
}

// Delete removes a secret. Returns ErrNotFound if nothing was stored.
func Delete(entry Entry) error {
	if err := gokeyring.Delete(constants.AppName, string(entry)); err != nil {
		if errors.Is(err, gokeyring.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete %s from keyring: %w", entry, err)
	}
	return nil
}

// Lookup returns the stored secret, or fallback when none is stored or the
// keyring cannot be reached.
func Lookup(entry Entry, fallback string) string {
	v, err := Get(entry)
	if err != nil {
		return fallback
	}
	return v
}

// IsAvailable is a best-effort check: a read that fails with anything other
// than "not found" means there is no usable keyring.
func IsAvailable() bool {
	_, err := gokeyring.Get(constants.AppName, "test-availability")
	return err == nil || errors.Is(err, gokeyring.ErrNotFound)
}
