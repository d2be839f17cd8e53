package keyring

import (
	"errors"
	"testing"

	gokeyring "github.com/zalando/go-keyring"
)

func TestSetAndGet(t *testing.T) {
	gokeyring.MockInit()

	connStr := "postgres://eco@localhost:5432/ecogamer?sslmode=disable"
	if err := Set(EntryDatabase, connStr); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}

	got, err := Get(EntryDatabase)
	if err != nil {
		t.Fatalf("Get() failed: %v", err)
	}
	if got != connStr {
		t.Errorf("Get() = %q, want %q", got, connStr)
	}

	// Entries are independent
	if _, err := Get(EntryAnonKey); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get(EntryAnonKey) error = %v, want %v", err, ErrNotFound)
	}
}

func TestSetEmpty(t *testing.T) {
	gokeyring.MockInit()

	if err := Set(EntryAnonKey, ""); err == nil {
		t.Error("Set with empty value should return an error")
	}
}

func TestDelete(t *testing.T) {
	gokeyring.MockInit()

	if err := Set(EntryAnonKey, "anon"); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}
	if err := Delete(EntryAnonKey); err != nil {
		t.Fatalf("Delete() failed: %v", err)
	}
	if _, err := Get(EntryAnonKey); !errors.Is(err, ErrNotFound) {
		t.Errorf("after Delete, Get() error = %v, want %v", err, ErrNotFound)
	}
	if err := Delete(EntryAnonKey); !errors.Is(err, ErrNotFound) {
		t.Errorf("second Delete() error = %v, want %v", err, ErrNotFound)
	}
}

func TestLookup(t *testing.T) {
	gokeyring.MockInit()

	if got := Lookup(EntryDatabase, "fallback"); got != "fallback" {
		t.Errorf("Lookup() on empty keyring = %q, want fallback", got)
	}
	_ = Set(EntryDatabase, "host=localhost")
	if got := Lookup(EntryDatabase, "fallback"); got != "host=localhost" {
		t.Errorf("Lookup() = %q, want stored value", got)
	}
}

func TestLookupUnavailable(t *testing.T) {
	gokeyring.MockInitWithError(errors.New("no dbus"))
	t.Cleanup(gokeyring.MockInit)

	if IsAvailable() {
		t.Error("IsAvailable() = true with a failing keyring")
	}
	if _, err := Get(EntryDatabase); !errors.Is(err, ErrKeyringUnavailable) {
		t.Errorf("Get() error = %v, want %v", err, ErrKeyringUnavailable)
	}
	if got := Lookup(EntryDatabase, "fallback"); got != "fallback" {
		t.Errorf("Lookup() = %q, want fallback", got)
	}
}

func TestIsAvailable(t *testing.T) {
	gokeyring.MockInit()
	if !IsAvailable() {
		t.Error("IsAvailable() = false with the mock keyring")
	}
}
