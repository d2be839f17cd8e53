package kv_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/chronox22/eco-gamer-collective/internal/kv"
	"github.com/chronox22/eco-gamer-collective/internal/kv/memory"
)

func TestCopy(t *testing.T) {
	src := memory.New()
	dst := memory.New()
	seed := map[string]string{
		"habits":    `{"date":"Mon Jan 01 2024","completed":{}}`,
		"onboarded": "true",
	}
	for k, v := range seed {
		if err := src.Set(k, v); err != nil {
			t.Fatalf("Set(%s) failed: %v", k, err)
		}
	}
	if err := dst.Set("tutorialCompleted", "true"); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}

	n, err := kv.Copy(dst, src)
	if err != nil {
		t.Fatalf("Copy() failed: %v", err)
	}
	if n != len(seed) {
		t.Errorf("Copy() = %d, want %d", n, len(seed))
	}

	got := map[string]string{}
	keys, _ := dst.Keys()
	for _, k := range keys {
		v, _, _ := dst.Get(k)
		got[k] = v
	}
	want := map[string]string{
		"habits":            seed["habits"],
		"onboarded":         "true",
		"tutorialCompleted": "true",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("destination mismatch (-want +got):\n%s", diff)
	}
}
