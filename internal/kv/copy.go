package kv

import (
	"fmt"
	"sort"
)

// Copy writes every key of src into dst and returns how many were copied.
// Keys already in dst but absent from src are left alone.
func Copy(dst, src Backend) (int, error) {
	keys, err := src.Keys()
	if err != nil {
		return 0, fmt.Errorf("failed to list source keys: %w", err)
	}
	sort.Strings(keys)

	n := 0
	for _, key := range keys {
		value, ok, err := src.Get(key)
		if err != nil {
			return n, fmt.Errorf("failed to read %q: %w", key, err)
		}
		if !ok {
			continue
		}
		if err := dst.Set(key, value); err != nil {
			return n, fmt.Errorf("failed to write %q: %w", key, err)
		}
		n++
	}
	return n, nil
}
