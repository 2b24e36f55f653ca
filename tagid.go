// Package tagid generates random numeric tag identifiers.
//
// Each tag kind owns a fixed, non-overlapping inclusive range:
//
//	ip       [1, 1000]
//	char     [1001, 9999]
//	general  [10000, 99999]
//
// IDs are returned as base-10 strings. Uniqueness is not tracked; two calls may return the
// same value.
package tagid

import (
	"strconv"
	"sync"
)

var (
	defaultMu     sync.RWMutex
	defaultSource = NewMathSource(nil)
)

// Seed replaces the process-wide source with a deterministic one.
func Seed(seed uint64) {
	setDefaultSource(NewSeededSource(seed))
}

// Reseed restores a randomly seeded process-wide source.
func Reseed() {
	setDefaultSource(NewMathSource(nil))
}

func setDefaultSource(src Source) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultSource = src
}

// GenerateIPTagID returns a random IP tag ID in [1, 1000].
func GenerateIPTagID() string {
	return drawDefault(ipRange)
}

// GenerateCharTagID returns a random character tag ID in [1001, 9999].
func GenerateCharTagID() string {
	return drawDefault(charRange)
}

// GenerateGeneralTagID returns a random general tag ID in [10000, 99999].
func GenerateGeneralTagID() string {
	return drawDefault(generalRange)
}

func drawDefault(r Range) string {
	defaultMu.RLock()
	src := defaultSource
	defaultMu.RUnlock()

	n, err := src.IntN(r.Width())
	if err != nil {
		// The process-wide source is always a mathSource, which only fails on a non-positive width.
		panic(err)
	}
	return strconv.Itoa(r.Min + n)
}
