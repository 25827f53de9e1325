// Package simulation holds the deterministic engine behind the simulated
// prediction endpoints. Every numeric output is derived from a SHA-256 seed
// of the request fields, so identical inputs always produce identical results.
package simulation

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"strconv"
	"strings"
)

// Confidence bounds used by every seed-driven predictor.
const (
	ConfidenceLow  = 0.6
	ConfidenceHigh = 0.98
)

// DeriveSeed joins tag and args with "|" (each arg in its fmt.Sprint form)
// and returns the first 64 bits of the SHA-256 digest, big endian.
func DeriveSeed(tag string, args ...any) uint64 {
	parts := make([]string, 0, len(args)+1)
	parts = append(parts, tag)
	for _, a := range args {
		parts = append(parts, fmt.Sprint(a))
	}
	sum := sha256.Sum256([]byte(strings.Join(parts, "|")))
	return binary.BigEndian.Uint64(sum[:8])
}

// Confidence maps seed into [ConfidenceLow, ConfidenceHigh].
func Confidence(seed uint64) float64 {
	return ConfidenceBetween(seed, ConfidenceLow, ConfidenceHigh)
}

func ConfidenceBetween(seed uint64, low, high float64) float64 {
	r := float64(seed%10000) / 10000.0
	// explicit conversion keeps the compiler from fusing into an FMA,
	// which would change the last bit on some architectures
	return Round3(low + float64((high-low)*r))
}

// Round3 rounds x to 3 decimal places using the shortest correctly rounded
// decimal form of the binary value (ties to even).
func Round3(x float64) float64 {
	v, err := strconv.ParseFloat(strconv.FormatFloat(x, 'f', 3, 64), 64)
	if err != nil {
		return x
	}
	return v
}
