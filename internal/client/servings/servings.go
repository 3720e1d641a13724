// Package servings scales ingredient amounts to a requested number of
// servings.
package servings

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/cookbook/internal/client/models"
)

var (
	ErrOutOfRange = errors.New("servings must be between 1 and 20")
	ErrNotNumber  = errors.New("servings must be a whole number")
)

// Adjuster keeps the requested serving count for one recipe. The zero value
// is not usable; construct it with New.
type Adjuster struct {
	original  int
	requested int
}

// New returns an adjuster for a recipe with the given original servings.
// The requested count starts at the original one, or at the default when the
// original is missing or outside the accepted range.
func New(original int) *Adjuster {
	requested := original
	if !inRange(requested) {
		requested = models.DefaultServings
	}
	return &Adjuster{original: original, requested: requested}
}

func (a *Adjuster) Original() int  { return a.original }
func (a *Adjuster) Requested() int { return a.requested }

// Enabled reports whether amounts are scaled at all.
func (a *Adjuster) Enabled() bool { return a.original > 0 }

// Set changes the requested servings. Values outside [1, 20] are rejected
// and the previous value is kept.
func (a *Adjuster) Set(n int) error {
	if !inRange(n) {
		return ErrOutOfRange
	}
	a.requested = n
	return nil
}

// SetText parses user input and applies it with Set.
func (a *Adjuster) SetText(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return ErrNotNumber
	}
	return a.Set(n)
}

// Increment adds one serving unless the upper bound is reached.
func (a *Adjuster) Increment() bool { return a.Set(a.requested+1) == nil }

// Decrement removes one serving unless the lower bound is reached.
func (a *Adjuster) Decrement() bool { return a.Set(a.requested-1) == nil }

// Amount renders an ingredient amount for the requested servings.
func (a *Adjuster) Amount(amount string) string {
	return Scale(amount, a.requested, a.original)
}

// Scale multiplies a numeric amount by requested/original. Non-numeric
// amounts and a non-positive original are returned unchanged.
func Scale(amount string, requested, original int) string {
	if original <= 0 || requested <= 0 {
		return amount
	}
	v, ok := parseAmount(amount)
	if !ok {
		return amount
	}
	return Format(v * float64(requested) / float64(original))
}

// Format prints integral values without decimals and others with one.
func Format(v float64) string {
	if v == math.Trunc(v) {
		return strconv.FormatFloat(v, 'f', 0, 64)
	}
	return strconv.FormatFloat(v, 'f', 1, 64)
}

func parseAmount(s string) (float64, bool) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

func inRange(n int) bool {
	return n >= models.MinServings && n <= models.MaxServings
}
