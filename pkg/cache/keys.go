package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// Keyer builds cache keys for puzzle answers.
type Keyer interface {
	AnswerKey(day, part int, inputHash string, opts AnswerKeyOpts) string
}

// AnswerKeyOpts holds solver settings that change the answer for a given
// input, such as the diagram layout of day 5.
type AnswerKeyOpts struct {
	Variant string
}

// Hash returns the hex SHA-256 of data. Puzzle inputs are keyed by their hash
// so keys stay short however large the input is.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// DefaultKeyer generates keys of the form "answer:dayN:partM:<input hash>",
// followed by ":<variant>" when a variant is set.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the default keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// AnswerKey returns the key for one part of one day over one input.
func (DefaultKeyer) AnswerKey(day, part int, inputHash string, opts AnswerKeyOpts) string {
	key := fmt.Sprintf("answer:day%d:part%d:%s", day, part, inputHash)
	if opts.Variant != "" {
		key += ":" + opts.Variant
	}
	return key
}

// ScopedKeyer prefixes every key, e.g. with the build version so that a new
// binary does not reuse answers computed by an older one.
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// If inner is nil, a DefaultKeyer is used.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{inner: inner, prefix: prefix}
}

// AnswerKey returns the prefixed key.
func (k *ScopedKeyer) AnswerKey(day, part int, inputHash string, opts AnswerKeyOpts) string {
	return k.prefix + k.inner.AnswerKey(day, part, inputHash, opts)
}
