package id

import (
	"crypto/rand"
	"encoding/hex"
)

// Generator creates opaque identifiers for timer runs. Persisted session
// ids are assigned by the store, not here.
type Generator interface {
	New() string
}

type RandomHex struct{}

func (RandomHex) New() string {
	buf := make([]byte, 16)
	_, _ = rand.Read(buf)
	return hex.EncodeToString(buf)
}
