package tid

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
)

// New returns a fresh pure random (V0) identifier: 58 random bits above the
// version tag, with the top bit forced on.
func New() Tid {
	u := randUint(randomValueBits)<<versionBits | uint64(V0)
	return Tid(u | 1<<topBit)
}

// NewVersion returns a fresh identifier of the requested version. For
// time-bearing versions the current unix time, truncated by the version's
// dropped bits, is packed above the random field:
//
//	((now >> drop) << entropy | random) << 4 | version
//
// Errors with ErrVersion for an undefined code.
func NewVersion(v Version) (Tid, error) {
	if !v.valid() {
		return 0, fmt.Errorf("version %d: %w", v, ErrVersion)
	}
	if v == V0 {
		return New(), nil
	}
	lay := layouts[v]
	ts := uint64(timeNow().Unix()) >> lay.drop
	u := (ts<<lay.entropy|randUint(lay.entropy))<<versionBits | uint64(v)
	return Tid(u), nil
}

// randUint returns a uniform random value in [0, 2^bits). crypto/rand is
// documented never to fail.
func randUint(bits uint) uint64 {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return binary.BigEndian.Uint64(b[:]) & (1<<bits - 1)
}
