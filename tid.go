package tid

import (
	"fmt"
	"time"
)

// Tid is a packed identifier as described in the package documentation. It is
// an immutable value compared with ==; the zero value is not a valid id (it
// would decode as a V0 id without the forced top bit, but FromInt accepts any
// non negative integer whose version and timestamp check out).
type Tid int64

// timeNow is swapped out by tests that need a fixed clock.
var timeNow = time.Now

// FromInt validates n and returns it as a Tid.
//
// n must be non negative, its low 4 bits must hold a defined version code,
// and for time-bearing versions the earliest time implied by the high bits
// must not be in the future.
func FromInt(n int64) (Tid, error) {
	if n < 0 {
		return 0, fmt.Errorf("%d: %w", n, ErrNegative)
	}
	t := Tid(n)
	v := t.Version()
	if !v.valid() {
		return 0, fmt.Errorf("version %d: %w", v, ErrVersion)
	}
	if v != V0 {
		if earliest := t.earliestUnix(); earliest > timeNow().Unix() {
			return 0, fmt.Errorf("%d: %w", earliest, ErrFuture)
		}
	}
	return t, nil
}

// Int returns the raw integer value.
func (t Tid) Int() int64 { return int64(t) }

// Version returns the version tag in the low 4 bits. The result is only
// meaningful for a Tid obtained from one of the package constructors.
func (t Tid) Version() Version { return Version(t & versionMask) }

// EntropyBits returns the width of the random field for t's version, not the
// decoded value. It is 0 for an undefined version code.
func (t Tid) EntropyBits() int {
	v := t.Version()
	if !v.valid() {
		return 0
	}
	return int(layouts[v].entropy)
}

// RandomBits returns the decoded entropy value. For V0 that is every bit
// above the version tag, forced top bit included.
func (t Tid) RandomBits() uint64 {
	v := t.Version()
	if !v.valid() {
		return 0
	}
	if v == V0 {
		return uint64(t) >> versionBits
	}
	return uint64(t) >> versionBits & (1<<layouts[v].entropy - 1)
}

// Earliest returns the lower bound of the window t could have been created
// in. The dropped low order timestamp bits are restored as zeros, so this is
// the floor of the true creation time. V0 ids carry no time and report the
// unix epoch.
func (t Tid) Earliest() time.Time {
	v := t.Version()
	if !v.valid() || v == V0 {
		return time.Unix(0, 0).UTC()
	}
	return time.Unix(t.earliestUnix(), 0).UTC()
}

// Latest returns the upper bound of the creation window: Earliest with the
// version's entropy mask ORed into the seconds value. The window is as wide
// as the precision that was traded away for entropy.
func (t Tid) Latest() time.Time {
	v := t.Version()
	if !v.valid() || v == V0 {
		return time.Unix(0, 0).UTC()
	}
	return time.Unix(t.earliestUnix()|(1<<layouts[v].entropy-1), 0).UTC()
}

// earliestUnix recovers the truncated timestamp field. At most 45 bits wide
// for every defined version, so it never overflows or goes negative.
func (t Tid) earliestUnix() int64 {
	lay := layouts[t.Version()]
	return int64(uint64(t) >> versionBits >> lay.entropy << lay.drop)
}
