package tid

import "errors"

// Version selects the bit layout of a Tid: how the 59 bits above the tag are
// split between a truncated timestamp and random entropy. Codes outside the
// defined range are invalid everywhere in this package.
type Version uint8

const (
	// V0 carries no timestamp at all: 58 random bits plus the forced top bit.
	V0 Version = iota
	// V1 keeps full 1 second timestamp resolution.
	V1
	// V2 drops 8 timestamp bits (~4.25 minute windows).
	V2
	// V3 drops 16 timestamp bits (~18 hour windows).
	V3
	// V4 drops 18 timestamp bits (~3 day windows).
	V4
	// V5 drops 20 timestamp bits (~12 day windows).
	V5

	numVersions
)

const (
	versionBits = 4
	versionMask = 1<<versionBits - 1

	// randomValueBits is the entropy width of the pure random version.
	randomValueBits = 58

	// topBit is the highest usable bit of the 63 bit value. V0 ids always set
	// it, pinning their string form to a stable length.
	topBit = 62
)

type layout struct {
	drop    uint // low order timestamp bits truncated before packing
	entropy uint // width of the random field
}

// layouts is fixed at compile time. There is no runtime registration of
// versions; changing a row is a wire format break for every existing id.
var layouts = [numVersions]layout{
	V0: {drop: 0, entropy: randomValueBits},
	V1: {drop: 0, entropy: 14},
	V2: {drop: 8, entropy: 22},
	V3: {drop: 16, entropy: 30},
	V4: {drop: 18, entropy: 32},
	V5: {drop: 20, entropy: 34},
}

func (v Version) valid() bool { return v < numVersions }

var (
	ErrVersion  = errors.New("tid: unsupported version")
	ErrNegative = errors.New("tid: value is negative")
	ErrFuture   = errors.New("tid: implied timestamp is in the future")
	ErrSyntax   = errors.New("tid: not a base36 string")
	ErrRange    = errors.New("tid: value overflows 63 bits")
)
