package tid

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"

	"github.com/google/uuid"
)

// FromSeed derives a V0 identifier from seed. The same seed always yields
// the same Tid. Anyone who can guess the seed can reproduce the id; use
// FromSeedHMAC when that matters.
func FromSeed(seed []byte) Tid {
	sum := sha256.Sum256(seed)
	return fromDigest(sum[:])
}

// FromSeedHMAC derives a V0 identifier from seed keyed with secret. The same
// (secret, seed) pair always yields the same Tid, and the id cannot be
// reproduced without the secret.
func FromSeedHMAC(secret, seed []byte) Tid {
	mac := hmac.New(sha256.New, secret)
	mac.Write(seed)
	return fromDigest(mac.Sum(nil))
}

// FromUUID derives the stable identifier for an entity already keyed by a
// UUID. Equivalent to FromSeed over the UUID's 16 bytes.
func FromUUID(u uuid.UUID) Tid {
	return FromSeed(u[:])
}

// fromDigest packs the first 64 bits of a 256 bit digest the same way New
// packs fresh entropy: truncate to the 58 usable bits, tag as V0, force the
// top bit.
func fromDigest(sum []byte) Tid {
	u := binary.BigEndian.Uint64(sum[:8]) >> (64 - randomValueBits)
	u = u<<versionBits | uint64(V0)
	return Tid(u | 1<<topBit)
}
