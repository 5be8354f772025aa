package tid

/*

# Tid: compact, sortable, human-readable identifiers

A Tid packs a 4 bit version tag, optional truncated unix timestamp and random
entropy into a single non negative integer of at most 63 bits, so the value is
always safe in a signed 64 bit column or variable. The string form is the
base-36 encoding of that integer broken into dash separated groups:

	28740015009630 <-> "a6qz-aw3fi"

## Bit layout

Least significant bits first:

	+---------+-----------------+----------------------------+
	| version |     entropy     |  timestamp >> droppedBits  |
	| 4 bits  | entropy bits    |  remaining high bits       |
	+---------+-----------------+----------------------------+

The version tag selects how the remaining bits are split between entropy and
timestamp. Dropping low order timestamp bits trades time precision for extra
entropy: a reader of the id can only recover the window the id was created in,
not the instant.

	version  time resolution   entropy bits
	0        none (pure random)   58
	1        1 second             14
	2        ~4.25 minutes        22
	3        ~18 hours            30
	4        ~3 days              32
	5        ~12 days             34

Version 0 ids additionally force bit 62 on, which pins their magnitude to the
top of the 63 bit range and keeps their string length stable.

## Ordering

Within a single time-bearing version, integer order is creation-time order at
the version's resolution. Entropy breaks ties arbitrarily inside a window.

## What this package does not do

There is no uniqueness guarantee, no collision detection and no coordination
between generators. A Tid is a plain immutable value; every function here is a
bounded synchronous computation over the constant version table, the system
clock and crypto/rand, and is safe for concurrent use without locking.

*/
