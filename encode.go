package tid

// The string form of a Tid is the base-36 (0-9a-z) encoding of its integer
// value, broken into dash separated groups for reading aloud and copying by
// hand. This file owns both directions of that conversion.

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// String returns the formatted base-36 form, for example "a6qz-aw3fi".
func (t Tid) String() string {
	return FormatString(strconv.FormatInt(int64(t), 36))
}

// MarshalText implements encoding.TextMarshaler. In JSON and friends a Tid
// travels as its formatted string, never as a bare number: 63 bit magnitudes
// do not survive every numeric interchange format.
func (t Tid) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler via Parse.
func (t *Tid) UnmarshalText(b []byte) error {
	parsed, err := Parse(string(b))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Parse converts a formatted or unformatted base-36 string back into a
// validated Tid. Dash separators are ignored wherever they appear; any other
// non base-36 character is an ErrSyntax, a magnitude beyond 63 bits is an
// ErrRange, and the decoded integer is then validated exactly as FromInt.
func Parse(s string) (Tid, error) {
	u, err := parseDigits(s)
	if err != nil {
		return 0, err
	}
	return FromInt(int64(u))
}

func parseDigits(s string) (uint64, error) {
	digits := strings.ReplaceAll(s, "-", "")
	if digits == "" {
		return 0, fmt.Errorf("%q: %w", s, ErrSyntax)
	}
	u, err := strconv.ParseUint(digits, 36, 63)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, fmt.Errorf("%q: %w", s, ErrRange)
		}
		return 0, fmt.Errorf("%q: %w", s, ErrSyntax)
	}
	return u, nil
}

// FormatString groups a raw digit string for readability: anything that is
// not alphanumeric is discarded, the rest is split into groups of 4 joined by
// dashes, and a trailing group of 1 or 2 characters is merged into its
// predecessor rather than left dangling.
//
//	"ABCDEFG"  -> "ABCD-EFG"
//	"ABCDEFGH" -> "ABCD-EFGH"
//	"ABCDEFGHI" -> "ABCD-EFGHI"
func FormatString(s string) string {
	digits := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= '0' && c <= '9' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' {
			digits = append(digits, c)
		}
	}

	var groups []string
	for i := 0; i < len(digits); i += 4 {
		groups = append(groups, string(digits[i:min(i+4, len(digits))]))
	}
	if n := len(groups); n > 1 && len(groups[n-1]) < 3 {
		groups[n-2] += groups[n-1]
		groups = groups[:n-1]
	}
	return strings.Join(groups, "-")
}
