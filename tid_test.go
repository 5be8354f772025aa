package tid

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// fixedClock pins timeNow for the duration of a test.
func fixedClock(t *testing.T, sec int64) {
	t.Helper()
	restore := timeNow
	timeNow = func() time.Time { return time.Unix(sec, 0) }
	t.Cleanup(func() { timeNow = restore })
}

func TestNewVersionFields(t *testing.T) {
	wantEntropy := []int{58, 14, 22, 30, 32, 34}

	for v := V0; v < numVersions; v++ {
		id, err := NewVersion(v)
		require.NoError(t, err)
		require.Equal(t, v, id.Version())
		require.Equal(t, wantEntropy[v], id.EntropyBits())
		require.GreaterOrEqual(t, id.Int(), int64(0))
		require.Less(t, id.RandomBits(), uint64(1)<<(id.EntropyBits()+1))

		// everything a generator emits passes validation
		back, err := FromInt(id.Int())
		require.NoError(t, err)
		require.Equal(t, id, back)
	}
}

func TestNewVersionUnknown(t *testing.T) {
	for _, v := range []Version{numVersions, 9, 15} {
		_, err := NewVersion(v)
		require.ErrorIs(t, err, ErrVersion)
	}
}

func TestNewForcesTopBit(t *testing.T) {
	for i := 0; i < 64; i++ {
		id := New()
		require.Equal(t, V0, id.Version())
		require.NotZero(t, id.Int()&(1<<topBit))
		// no time window for pure random ids
		require.Equal(t, int64(0), id.Earliest().Unix())
		require.Equal(t, int64(0), id.Latest().Unix())
	}
}

func TestFromIntRejects(t *testing.T) {
	// version 1, timestamp well past the present
	future := ((time.Now().Unix()+100000)<<14 | 5) << 4 | 1

	tests := []struct {
		name string
		in   int64
		want error
	}{
		{name: "negative", in: -1, want: ErrNegative},
		{name: "most negative", in: -1 << 63, want: ErrNegative},
		{name: "undefined version 15", in: 15, want: ErrVersion},
		{name: "undefined version 6", in: 6, want: ErrVersion},
		{name: "future timestamp", in: future, want: ErrFuture},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := FromInt(tt.in); !errors.Is(err, tt.want) {
				t.Errorf("FromInt(%d) error = %v, want %v", tt.in, err, tt.want)
			}
		})
	}
}

func TestTimeWindow(t *testing.T) {
	// 1700000000 is divisible by 2^8, so the V2 floor is exact.
	fixedClock(t, 1700000000)

	id, err := NewVersion(V2)
	require.NoError(t, err)
	require.Equal(t, int64(1700000000), id.Earliest().Unix())
	require.Equal(t, int64(1700000000)|(1<<22-1), id.Latest().Unix())
	require.Equal(t, int64(1702887423), id.Latest().Unix())

	// V1 keeps full second resolution on the floor
	id, err = NewVersion(V1)
	require.NoError(t, err)
	require.Equal(t, int64(1700000000), id.Earliest().Unix())
}

func TestEarliestMonotonicFloor(t *testing.T) {
	// two V3 ids three windows apart never invert their time floors
	fixedClock(t, 1700000000)
	a, err := NewVersion(V3)
	require.NoError(t, err)

	fixedClock(t, 1700000000+3*(1<<16))
	b, err := NewVersion(V3)
	require.NoError(t, err)

	require.Less(t, a.Earliest().Unix(), b.Earliest().Unix())
}

func TestJSONInterchange(t *testing.T) {
	type doc struct {
		ID Tid `json:"id"`
	}

	id := New()
	data, err := json.Marshal(doc{ID: id})
	require.NoError(t, err)
	require.Equal(t, `{"id":"`+id.String()+`"}`, string(data))

	var got doc
	require.NoError(t, json.Unmarshal(data, &got))
	require.Equal(t, id, got.ID)

	var bad doc
	require.Error(t, json.Unmarshal([]byte(`{"id":"not valid!"}`), &bad))
}

func BenchmarkNew(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = New()
	}
}

func BenchmarkNewVersion(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := NewVersion(V3); err != nil {
			b.Fatal(err)
		}
	}
}
