package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeDate(t *testing.T) {
	jakarta := time.FixedZone("WIB", 7*60*60)

	tests := []struct {
		name string
		in   Timestamp
		want string
	}{
		{
			name: "native utc time",
			in:   TimeOf(time.Date(2021, 8, 8, 7, 19, 9, 775_000_000, time.UTC)),
			want: "2021-08-08T07:19:09.775Z",
		},
		{
			name: "native time with offset",
			in:   TimeOf(time.Date(2021, 8, 8, 14, 19, 9, 0, jakarta)),
			want: "2021-08-08T07:19:09.000Z",
		},
		{
			name: "sub millisecond precision truncated",
			in:   TimeOf(time.Date(2021, 8, 8, 7, 19, 9, 775_999_999, time.UTC)),
			want: "2021-08-08T07:19:09.775Z",
		},
		{name: "iso string", in: StringOf("2021-08-08T07:19:09.775Z"), want: "2021-08-08T07:19:09.775Z"},
		{name: "rfc3339 with offset", in: StringOf("2021-08-08T14:19:09+07:00"), want: "2021-08-08T07:19:09.000Z"},
		{name: "sql text", in: StringOf("2021-08-08 07:19:09.5+00:00"), want: "2021-08-08T07:19:09.500Z"},
		{name: "naive string treated as utc", in: StringOf("2021-08-08T07:19:09"), want: "2021-08-08T07:19:09.000Z"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := NormalizeDate(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestNormalizeDate_Idempotent(t *testing.T) {
	inputs := []Timestamp{
		TimeOf(time.Date(2023, 1, 2, 3, 4, 5, 123_456_789, time.FixedZone("X", -5*60*60))),
		StringOf("2023-01-02 03:04:05+02:00"),
		StringOf("2023-01-02"),
	}

	for _, in := range inputs {
		once, err := NormalizeDate(in)
		require.NoError(t, err)
		twice, err := NormalizeDate(StringOf(once))
		require.NoError(t, err)
		assert.Equal(t, once, twice)
	}
}

func TestNormalizeDate_Invalid(t *testing.T) {
	_, err := NormalizeDate(StringOf("kemarin sore"))
	assert.Error(t, err)
}

func TestTimestamp_Scan(t *testing.T) {
	ref := time.Date(2022, 5, 6, 7, 8, 9, 0, time.UTC)

	var ts Timestamp
	require.NoError(t, ts.Scan(ref))
	got, err := ts.Time()
	require.NoError(t, err)
	assert.True(t, got.Equal(ref))

	require.NoError(t, ts.Scan([]byte("2022-05-06T07:08:09Z")))
	got, err = ts.Time()
	require.NoError(t, err)
	assert.True(t, got.Equal(ref))

	assert.Error(t, ts.Scan(42))
}

func TestNormalizeDate_MissingDate(t *testing.T) {
	var scanned Timestamp
	require.NoError(t, scanned.Scan(nil))

	for name, in := range map[string]Timestamp{
		"null column":  scanned,
		"zero native":  TimeOf(time.Time{}),
		"empty string": StringOf(""),
	} {
		t.Run(name, func(t *testing.T) {
			got, err := NormalizeDate(in)
			assert.ErrorIs(t, err, ErrMissingDate)
			assert.Empty(t, got)
		})
	}
}
