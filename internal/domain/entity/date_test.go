package entity

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2026-01-15")
	require.NoError(t, err)
	require.Equal(t, "2026-01-15", d.String())

	// Full ISO timestamps are accepted; only the date part is kept.
	d, err = ParseDate("2026-01-15T10:30:00Z")
	require.NoError(t, err)
	require.Equal(t, "2026-01-15", d.String())

	_, err = ParseDate("15/01/2026")
	require.Error(t, err)
}

func TestDateJSON(t *testing.T) {
	d, err := ParseDate("2026-01-15")
	require.NoError(t, err)

	data, err := json.Marshal(d)
	require.NoError(t, err)
	require.Equal(t, `"2026-01-15"`, string(data))

	// The zero date serializes as null and null deserializes back to it.
	data, err = json.Marshal(Date{})
	require.NoError(t, err)
	require.Equal(t, "null", string(data))

	var parsed Date
	require.NoError(t, json.Unmarshal([]byte("null"), &parsed))
	require.True(t, parsed.IsZero())

	require.NoError(t, json.Unmarshal([]byte(`"2026-02-01"`), &parsed))
	require.Equal(t, "2026-02-01", parsed.String())
}

func TestDateScan(t *testing.T) {
	var d Date
	require.NoError(t, d.Scan("2026-01-15"))
	require.Equal(t, "2026-01-15", d.String())

	require.NoError(t, d.Scan([]byte("2026-01-16")))
	require.Equal(t, "2026-01-16", d.String())

	require.NoError(t, d.Scan(time.Date(2026, 1, 17, 23, 59, 0, 0, time.UTC)))
	require.Equal(t, "2026-01-17", d.String())

	require.NoError(t, d.Scan(nil))
	require.True(t, d.IsZero())

	require.Error(t, d.Scan(42))
}

func TestDateValueOrdering(t *testing.T) {
	early, err := ParseDate("2026-01-09")
	require.NoError(t, err)
	late, err := ParseDate("2026-01-10")
	require.NoError(t, err)

	ev, err := early.Value()
	require.NoError(t, err)
	lv, err := late.Value()
	require.NoError(t, err)

	// Stored strings must compare the same way the dates do.
	require.Less(t, ev.(string), lv.(string))
}
