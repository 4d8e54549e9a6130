package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2026-08-01")
	require.NoError(t, err)
	assert.Equal(t, "2026-08-01", d.String())

	_, err = ParseDate("08/01/2026")
	assert.Error(t, err)
}

func TestDateJSONRoundTrip(t *testing.T) {
	d := NewDate(2026, time.August, 1)

	b, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2026-08-01"`, string(b))

	var back Date
	require.NoError(t, json.Unmarshal(b, &back))
	assert.Equal(t, d.String(), back.String())
}

func TestDateUnmarshalRejectsBadFormat(t *testing.T) {
	var d Date
	assert.Error(t, json.Unmarshal([]byte(`"01-08-2026"`), &d))
}

func TestDateScan(t *testing.T) {
	var d Date
	require.NoError(t, d.Scan(time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2026-08-01", d.String())

	require.NoError(t, d.Scan("2026-09-15"))
	assert.Equal(t, "2026-09-15", d.String())

	require.NoError(t, d.Scan([]byte("2026-10-01")))
	assert.Equal(t, "2026-10-01", d.String())

	require.NoError(t, d.Scan(nil))
	assert.True(t, d.IsZero())

	assert.Error(t, d.Scan(12345))
}
