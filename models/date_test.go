package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-01-15")
	require.NoError(t, err)
	assert.Equal(t, NewDate(2024, time.January, 15), d)

	for _, bad := range []string{"2024-02-30", "2024-13-01", "15/01/2024", "2024-1-5", ""} {
		_, err := ParseDate(bad)
		assert.Error(t, err, bad)
	}
}

func TestDateJSON(t *testing.T) {
	d := NewDate(2024, time.June, 3)

	out, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2024-06-03"`, string(out))

	var back Date
	require.NoError(t, json.Unmarshal(out, &back))
	assert.Equal(t, d, back)

	assert.Error(t, json.Unmarshal([]byte(`"2024-06-31"`), &back))
}

func TestDateScan(t *testing.T) {
	want := NewDate(2024, time.June, 3)

	var d Date
	require.NoError(t, d.Scan(time.Date(2024, 6, 3, 14, 30, 0, 0, time.UTC)))
	assert.Equal(t, want, d)

	require.NoError(t, d.Scan("2024-06-03 00:00:00"))
	assert.Equal(t, want, d)

	require.NoError(t, d.Scan([]byte("2024-06-03")))
	assert.Equal(t, want, d)

	assert.Error(t, d.Scan(42))
}
