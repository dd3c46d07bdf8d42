package csvdata

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRead(t *testing.T) {
	input := "date,score\n2024-01-02,50\n2024-01-01,40\n2024-01-03,90.5\n"

	s, err := Read(strings.NewReader(input), nil)

	require.NoError(t, err)
	require.Len(t, s, 3)
	// Output is sorted ascending regardless of input order.
	assert.Equal(t, "2024-01-01", s[0].Date.String())
	assert.Equal(t, 40.0, s[0].Score)
	assert.Equal(t, "2024-01-03", s[2].Date.String())
	assert.Equal(t, 90.5, s[2].Score)
}

func TestRead_DuplicateDatesLastWriteWins(t *testing.T) {
	input := "date,score\n2024-01-01,40\n2024-01-01,60\n2024-01-02,50\n"

	s, err := Read(strings.NewReader(input), nil)

	require.NoError(t, err)
	require.Len(t, s, 2)
	assert.Equal(t, 60.0, s[0].Score)
}

func TestRead_CustomColumns(t *testing.T) {
	input := "day;mood\n2024-01-01;75\n"
	opts := &Options{DateColumn: "day", ScoreColumn: "mood", Delimiter: ';', HasHeader: true}

	s, err := Read(strings.NewReader(input), opts)

	require.NoError(t, err)
	require.Len(t, s, 1)
	assert.Equal(t, 75.0, s[0].Score)
}

func TestRead_Headerless(t *testing.T) {
	input := "2024-01-01,10\n2024-01-02,20\n"
	opts := DefaultOptions()
	opts.HasHeader = false

	s, err := Read(strings.NewReader(input), opts)

	require.NoError(t, err)
	assert.Len(t, s, 2)
}

func TestRead_Invalid(t *testing.T) {
	cases := []struct {
		name  string
		input string
	}{
		{"missing score column", "date,value\n2024-01-01,1\n"},
		{"bad date", "date,score\nJan 1,10\n"},
		{"bad score", "date,score\n2024-01-01,high\n"},
		{"score above range", "date,score\n2024-01-01,101\n"},
		{"score below range", "date,score\n2024-01-01,-0.5\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Read(strings.NewReader(tc.input), nil)
			assert.Error(t, err)
		})
	}
}

func TestRead_Empty(t *testing.T) {
	s, err := Read(strings.NewReader(""), nil)
	require.NoError(t, err)
	assert.Empty(t, s)
}
