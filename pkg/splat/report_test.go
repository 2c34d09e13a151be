package splat

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cognicore/splat/pkg/splat/config"
)

func TestSplatReport(t *testing.T) {
	b := newSample(t, Options{})
	out := b.Splat()

	assert.True(t, strings.HasPrefix(out, "===== "+config.DefaultVersion+" ["+b.ID()+"]\n"))
	for _, want := range []string{
		"===== Bubble:\nThe cat sat. The dog ran! um I think the the cat {sl} left\n",
		"[0] The cat sat.\n[1] The dog ran!\n[2] um I think the the cat {sl} left\n",
		"Sentence Count: 3\n",
		"Word Count: 14\n",
		"Unique Word Count: 9\n",
		"===== Type-Token Ratio:\n69.23\n",
	} {
		assert.Contains(t, out, want)
	}
}

func TestWriteDPU(t *testing.T) {
	b := newSample(t, Options{})

	var buf bytes.Buffer
	require.NoError(t, b.WriteDPU(&buf))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "UM     UH     AH     ER     HM     Pauses Reps   Breaks Words  Text"))
	assert.True(t, strings.HasPrefix(lines[2], "1      0      0      0      0      1      1      0      7      um I think"))
}

func TestWriteDisfluencies(t *testing.T) {
	b := newSample(t, Options{})

	var buf bytes.Buffer
	require.NoError(t, b.WriteDisfluencies(&buf))
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "Nasal\tUM\tHM\tNon-Nasal\tUH\tAH\tER\tSilent Pauses\tRepetitions\tBreaks", lines[0])
	assert.Equal(t, "1\t1\t0\t0\t\t0\t0\t0\t1\t\t1\t\t0", lines[1])
}

func TestWritePOSCounts(t *testing.T) {
	b := newSample(t, Options{})

	var buf bytes.Buffer
	require.NoError(t, b.WritePOSCounts(&buf))
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.NotEmpty(t, lines)
	assert.Equal(t, "Tag       Count  ", lines[0])
	assert.Equal(t, "DT        4      ", lines[1])
}
