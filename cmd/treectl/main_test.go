package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/g-m-twostay/bintree/Trees"
)

var sampleValues = []string{"50", "30", "70", "20", "40", "60", "80"}

// run executes treectl with args in an empty directory so no config file is
// picked up.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Chdir(t.TempDir())
	t.Setenv("TREECTL_OUTPUT_COLOR", "false")

	var out, errOut bytes.Buffer

	rootCmd := newRootCommand(&app{})
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()

	return out.String(), errOut.String(), err
}

func lines(s string) []string {
	return strings.Split(strings.TrimSpace(s), "\n")
}

func TestInspect(t *testing.T) {
	out, _, err := run(t, append([]string{"inspect"}, sampleValues...)...)
	require.NoError(t, err)

	assert.Contains(t, out, "20 30 40 50 60 70 80")
	assert.Contains(t, out, "50 30 20 40 70 60 80")
	assert.Contains(t, out, "20 40 30 60 80 70 50")
	assert.Contains(t, out, "50 30 70 20 40 60 80")
	assert.Contains(t, out, "50 70 30 20 40 60 80")
	assert.Contains(t, out, "350")
}

func TestInspect_CompleteBuild(t *testing.T) {
	t.Setenv("TREECTL_TREE_BUILD", "complete")

	out, _, err := run(t, "inspect", "1", "2", "3", "4", "5")
	require.NoError(t, err)

	assert.Contains(t, out, "4 2 5 1 3")
	assert.Contains(t, out, "false")
}

func TestInspect_NoValues(t *testing.T) {
	_, _, err := run(t, "inspect")
	assert.ErrorIs(t, err, errNoValues)
}

func TestInspect_BadValue(t *testing.T) {
	_, _, err := run(t, "inspect", "1", "x")
	assert.ErrorContains(t, err, `"x"`)
}

func TestShow(t *testing.T) {
	out, _, err := run(t, "show", "50", "30", "70", "20")
	require.NoError(t, err)

	assert.Contains(t, out, "50")
	assert.Contains(t, out, "L: 30")
	assert.Contains(t, out, "L: 20")
	assert.Contains(t, out, "R: -")
	assert.Contains(t, out, "R: 70")
}

func TestShow_Mirror(t *testing.T) {
	out, _, err := run(t, "show", "--mirror", "50", "30", "70")
	require.NoError(t, err)

	assert.Contains(t, out, "L: 70")
	assert.Contains(t, out, "R: 30")
}

func TestAssemble(t *testing.T) {
	out, _, err := run(t, "assemble", "1", "2:1:L", "3:1:r", "4:3:left")
	require.NoError(t, err)

	assert.Contains(t, out, "L: 2")
	assert.Contains(t, out, "R: 3")
	assert.Contains(t, out, "L: 4")
}

func TestAssemble_Errors(t *testing.T) {
	_, _, err := run(t, "assemble", "1", "2:9:L")
	var nf *Trees.NotFoundError[int]
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, 9, nf.Value)

	_, _, err = run(t, "assemble", "1", "2:1:L", "3:1:L")
	var occ *Trees.OccupiedSlotError[int]
	require.ErrorAs(t, err, &occ)
	assert.Equal(t, 2, occ.Occupant)

	_, _, err = run(t, "assemble", "1", "2:1:up")
	require.Error(t, err)

	_, _, err = run(t, "assemble", "1", "2-1-L")
	assert.ErrorContains(t, err, "VALUE:PARENT:SIDE")
}

func TestRange(t *testing.T) {
	out, _, err := run(t, append([]string{"range", "35", "65"}, sampleValues...)...)
	require.NoError(t, err)
	assert.Equal(t, "40 50 60", strings.TrimSpace(out))

	out, _, err = run(t, append([]string{"range", "90", "100"}, sampleValues...)...)
	require.NoError(t, err)
	assert.Empty(t, strings.TrimSpace(out))
}

func TestRange_Prune(t *testing.T) {
	out, _, err := run(t, append([]string{"range", "--prune", "35", "65"}, sampleValues...)...)
	require.NoError(t, err)

	assert.Contains(t, out, "50")
	assert.Contains(t, out, "L: 40")
	assert.Contains(t, out, "R: 60")
	assert.NotContains(t, out, "30")
	assert.NotContains(t, out, "70")

	out, _, err = run(t, append([]string{"range", "--prune", "90", "100"}, sampleValues...)...)
	require.NoError(t, err)
	assert.Contains(t, out, "(empty)")
}

func TestRank(t *testing.T) {
	out, _, err := run(t, append([]string{"rank", "3"}, sampleValues...)...)
	require.NoError(t, err)
	assert.Equal(t, "60", strings.TrimSpace(out))

	_, _, err = run(t, append([]string{"rank", "8"}, sampleValues...)...)
	var rr *Trees.RankOutOfRangeError
	require.ErrorAs(t, err, &rr)
	assert.Equal(t, 8, rr.Rank)
	assert.EqualValues(t, 7, rr.Size)
}

func TestRemap(t *testing.T) {
	out, _, err := run(t, "remap", "50", "30", "70", "45", "55")
	require.NoError(t, err)

	got := lines(out)
	require.Len(t, got, 2)
	assert.Equal(t, "35 65 50 50", got[0])
	assert.Equal(t, "bst: false", got[1])

	out, _, err = run(t, "remap", "50", "40", "60")
	require.NoError(t, err)
	assert.Equal(t, []string{"45 55", "bst: true"}, lines(out))
}

func TestRemap_DeltaSources(t *testing.T) {
	t.Setenv("TREECTL_TREE_REMAP_DELTA", "1")

	out, _, err := run(t, "remap", "10", "5", "15")
	require.NoError(t, err)
	assert.Equal(t, "6 14", lines(out)[0])

	out, _, err = run(t, "remap", "--delta", "3", "10", "5", "15")
	require.NoError(t, err)
	assert.Equal(t, "8 12", lines(out)[0])
}

func TestConvert(t *testing.T) {
	out, _, err := run(t, "convert", "1", "2", "3", "4", "5", "6", "7")
	require.NoError(t, err)

	assert.Contains(t, out, "1 2 3 4 5 6 7")
	assert.Contains(t, out, "4 2 6 1 3 5 7")
	assert.Contains(t, out, "28 11 16 4 5 6 7")
	assert.Regexp(t, `(?i)same information\s*.\s*true`, out)
}

func TestList(t *testing.T) {
	out, _, err := run(t, append([]string{"list"}, sampleValues...)...)
	require.NoError(t, err)

	assert.Contains(t, out, "20 30 40 50 60 70 80")
	assert.Contains(t, out, "80 70 60 50 40 30 20")
}

func TestAncestors(t *testing.T) {
	out, _, err := run(t, append([]string{"ancestors", "60"}, sampleValues...)...)
	require.NoError(t, err)
	assert.Equal(t, "70 50", strings.TrimSpace(out))

	_, _, err = run(t, append([]string{"ancestors", "65"}, sampleValues...)...)
	var nf *Trees.NotFoundError[int]
	assert.ErrorAs(t, err, &nf)
}

func TestLevel(t *testing.T) {
	out, _, err := run(t, append([]string{"level", "40"}, sampleValues...)...)
	require.NoError(t, err)
	assert.Equal(t, "2", strings.TrimSpace(out))

	_, _, err = run(t, append([]string{"level", "41"}, sampleValues...)...)
	var nf *Trees.NotFoundError[int]
	assert.ErrorAs(t, err, &nf)
}

func TestFreq(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte("a bb cc ddd\nee f"), 0o600))

	out, logs, err := run(t, "freq", path)
	require.NoError(t, err)

	assert.Regexp(t, `1\s*.\s*2`, out)
	assert.Regexp(t, `2\s*.\s*3`, out)
	assert.Regexp(t, `3\s*.\s*1`, out)
	assert.Contains(t, strings.ToLower(out), "total")
	assert.Contains(t, logs, "counted words")

	_, _, err = run(t, "freq", filepath.Join(t.TempDir(), "missing.txt"))
	assert.ErrorContains(t, err, "open word file")
}

func TestVerboseLogging(t *testing.T) {
	_, logs, err := run(t, "-v", "assemble", "1", "2:1:L")
	require.NoError(t, err)
	assert.Contains(t, logs, "placed node")

	_, logs, err = run(t, "assemble", "1", "2:1:L")
	require.NoError(t, err)
	assert.NotContains(t, logs, "placed node")
}

func TestJSONLogging(t *testing.T) {
	t.Setenv("TREECTL_LOGGING_FORMAT", "json")

	_, logs, err := run(t, "-v", "inspect", "1")
	require.NoError(t, err)
	assert.Contains(t, logs, `"msg":"configuration loaded"`)
}

func TestInvalidConfig(t *testing.T) {
	t.Setenv("TREECTL_TREE_BUILD", "random")

	_, _, err := run(t, "inspect", "1")
	assert.Error(t, err)
}

func TestVersion(t *testing.T) {
	out, _, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "treectl dev", strings.TrimSpace(out))
}
