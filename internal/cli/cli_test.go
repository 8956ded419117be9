package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"

	sampstat "github.com/jgbaldwinbrown/sampstat/pkg"
)

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestDescribe(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.txt", "1.0\n5.5\n7.7\n8.9\n")
	b := writeFile(t, dir, "b.tsv", "id\tv\nx\t1\ny\t2\nz\t3\n")

	out, err := run(t, "describe", a)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	require.True(t, strings.HasPrefix(lines[1], a+"\tsample\t5.775\t"), lines[1])

	out, err = run(t, "describe", "--header", "-c", "1", b)
	require.NoError(t, err)
	require.Contains(t, out, b+"\tsample\t2\t1\t3\t")

	out, err = run(t, "describe", "--population", "--json", a)
	require.NoError(t, err)
	var got sampstat.SummaryJson
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Equal(t, "population", got.Kind)
	require.Equal(t, 4, got.N)
	require.InDelta(t, 3.0144443932506038, *got.Deviation, 1e-12)
}

func TestDescribeList(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.txt", "1\n2\n3\n")
	b := writeFile(t, dir, "b.txt", "4\n4\n")
	list := writeFile(t, dir, "list.txt", a+"\n"+b+"\n")

	out, err := run(t, "describe", "-l", list)
	require.NoError(t, err)
	require.Contains(t, out, a+"\tsample\t2\t1\t3\t")
	require.Contains(t, out, b+"\tsample\t4\t0\t2\t0")
}

func TestDescribeStrict(t *testing.T) {
	dir := t.TempDir()
	one := writeFile(t, dir, "one.txt", "3\n")

	out, err := run(t, "describe", one)
	require.NoError(t, err)
	require.Contains(t, out, one+"\tsample\t3\tNaN\t1\tNaN")

	_, err = run(t, "describe", "--strict", one)
	require.True(t, errors.Is(err, sampstat.ErrInvalidInput), "got %v", err)
}

func TestDescribeOutputFile(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.txt", "1\n2\n3\n")
	dest := filepath.Join(dir, "out.tsv")

	out, err := run(t, "describe", "-o", dest, a)
	require.NoError(t, err)
	require.Empty(t, out)

	written, err := os.ReadFile(dest)
	require.NoError(t, err)
	require.Contains(t, string(written), a+"\tsample\t2\t1\t3\t")
}

func TestTTest(t *testing.T) {
	dir := t.TempDir()
	x := writeFile(t, dir, "x.txt", "2\n1\n3\n4\n")
	y := writeFile(t, dir, "y.txt", "6\n5\n7\n9\n")

	out, err := run(t, "ttest", "--welch", "--json", x, y)
	require.NoError(t, err)
	var got sampstat.TTestResultJson
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Equal(t, "welch", got.Formula)
	require.True(t, got.Placeholder)
	require.InDelta(t, -3.9703446152237674, *got.T, 1e-12)
	require.Equal(t, sampstat.PlaceholderPValue, *got.PValue)

	out, err = run(t, "ttest", x, x)
	require.NoError(t, err)
	require.Contains(t, out, x+"\t"+x+"\tlegacy\t0\t0.05\ttrue")

	_, err = run(t, "ttest", x)
	require.Error(t, err)

	one := writeFile(t, dir, "one.txt", "1\n")
	_, err = run(t, "ttest", "--strict", x, one)
	require.True(t, errors.Is(err, sampstat.ErrInvalidInput), "got %v", err)
}

func TestBadDelim(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.txt", "1\n")
	_, err := run(t, "describe", "--delim", "ab", a)
	require.Error(t, err)
}

func TestZscore(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.txt", "1\n2\n3\n")

	out, err := run(t, "zscore", a)
	require.NoError(t, err)
	require.Equal(t, "-1\n0\n1\n", out)

	_, err = run(t, "zscore", "--strict", writeFile(t, dir, "one.txt", "5\n"))
	require.True(t, errors.Is(err, sampstat.ErrInvalidInput), "got %v", err)
}
