package cmd

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	bsort "github.com/caoruixin/rex-github-sentinel/src/sort"
)

func run(t *testing.T, stdin io.Reader, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	app := NewApp()
	app.Writer = &stdout
	app.ErrWriter = &stderr
	if stdin == nil {
		stdin = strings.NewReader("")
	}
	app.Reader = stdin
	err := app.Run(append([]string{"bubblesort", "--no-agent"}, args...))
	return stdout.String(), stderr.String(), err
}

func TestSortCommand(t *testing.T) {
	testCases := []struct {
		name     string
		args     []string
		stdin    string
		expected string
	}{
		{
			name:     "arguments",
			args:     []string{"sort", "5", "3", "8", "2", "1", "9", "4", "7", "6"},
			expected: "1 2 3 4 5 6 7 8 9\n",
		},
		{
			name:     "negative arguments after separator",
			args:     []string{"sort", "--", "-3", "5", "-1", "0", "2", "-4"},
			expected: "-4 -3 -1 0 2 5\n",
		},
		{
			name:     "duplicates",
			args:     []string{"sort", "3", "1", "4", "1", "5", "9", "2", "6", "5", "3", "5"},
			expected: "1 1 2 3 3 4 5 5 5 6 9\n",
		},
		{
			name:     "single",
			args:     []string{"sort", "42"},
			expected: "42\n",
		},
		{
			name:     "piped stdin with commas and lines",
			args:     []string{"sort"},
			stdin:    "3,1\n2 0.5\n\n",
			expected: "0.5 1 2 3\n",
		},
		{
			name:     "stdin dash",
			args:     []string{"sort", "--file", "-"},
			stdin:    "2.5e3 -1e-3",
			expected: "-0.001 2500\n",
		},
		{
			name:     "seven digit integers stay plain",
			args:     []string{"sort", "1000000", "2"},
			expected: "2 1000000\n",
		},
		{
			name:     "integers above 2^53 are exact",
			args:     []string{"sort", "9007199254740993", "1", "9007199254740992"},
			expected: "1 9007199254740992 9007199254740993\n",
		},
		{
			name:     "fractions next to large integers",
			args:     []string{"sort", "3000000", "1000000.5", "0.25"},
			expected: "0.25 1000000.5 3000000\n",
		},
		{
			name:     "unicode whitespace separates",
			args:     []string{"sort"},
			stdin:    "3\v2\f1\u00a00",
			expected: "0 1 2 3\n",
		},
		{
			name:     "empty pipe is an empty sequence",
			args:     []string{"sort"},
			stdin:    " \n",
			expected: "\n",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			out, _, err := run(t, strings.NewReader(tc.stdin), tc.args...)
			require.NoError(t, err)
			require.Equal(t, tc.expected, out)
		})
	}
}

func TestSortCommandFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "numbers.txt")
	require.NoError(t, os.WriteFile(path, []byte("9\n-2\n7\n"), 0644))

	out, _, err := run(t, nil, "sort", "-f", path)
	require.NoError(t, err)
	require.Equal(t, "-2 7 9\n", out)

	_, _, err = run(t, nil, "sort", "-f", filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
}

func TestSortCommandStats(t *testing.T) {
	out, errOut, err := run(t, nil, "sort", "--stats", "3", "2", "1")
	require.NoError(t, err)
	require.Equal(t, "1 2 3\n", out)
	require.Equal(t, "passes: 2, comparisons: 3, swaps: 3\n", errOut)
}

func TestSortCommandErrors(t *testing.T) {
	_, _, err := run(t, nil, "sort", "1", "NaN")
	require.ErrorIs(t, err, bsort.ErrNaN)

	_, _, err = run(t, nil, "sort", "1", "two")
	require.ErrorContains(t, err, `"two" is not a number`)

	_, _, err = run(t, nil, "sort", "0.5", "9007199254740993")
	require.ErrorContains(t, err, "without rounding")

	_, _, err = run(t, nil, "sort", "99999999999999999999")
	require.ErrorContains(t, err, "out of range")

	_, _, err = run(t, nil, "sort", "0.5", "99999999999999999999")
	require.ErrorContains(t, err, "out of range")
}

func TestCheckCommand(t *testing.T) {
	out, _, err := run(t, nil, "check", "1", "2", "2", "3")
	require.NoError(t, err)
	require.Equal(t, "4 values in order\n", out)

	_, _, err = run(t, nil, "check", "1", "3", "2")
	require.True(t, errors.Is(err, errUnsorted))
	require.Contains(t, err.Error(), "index 1 (3) > index 2 (2)")

	out, _, err = run(t, strings.NewReader("-1 0 0.5"), "check")
	require.NoError(t, err)
	require.Equal(t, "3 values in order\n", out)
}

func TestHistoryCommandRequiresMeta(t *testing.T) {
	t.Setenv("META_URL", "")
	_, _, err := run(t, nil, "history")
	require.ErrorContains(t, err, "--meta-url is required")
}

func TestParseNumbers(t *testing.T) {
	nums, err := parseNumbers(strings.NewReader("1, 2,3\t4\r\n-5"))
	require.NoError(t, err)
	require.False(t, nums.float)
	require.Equal(t, []int64{1, 2, 3, 4, -5}, nums.ints)

	nums, err = parseNumbers(strings.NewReader("1 2.5\n9007199254740992"))
	require.NoError(t, err)
	require.True(t, nums.float)
	require.Equal(t, []float64{1, 2.5, 9007199254740992}, nums.floats)

	nums, err = parseNumbers(strings.NewReader(""))
	require.NoError(t, err)
	require.Equal(t, 0, nums.Len())
	require.Equal(t, "", nums.String())

	_, err = parseNumbers(strings.NewReader("1\n2 x"))
	require.ErrorContains(t, err, "line 2")
}

func TestNumbersFormat(t *testing.T) {
	ints := &numbers{ints: []int64{-4, 0, 1000000, 9007199254740993}}
	require.Equal(t, "-4 0 1000000 9007199254740993", ints.String())

	floats := &numbers{floats: []float64{-4, 0, 0.1, 1e6, 1e21}, float: true}
	require.Equal(t, "-4 0 0.1 1000000 1000000000000000000000", floats.String())

	clone := ints.clone()
	clone.ints[0] = 7
	require.Equal(t, int64(-4), ints.ints[0])
}
