package cmd

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode"

	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	bsort "github.com/caoruixin/rex-github-sentinel/src/sort"
)

var errNoInput = errors.New("no numbers given: pass them as arguments, with --file, or on stdin")

// maxExact bounds the integers that a float64 holds without rounding.
const maxExact = 1 << 53

// numbers is parsed input. Values stay int64 unless some token needs a
// float, so integer input is printed back exactly as it came in.
type numbers struct {
	ints   []int64
	floats []float64
	float  bool
}

func (n *numbers) Len() int {
	if n.float {
		return len(n.floats)
	}
	return len(n.ints)
}

func (n *numbers) sorter() bsort.Sorter {
	if n.float {
		return bsort.Float64Array(n.floats)
	}
	return bsort.Array[int64](n.ints)
}

func (n *numbers) checkNaN() error {
	if n.float {
		return bsort.CheckNaN(n.floats)
	}
	return nil
}

func (n *numbers) clone() *numbers {
	return &numbers{
		ints:   append([]int64(nil), n.ints...),
		floats: append([]float64(nil), n.floats...),
		float:  n.float,
	}
}

func (n *numbers) format(i int) string {
	if n.float {
		return formatFloat(n.floats[i])
	}
	return strconv.FormatInt(n.ints[i], 10)
}

func (n *numbers) strings() []string {
	parts := make([]string, n.Len())
	for i := range parts {
		parts[i] = n.format(i)
	}
	return parts
}

func (n *numbers) String() string {
	return strings.Join(n.strings(), " ")
}

// formatFloat never switches to exponent notation, so 1e6 prints as 1000000.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func inputFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "file",
			Aliases: []string{"f"},
			Usage:   "read numbers from `FILE` (\"-\" for stdin)",
		},
	}
}

// readInput collects the numbers for a command from its arguments, --file, or
// a piped stdin, in that order. Only an interactive stdin with nothing else
// given is an error; an empty file or pipe is an empty sequence.
func readInput(ctx *cli.Context) (*numbers, error) {
	if ctx.NArg() > 0 {
		return parseNumbers(strings.NewReader(strings.Join(ctx.Args().Slice(), " ")))
	}

	switch path := ctx.String("file"); path {
	case "":
	case "-":
		return parseNumbers(stdin(ctx))
	default:
		f, err := os.Open(path)
		if err != nil {
			return nil, errors.Wrap(err, "open input")
		}
		defer f.Close()
		return parseNumbers(f)
	}

	if f, ok := stdin(ctx).(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		return nil, errNoInput
	}
	return parseNumbers(stdin(ctx))
}

func stdin(ctx *cli.Context) io.Reader {
	if ctx.App.Reader != nil {
		return ctx.App.Reader
	}
	return os.Stdin
}

type token struct {
	text string
	line int
}

// parseNumbers reads values separated by whitespace or commas. Integers too
// large to survive a float64 are rejected when the input also holds
// fractional values.
func parseNumbers(r io.Reader) (*numbers, error) {
	var toks []token
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64<<10), 16<<20)
	line := 0
	for sc.Scan() {
		line++
		fields := strings.FieldsFunc(sc.Text(), func(c rune) bool {
			return c == ',' || unicode.IsSpace(c)
		})
		for _, field := range fields {
			toks = append(toks, token{text: field, line: line})
		}
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "read input")
	}

	n := &numbers{ints: make([]int64, 0, len(toks))}
	for _, tok := range toks {
		v, err := strconv.ParseInt(tok.text, 10, 64)
		if err == nil {
			n.ints = append(n.ints, v)
			continue
		}
		if errors.Is(err, strconv.ErrRange) {
			return nil, errors.Errorf("line %d: %q is out of range", tok.line, tok.text)
		}
		n.float = true
		break
	}
	if !n.float {
		return n, nil
	}

	n.ints = nil
	n.floats = make([]float64, 0, len(toks))
	for _, tok := range toks {
		i, err := strconv.ParseInt(tok.text, 10, 64)
		if err == nil {
			if i > maxExact || i < -maxExact {
				return nil, errors.Errorf("line %d: integer %q cannot be mixed with fractional values without rounding", tok.line, tok.text)
			}
			n.floats = append(n.floats, float64(i))
			continue
		}
		if errors.Is(err, strconv.ErrRange) {
			return nil, errors.Errorf("line %d: %q is out of range", tok.line, tok.text)
		}
		v, err := strconv.ParseFloat(tok.text, 64)
		if err != nil {
			return nil, errors.Errorf("line %d: %q is not a number", tok.line, tok.text)
		}
		n.floats = append(n.floats, v)
	}
	return n, nil
}
