package cmd

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v2"

	bsort "github.com/caoruixin/rex-github-sentinel/src/sort"
)

func metaFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "meta-url",
		Aliases: []string{"m"},
		EnvVars: []string{"META_URL"},
		Usage:   "META-URL of the MySQL database that keeps sort history",
	}
}

func CmdSort() *cli.Command {
	return &cli.Command{
		Name:      "sort",
		Action:    sortNumbers,
		Category:  "SORT",
		Usage:     "sort numbers in non-decreasing order",
		ArgsUsage: "[NUMBERS...]",
		Description: `
Sorts numbers with a bubble sort and prints them on one line.
Numbers are read from the arguments, from --file, or from a piped stdin,
separated by whitespace or commas. Put "--" before negative numbers.
An empty file or pipe is an empty sequence and prints an empty line.
Integers are sorted exactly; input that mixes fractions with integers
beyond 2^53 is rejected instead of rounded.

Examples:
$ bubblesort sort 5 3 8 2 1
$ bubblesort sort -- -3 5 -1 0
$ seq 10 -1 1 | bubblesort sort --stats
$ bubblesort sort -f data.txt -m "mysql://bs:mypassword@(127.0.0.1:3306)/bubblesort"`,
		Flags: append(inputFlags(),
			&cli.BoolFlag{
				Name:  "stats",
				Usage: "print passes, comparisons and swaps to stderr",
			},
			metaFlag(),
		),
	}
}

func sortNumbers(ctx *cli.Context) error {
	setup(ctx)
	nums, err := readInput(ctx)
	if err != nil {
		return err
	}
	if err = nums.checkNaN(); err != nil {
		return err
	}

	input := nums.clone()
	st := bsort.Sort(nums.sorter())
	logger.Debugf("sorted %d values in %d passes (%d comparisons, %d swaps)",
		nums.Len(), st.Passes, st.Comparisons, st.Swaps)

	fmt.Fprintln(ctx.App.Writer, nums)
	if ctx.Bool("stats") {
		fmt.Fprintf(ctx.App.ErrWriter, "passes: %s, comparisons: %s, swaps: %s\n",
			humanize.Comma(int64(st.Passes)),
			humanize.Comma(int64(st.Comparisons)),
			humanize.Comma(int64(st.Swaps)))
	}

	if uri := ctx.String("meta-url"); uri != "" {
		if err = recordRun(uri, input.strings(), nums.strings(), st); err != nil {
			return err
		}
	}
	return nil
}
