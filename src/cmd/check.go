package cmd

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	bsort "github.com/caoruixin/rex-github-sentinel/src/sort"
)

var errUnsorted = errors.New("input is not sorted")

func CmdCheck() *cli.Command {
	return &cli.Command{
		Name:      "check",
		Action:    check,
		Category:  "SORT",
		Usage:     "verify that numbers are in non-decreasing order",
		ArgsUsage: "[NUMBERS...]",
		Description: `
Exits with an error naming the first pair that is out of order.

Examples:
$ bubblesort check 1 2 2 3
$ bubblesort sort -f data.txt | bubblesort check`,
		Flags: inputFlags(),
	}
}

func check(ctx *cli.Context) error {
	setup(ctx)
	nums, err := readInput(ctx)
	if err != nil {
		return err
	}
	if err = nums.checkNaN(); err != nil {
		return err
	}
	if i := bsort.FirstUnsorted(nums.sorter()); i >= 0 {
		return errors.Wrapf(errUnsorted, "index %d (%s) > index %d (%s)", i, nums.format(i), i+1, nums.format(i+1))
	}
	fmt.Fprintf(ctx.App.Writer, "%d values in order\n", nums.Len())
	return nil
}
