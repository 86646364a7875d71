package cmd

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"github.com/caoruixin/rex-github-sentinel/src/history"
	bsort "github.com/caoruixin/rex-github-sentinel/src/sort"
)

func CmdHistory() *cli.Command {
	return &cli.Command{
		Name:      "history",
		Action:    listHistory,
		Category:  "SORT",
		Usage:     "list recorded sort runs",
		ArgsUsage: "",
		Description: `
Shows the runs recorded by "sort --meta-url", newest first.

Examples:
$ bubblesort history -m "mysql://bs:mypassword@(127.0.0.1:3306)/bubblesort"
# A safer alternative
$ export META_PASSWORD=mypassword
$ bubblesort history -m "mysql://bs:@(127.0.0.1:3306)/bubblesort" --limit 5`,
		Flags: []cli.Flag{
			metaFlag(),
			&cli.IntFlag{
				Name:    "limit",
				Aliases: []string{"n"},
				Value:   20,
				Usage:   "show at most `N` runs (0 for all)",
			},
		},
	}
}

func listHistory(ctx *cli.Context) error {
	setup(ctx)
	uri := ctx.String("meta-url")
	if uri == "" {
		return errors.New("--meta-url is required")
	}
	store, err := history.Open(uri)
	if err != nil {
		return err
	}
	defer store.Close()

	runs, err := store.Recent(ctx.Int("limit"))
	if err != nil {
		return err
	}
	for _, r := range runs {
		fmt.Fprintln(ctx.App.Writer, formatRun(r))
	}
	return nil
}

func formatRun(r history.Run) string {
	return fmt.Sprintf("#%d %s  n=%d passes=%s swaps=%s  [%s] -> [%s]",
		r.Id, humanize.Time(r.Created), len(r.Input),
		humanize.Comma(int64(r.Passes)), humanize.Comma(int64(r.Swaps)),
		strings.Join(r.Input, " "), strings.Join(r.Output, " "))
}

func recordRun(uri string, input, output []string, st bsort.Stats) error {
	store, err := history.Open(uri)
	if err != nil {
		return err
	}
	defer store.Close()

	run, err := store.Record(input, output, st)
	if err != nil {
		return err
	}
	logger.Infof("recorded run #%d", run.Id)
	return nil
}
