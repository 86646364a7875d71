package main

import (
	"os"

	"github.com/caoruixin/rex-github-sentinel/src/cmd"
	"github.com/caoruixin/rex-github-sentinel/src/utils"
)

var logger = utils.GetLogger("bubblesort")

func main() {
	if err := cmd.NewApp().Run(os.Args); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}
