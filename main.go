package main

import (
	"os"

	"github.com/alecthomas/kong"
	"github.com/lepinkainen/fileanonymizer/cmd"
	"github.com/lepinkainen/fileanonymizer/logging"
	"github.com/lepinkainen/fileanonymizer/types"
)

var Version = "dev"

const description = "Anonymizes file names in a directory using a consistent hashing algorithm."

// CLI is the command line model; the tool has a single command.
type CLI struct {
	cmd.AnonymizeCmd
}

func newParser(cli *CLI, options ...kong.Option) (*kong.Kong, error) {
	options = append([]kong.Option{
		kong.Name("fileanonymizer"),
		kong.Description(description),
		kong.UsageOnError(),
		kong.Vars{"version": Version},
	}, options...)
	return kong.New(cli, options...)
}

func main() {
	var cli CLI
	parser, err := newParser(&cli)
	if err != nil {
		panic(err)
	}

	_, err = parser.Parse(os.Args[1:])
	parser.FatalIfErrorf(err)

	os.Exit(run(&cli, logging.New(os.Stderr)))
}

// run executes the command with logger bound and returns the exit status.
// Run has already logged any error it returns, so it is not printed again here.
func run(cli *CLI, logger *logging.Logger) int {
	err := cli.Run(&types.AppContext{Version: Version, Logger: logger})
	_ = logger.Close()
	if err != nil {
		return 1
	}
	return 0
}
