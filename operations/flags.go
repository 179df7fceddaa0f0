package operations

import (
	"strings"

	"github.com/mongodb/grip"
	"github.com/pkg/errors"
	"github.com/urfave/cli"
)

const (
	mappingFlagName  = "mapping"
	outputFlagName   = "output"
	typeFlagName     = "type"
	formatFlagName   = "format"
	strictFlagName   = "strict"
	maxDepthFlagName = "max-depth"
	dumpFlagName     = "dump"
)

func joinFlagNames(ids ...string) string { return strings.Join(ids, ", ") }

func addTypeFlag(flags ...cli.Flag) []cli.Flag {
	return append(flags, cli.StringFlag{
		Name:  joinFlagNames(typeFlagName, "t"),
		Usage: "registered format name of the model, see 'describe'",
	})
}

func requireStringFlag(name string) cli.BeforeFunc {
	return func(c *cli.Context) error {
		if c.String(name) == "" {
			return errors.Errorf("flag '--%s' was not specified", name)
		}
		return nil
	}
}

func requireArgs(n int) cli.BeforeFunc {
	return func(c *cli.Context) error {
		if c.NArg() != n {
			return errors.Errorf("expected %d argument(s), got %d", n, c.NArg())
		}
		return nil
	}
}

func mergeBeforeFuncs(ops ...cli.BeforeFunc) cli.BeforeFunc {
	return func(c *cli.Context) error {
		catcher := grip.NewBasicCatcher()

		for _, op := range ops {
			catcher.Add(op(c))
		}

		return catcher.Resolve()
	}
}
