package commands

import (
	"fmt"
	"strconv"

	"github.com/urfave/cli/v3"
)

// argID parses the first positional argument as a numeric id.
func argID(c *cli.Command) (int64, error) {
	arg := c.Args().First()
	if arg == "" {
		return 0, fmt.Errorf("id required\n\nUsage: %s", c.UsageText)
	}

	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q: must be a number", arg)
	}
	return id, nil
}
