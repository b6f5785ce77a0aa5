package request

import (
	"fmt"
	"strconv"
	"strings"

	"hotelsys/shared/failure"

	"github.com/urfave/cli/v2"
)

// Args returns the positional arguments of the command, failing with BadRequest
// unless there are between minimum and maximum of them.
func Args(c *cli.Context, minimum, maximum int) ([]string, error) {
	args := c.Args().Slice()

	if len(args) < minimum || len(args) > maximum {
		usage := strings.TrimSpace(c.Command.Name + " " + c.Command.ArgsUsage)

		return nil, failure.BadRequestFromString(fmt.Sprintf("usage: %s", usage))
	}

	return args, nil
}

// Int parses value as a decimal integer named field.
func Int(field, value string) (int, error) {
	number, err := strconv.Atoi(value)
	if err != nil {
		return 0, failure.BadRequestFromString(fmt.Sprintf("%s must be an integer, got %q", field, value))
	}

	return number, nil
}

// OptionalString returns a pointer to the flag value when the flag was given.
func OptionalString(c *cli.Context, name string) *string {
	if !c.IsSet(name) {
		return nil
	}

	value := c.String(name)

	return &value
}

// OptionalInt returns a pointer to the flag value when the flag was given.
func OptionalInt(c *cli.Context, name string) *int {
	if !c.IsSet(name) {
		return nil
	}

	value := c.Int(name)

	return &value
}
