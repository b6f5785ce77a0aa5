package validator

import (
	"errors"
	"strings"

	val "github.com/go-playground/validator/v10"
)

var (
	messages = map[string]string{
		"required": "{field} is required",
		"min":      "{field} must be greater than or equal to {param}",
	}
)

// message renders one line per violated field, joined with "; ".
func message(err error) string {
	var valErrors val.ValidationErrors

	if !errors.As(err, &valErrors) {
		return err.Error()
	}

	lines := make([]string, 0, len(valErrors))

	for _, valErr := range valErrors {
		errStr, ok := messages[valErr.Tag()]
		if !ok {
			lines = append(lines, valErr.Error())

			continue
		}

		errStr = strings.ReplaceAll(errStr, "{field}", valErr.Field())
		errStr = strings.ReplaceAll(errStr, "{param}", valErr.Param())
		lines = append(lines, errStr)
	}

	return strings.Join(lines, "; ")
}
