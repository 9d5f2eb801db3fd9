// Package validate provides shared validation functions.
package validate

import (
	"fmt"
	"strings"

	"github.com/hay-kot/criterio"
)

// TaskName validates a task name is non-empty after trimming whitespace.
func TaskName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("name is required")
	}
	return nil
}

// TaskNameField returns a criterio validator for task names.
func TaskNameField(field, name string) error {
	return criterio.Run(field, name, TaskName)
}

// OneOf returns a validator accepting only the listed values.
func OneOf(values ...string) func(string) error {
	return func(s string) error {
		for _, v := range values {
			if s == v {
				return nil
			}
		}
		return fmt.Errorf("must be one of %s", strings.Join(values, ", "))
	}
}
