// Package validation provides input validation utilities
package validation

import (
	"regexp"
	"sync"

	"github.com/go-playground/validator/v10"
)

// MaxUsernameLength is the longest accepted username, in characters.
const MaxUsernameLength = 50

// UsernameProblem classifies why a username was rejected.
type UsernameProblem int

const (
	UsernameOK UsernameProblem = iota
	UsernameTooLong
	UsernameRestricted
)

var wordRegex = regexp.MustCompile(`^\w+$`)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func instance() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		_ = validate.RegisterValidation("word", func(fl validator.FieldLevel) bool {
			return wordRegex.MatchString(fl.Field().String())
		})
	})
	return validate
}

// CheckUsername reports the first problem with username. Length is checked
// before the character set.
func CheckUsername(username string) UsernameProblem {
	v := instance()
	if err := v.Var(username, "max=50"); err != nil {
		return UsernameTooLong
	}
	if err := v.Var(username, "word"); err != nil {
		return UsernameRestricted
	}
	return UsernameOK
}
