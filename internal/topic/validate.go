package topic

import (
	"errors"
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"

	apperrors "github.com/alexisbeaulieu97/showroom/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		validateInst = validator.New()
	})
	return validateInst
}

// Validate checks the trees rooted at roots: every topic needs an identity and a title,
// links need absolute URLs, preview items need content, and identities must be unique
// across all roots. All problems are returned joined.
//
// Rendering never calls this; uniqueness is a caller precondition and this is the tool
// callers use to honour it.
func Validate(roots ...Topic) error {
	v := validatorInstance()
	seen := make(map[ID]string)
	var problems []error

	for _, root := range roots {
		Walk(root, func(t Topic, depth int) bool {
			path := fmt.Sprintf("%s@%d", t.Title, depth)
			if err := v.Struct(t); err != nil {
				problems = append(problems, structErrors(path, err)...)
			}
			if t.ID == "" {
				return true
			}
			if previous, dup := seen[t.ID]; dup {
				problems = append(problems, apperrors.NewValidationError(
					path+".id",
					fmt.Sprintf("duplicate id %q (already used by %s)", t.ID, previous),
					nil,
				))
				return true
			}
			seen[t.ID] = path
			return true
		})
	}

	return errors.Join(problems...)
}

func structErrors(path string, err error) []error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return []error{apperrors.NewValidationError(path, err.Error(), err)}
	}

	out := make([]error, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		out = append(out, apperrors.NewValidationError(
			path+"."+fe.Namespace(),
			fmt.Sprintf("failed %q check", fe.Tag()),
			nil,
		))
	}
	return out
}
