package config

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/showroom/internal/showcase"
	"github.com/alexisbeaulieu97/showroom/internal/ui/components"
	apperrors "github.com/alexisbeaulieu97/showroom/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("theme_name", registered(func(name string) bool {
			_, ok := components.ThemeNamed(name)
			return ok
		}))
		_ = v.RegisterValidation("preview_style", registered(func(name string) bool {
			_, ok := showcase.PreviewStyleNamed(name)
			return ok
		}))
		_ = v.RegisterValidation("index_style", registered(func(name string) bool {
			_, ok := showcase.IndexStyleNamed(name)
			return ok
		}))
		_ = v.RegisterValidation("easing", registered(func(name string) bool {
			_, ok := showcase.EasingNamed(name)
			return ok
		}))

		validateInst = v
	})

	return validateInst
}

func registered(known func(string) bool) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return known(fl.Field().String())
	}
}

// Validate checks settings against the registered themes, styles and easings.
func Validate(s Settings) error {
	if err := validatorInstance().Struct(s); err != nil {
		return convertValidationError(err)
	}
	return nil
}

// convertValidationError reports the first failing field using the file's key names.
func convertValidationError(err error) error {
	var ves validator.ValidationErrors
	if !errors.As(err, &ves) || len(ves) == 0 {
		return apperrors.NewValidationError("settings", err.Error(), err)
	}

	fe := ves[0]
	field := keyPath(fe)
	return apperrors.NewValidationError(field, message(fe), err)
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "theme_name":
		return fmt.Sprintf("unknown theme %q (have %s)", fe.Value(), strings.Join(components.ThemeNames(), ", "))
	case "preview_style":
		return fmt.Sprintf("unknown preview style %q (have %s)", fe.Value(), strings.Join(showcase.PreviewStyleNames(), ", "))
	case "index_style":
		return fmt.Sprintf("unknown index style %q (have %s)", fe.Value(), strings.Join(showcase.IndexStyleNames(), ", "))
	case "easing":
		return fmt.Sprintf("unknown easing %q (have %s)", fe.Value(), strings.Join(showcase.EasingNames(), ", "))
	default:
		return fmt.Sprintf("failed validation for tag '%s'", fe.Tag())
	}
}

var keyNames = map[string]string{
	"PreviewStyle": "preview_style",
	"IndexStyle":   "index_style",
	"DurationMS":   "duration_ms",
}

// keyPath maps Settings.Scroll.DurationMS to scroll.duration_ms.
func keyPath(fe validator.FieldError) string {
	parts := strings.Split(fe.StructNamespace(), ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	for i, part := range parts {
		if key, ok := keyNames[part]; ok {
			parts[i] = key
			continue
		}
		parts[i] = strings.ToLower(part)
	}
	return strings.Join(parts, ".")
}
