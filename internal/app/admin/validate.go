package admin

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/preston-bernstein/phl-league-service/internal/ranking"
)

// ErrInvalidInput marks payloads rejected before anything is sent upstream.
var ErrInvalidInput = errors.New("invalid input")

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})
	_ = v.RegisterValidation("matchdate", func(fl validator.FieldLevel) bool {
		_, ok := ranking.ParseMatchDate(fl.Field().String())
		return ok
	})
	return v
}

func (s *Service) validate(ctx context.Context, payload any) error {
	err := s.validator.StructCtx(ctx, payload)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, describe(fe))
	}
	return fmt.Errorf("%w: %s", ErrInvalidInput, strings.Join(msgs, "; "))
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "url":
		return fe.Field() + " must be a URL"
	case "matchdate":
		return fe.Field() + " must be a date like 2006-01-02 15:04"
	case "nefield":
		return fe.Field() + " must differ from " + fe.Param()
	case "oneof":
		return fe.Field() + " must be one of: " + fe.Param()
	case "gte", "gt", "lte", "max":
		return fmt.Sprintf("%s must satisfy %s=%s", fe.Field(), fe.Tag(), fe.Param())
	}
	return fmt.Sprintf("%s failed %s", fe.Field(), fe.Tag())
}

func invalid(msg string) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, msg)
}
