package form

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/amarjela/district-backend/internal/schema"
)

// ErrValidation is matched by every field-level validation failure.
var ErrValidation = errors.New("validation failed")

// MissingRequiredFieldError reports a required field that was absent or blank.
type MissingRequiredFieldError struct {
	Key   string
	Label string
}

func (e *MissingRequiredFieldError) Error() string {
	return fmt.Sprintf("required field missing: %s", e.Label)
}

func (e *MissingRequiredFieldError) Is(target error) bool {
	return target == ErrValidation
}

// FieldTooLongError reports a value that does not fit its storage column.
type FieldTooLongError struct {
	Key   string
	Label string
	Max   int
}

func (e *FieldTooLongError) Error() string {
	return fmt.Sprintf("%s must be at most %d characters", e.Label, e.Max)
}

func (e *FieldTooLongError) Is(target error) bool {
	return target == ErrValidation
}

// Column limits of the standard fields, in runes.
var maxLengths = map[string]int{
	schema.KeyTitle:   255,
	schema.KeyPhone:   50,
	schema.KeyAddress: 500,
}

// Standard holds the values that map to fixed content columns.
type Standard struct {
	Title       string
	Phone       string
	Address     string
	Description string
}

// Validate checks required fields in declaration order and returns the first failure.
func Validate(cfg schema.Config, values map[string]string) error {
	for _, f := range cfg.Fields {
		if f.Required && blank(values[f.Key]) {
			return &MissingRequiredFieldError{Key: f.Key, Label: f.Label}
		}
	}
	return nil
}

// ValidateAll is the relaxed variant of Validate that reports every failing field.
func ValidateAll(cfg schema.Config, values map[string]string) []error {
	var errs []error
	for _, f := range cfg.Fields {
		if f.Required && blank(values[f.Key]) {
			errs = append(errs, &MissingRequiredFieldError{Key: f.Key, Label: f.Label})
		}
	}
	return errs
}

// CheckBounds rejects standard values longer than their columns allow.
func CheckBounds(cfg schema.Config, values map[string]string) error {
	for _, key := range schema.StandardFieldKeys() {
		limit, ok := maxLengths[key]
		if !ok {
			continue
		}
		if utf8.RuneCountInString(strings.TrimSpace(values[key])) > limit {
			label := key
			if f, ok := cfg.Field(key); ok {
				label = f.Label
			}
			return &FieldTooLongError{Key: key, Label: label, Max: limit}
		}
	}
	return nil
}

// Partition splits values into the standard columns and the metadata map. Standard values
// are read regardless of whether the schema declares them; metadata only keeps declared,
// non-empty extra fields.
func Partition(cfg schema.Config, values map[string]string) (Standard, map[string]string) {
	std := Standard{
		Title:       strings.TrimSpace(values[schema.KeyTitle]),
		Phone:       strings.TrimSpace(values[schema.KeyPhone]),
		Address:     strings.TrimSpace(values[schema.KeyAddress]),
		Description: strings.TrimSpace(values[schema.KeyDescription]),
	}

	metadata := make(map[string]string)
	for _, f := range schema.ExtraFields(cfg) {
		v := strings.TrimSpace(values[f.Key])
		if v != "" {
			metadata[f.Key] = v
		}
	}
	return std, metadata
}

// Merge is the inverse of Partition. Empty standard values are left out.
func Merge(std Standard, metadata map[string]string) map[string]string {
	out := make(map[string]string, len(metadata)+4)
	for k, v := range metadata {
		out[k] = v
	}
	for k, v := range std.fields() {
		if v != "" {
			out[k] = v
		}
	}
	return out
}

func (s Standard) fields() map[string]string {
	return map[string]string{
		schema.KeyTitle:       s.Title,
		schema.KeyPhone:       s.Phone,
		schema.KeyAddress:     s.Address,
		schema.KeyDescription: s.Description,
	}
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}
