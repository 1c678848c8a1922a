package schema

import (
	"errors"
	"fmt"
)

type FieldType string

const (
	FieldText     FieldType = "text"
	FieldPhone    FieldType = "tel"
	FieldTextarea FieldType = "textarea"
	FieldSelect   FieldType = "select"
	FieldNumber   FieldType = "number"
)

// Standard field keys map to fixed content columns; every other key is stored in metadata.
const (
	KeyTitle       = "title"
	KeyPhone       = "phone"
	KeyAddress     = "address"
	KeyDescription = "description"
)

var standardKeys = [...]string{KeyTitle, KeyPhone, KeyAddress, KeyDescription}

// Field is one form field definition.
type Field struct {
	Key         string    `json:"key"`
	Label       string    `json:"label"`
	Placeholder string    `json:"placeholder,omitempty"`
	Type        FieldType `json:"type"`
	Required    bool      `json:"required,omitempty"`
	Options     []string  `json:"options,omitempty"`
	Highlight   bool      `json:"highlight,omitempty"`
}

// Config is the form schema of one category.
type Config struct {
	Key            string  `json:"key"`
	Name           string  `json:"name"`
	Fields         []Field `json:"fields"`
	ShowWarning    bool    `json:"show_warning,omitempty"`
	WarningMessage string  `json:"warning_message,omitempty"`
}

// StandardFieldKeys returns the reserved keys in column order.
func StandardFieldKeys() []string {
	keys := make([]string, len(standardKeys))
	copy(keys, standardKeys[:])
	return keys
}

func IsStandardKey(key string) bool {
	for _, k := range standardKeys {
		if k == key {
			return true
		}
	}
	return false
}

// ExtraFields returns the fields that end up in metadata, in declaration order.
func ExtraFields(cfg Config) []Field {
	extra := make([]Field, 0, len(cfg.Fields))
	for _, f := range cfg.Fields {
		if !IsStandardKey(f.Key) {
			extra = append(extra, f)
		}
	}
	return extra
}

// Field looks up a field by key.
func (c Config) Field(key string) (Field, bool) {
	for _, f := range c.Fields {
		if f.Key == key {
			return f, true
		}
	}
	return Field{}, false
}

func (c Config) clone() Config {
	out := c
	out.Fields = make([]Field, len(c.Fields))
	for i, f := range c.Fields {
		out.Fields[i] = f
		if f.Options != nil {
			out.Fields[i].Options = append([]string(nil), f.Options...)
		}
	}
	return out
}

var errInvalidSchema = errors.New("invalid category schema")

func (c Config) validate() error {
	if c.Key == "" {
		return fmt.Errorf("%w: missing key", errInvalidSchema)
	}
	if len(c.Fields) == 0 || c.Fields[0].Key != KeyTitle || !c.Fields[0].Required {
		return fmt.Errorf("%w: %s must start with a required title field", errInvalidSchema, c.Key)
	}
	if c.ShowWarning && c.WarningMessage == "" {
		return fmt.Errorf("%w: %s shows a warning without a message", errInvalidSchema, c.Key)
	}

	seen := make(map[string]bool, len(c.Fields))
	for _, f := range c.Fields {
		if f.Key == "" {
			return fmt.Errorf("%w: %s has a field without key", errInvalidSchema, c.Key)
		}
		if seen[f.Key] {
			return fmt.Errorf("%w: %s declares %q twice", errInvalidSchema, c.Key, f.Key)
		}
		seen[f.Key] = true

		switch f.Type {
		case FieldText, FieldPhone, FieldTextarea, FieldNumber:
		case FieldSelect:
			if len(f.Options) == 0 {
				return fmt.Errorf("%w: %s.%s is a select without options", errInvalidSchema, c.Key, f.Key)
			}
		default:
			return fmt.Errorf("%w: %s.%s has unknown type %q", errInvalidSchema, c.Key, f.Key, f.Type)
		}
	}
	return nil
}
