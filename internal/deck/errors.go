package deck

import "fmt"

// ErrInvalidConfig matches every construction error returned by New
var ErrInvalidConfig = &ConfigError{Field: "*", Message: "invalid deck configuration"}

// ConfigError reports an engine option that cannot be used
type ConfigError struct {
	Field   string
	Value   any
	Message string
}

// Error implements the error interface
func (e *ConfigError) Error() string {
	if e.Value != nil {
		return fmt.Sprintf("deck config: %s=%v: %s", e.Field, e.Value, e.Message)
	}
	return fmt.Sprintf("deck config: %s: %s", e.Field, e.Message)
}

// Is makes every ConfigError match ErrInvalidConfig
func (e *ConfigError) Is(target error) bool {
	_, ok := target.(*ConfigError)
	return ok
}

func configError(field string, value any, message string) error {
	return &ConfigError{Field: field, Value: value, Message: message}
}
