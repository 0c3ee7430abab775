package lexer

import (
	"errors"
	"fmt"
)

// Sentinel causes wrapped by [ConfigError].
var (
	ErrNilPattern        = errors.New("pattern has no regexp")
	ErrTextPattern       = errors.New("text is the fallback category and takes no pattern")
	ErrUnknownCategory   = errors.New("unknown category")
	ErrDuplicateCategory = errors.New("category configured more than once")
	ErrEmptyMatch        = errors.New("pattern can match an empty span")
	ErrEmptyArg          = errors.New("flag spelling must not be empty")
)

// ConfigError reports an inconsistent catalog. It is returned by
// [NewCatalog] and never produced while tokenizing.
type ConfigError struct {
	Category Category
	Pattern  string
	Err      error
}

func (e *ConfigError) Error() string {
	if e.Pattern == "" {
		return fmt.Sprintf("lexer: %s: %v", e.Category, e.Err)
	}
	return fmt.Sprintf("lexer: %s pattern %q: %v", e.Category, e.Pattern, e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }
