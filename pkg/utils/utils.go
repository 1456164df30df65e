package utils

import (
	"fmt"
	"strings"

	"stockwise/pkg/logger"
)

func ToPointer[T any](value T) *T {
	return &value
}

// PositiveOrNil returns a pointer to v, or nil when v is not positive. Some
// market data sources report a missing number as zero.
func PositiveOrNil(v float64) *float64 {
	if v <= 0 {
		return nil
	}
	return &v
}

// NonEmptyOrNil returns a pointer to the trimmed s, or nil when it is blank.
func NonEmptyOrNil(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

// GoSafe runs the given function in a new goroutine and recovers from any
// panic, logging it through log.
func GoSafe(log *logger.Logger, fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				log.Error("panic recovered", logger.StringField("panic", fmt.Sprint(r)))
			}
		}()
		fn()
	}()
}
