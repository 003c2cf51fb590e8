package assert

import (
	"fmt"
	"reflect"
)

// IsNonPointerValue panics if value is nil or holds a pointer.
func IsNonPointerValue(value any) {
	if value == nil {
		panic("expected a value, got nil")
	}

	if reflect.TypeOf(value).Kind() == reflect.Pointer {
		panic(fmt.Sprintf("expected non pointer value, got %T", value))
	}
}
