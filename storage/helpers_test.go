package storage

import "unsafe"

func unsafePointerTo[T any](value *T) unsafe.Pointer {
	return unsafe.Pointer(value)
}
