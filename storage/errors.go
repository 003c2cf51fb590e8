package storage

import "fmt"

// TypeMismatchError is returned when an erased operation declares a type
// that differs from the type held by the target.
type TypeMismatchError struct {
	Expected *TypeInfo
	Actual   *TypeInfo

	// Insertion is true if a value of type Actual was about to be written
	Insertion bool
}

func (e *TypeMismatchError) Error() string {
	if e.Insertion {
		return fmt.Sprintf("incorrect insertion type: tried to insert %s into storage of %s", e.Actual, e.Expected)
	}

	return fmt.Sprintf("storage does not contain type %s, it contains %s", e.Actual, e.Expected)
}

type IndexOutOfBoundsError struct {
	Len   int
	Index int
}

func (e *IndexOutOfBoundsError) Error() string {
	return fmt.Sprintf("index out of bounds: the len is %d but the index is %d", e.Len, e.Index)
}

// EmptySlotError is returned when reading a slot that was padded but never set.
type EmptySlotError struct {
	Index int
}

func (e *EmptySlotError) Error() string {
	return fmt.Sprintf("slot %d does not hold a value", e.Index)
}

type LayoutError struct {
	Type  *TypeInfo
	Count int
}

func (e *LayoutError) Error() string {
	return fmt.Sprintf("invalid layout for %d values of type %s", e.Count, e.Type)
}

type AllocError struct {
	Type     *TypeInfo
	Capacity int
	Err      error
}

func (e *AllocError) Error() string {
	return fmt.Sprintf("allocation too large: %d values of type %s: %s", e.Capacity, e.Type, e.Err)
}

func (e *AllocError) Unwrap() error {
	return e.Err
}

type CapacityOverflowError struct {
	Type *TypeInfo
}

func (e *CapacityOverflowError) Error() string {
	return fmt.Sprintf("capacity overflow for zero sized type %s", e.Type)
}

type BundleConsumedError struct{}

func (e *BundleConsumedError) Error() string {
	return "bundle was already consumed"
}

type DuplicateTypeError struct {
	Type *TypeInfo
}

func (e *DuplicateTypeError) Error() string {
	return fmt.Sprintf("type %s appears more than once in bundle", e.Type)
}
