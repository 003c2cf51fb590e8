package table

import (
	"log/slog"
	"strconv"
)

// EntityId is the index of an entity slot, shared by all columns of a Table.
type EntityId uint32

func (e EntityId) String() string {
	return strconv.Itoa(int(e))
}

func (e EntityId) LogValue() slog.Value {
	return slog.StringValue(e.String())
}
