package nina

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type Config struct {
	Gravity float64
}

func TestResources(t *testing.T) {
	var r Resources

	require.False(t, HasResource[Config](&r))

	_, err := Resource[Config](&r)

	var notFound *ResourceNotFoundError
	require.True(t, errors.As(err, &notFound))

	AddResource(&r, Config{Gravity: 9.81})
	require.True(t, HasResource[Config](&r))

	cfg, err := ResourceMut[Config](&r)
	require.NoError(t, err)
	cfg.Gravity = 1.62

	value, err := Resource[Config](&r)
	require.NoError(t, err)
	require.Equal(t, Config{Gravity: 1.62}, value)

	removed, err := RemoveResource[Config](&r)
	require.NoError(t, err)
	require.Equal(t, Config{Gravity: 1.62}, removed)
	require.Equal(t, 0, r.Len())

	_, err = RemoveResource[Config](&r)
	require.True(t, errors.As(err, &notFound))
}

func TestResources_ReplaceDrops(t *testing.T) {
	var dropped int
	var r Resources

	AddResource(&r, Label{Text: "first", dropped: &dropped})
	AddResource(&r, Label{Text: "second", dropped: &dropped})
	require.Equal(t, 1, dropped)
	require.Equal(t, 1, r.Len())

	// removing hands the value to the caller without dropping it
	label, err := RemoveResource[Label](&r)
	require.NoError(t, err)
	require.Equal(t, "second", label.Text)
	require.Equal(t, 1, dropped)

	AddResource(&r, Label{Text: "third", dropped: &dropped})
	AddResource(&r, 42)

	r.Drop()
	require.Equal(t, 2, dropped)
	require.Equal(t, 0, r.Len())
}
