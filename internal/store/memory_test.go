package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	st := NewMemoryStore()
	ctx := context.Background()

	_, found, err := st.Get(ctx, KeyVentas)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, st.Set(ctx, KeyVentas, []byte(`[]`)))

	got, found, err := st.Get(ctx, KeyVentas)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `[]`, string(got))
}

func TestMemoryStoreCopiesValues(t *testing.T) {
	st := NewMemoryStore()
	ctx := context.Background()

	original := []byte(`abc`)
	require.NoError(t, st.Set(ctx, KeySesion, original))
	original[0] = 'x'

	got, _, err := st.Get(ctx, KeySesion)
	require.NoError(t, err)
	assert.Equal(t, `abc`, string(got))
}
