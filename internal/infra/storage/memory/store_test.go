package memory

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_MissingKeyIsEmpty(t *testing.T) {
	s := NewStore()

	records, err := s.ReadAll(context.Background(), "unknown")
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestStore_WriteReadRoundtrip(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	in := []json.RawMessage{
		json.RawMessage(`{"id":"REQ-2025-0001"}`),
		json.RawMessage(`{"id":"REQ-2025-0002"}`),
	}
	require.NoError(t, s.WriteAll(ctx, "quote_requests", in))

	out, err := s.ReadAll(ctx, "quote_requests")
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestStore_ReadReturnsCopy(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	require.NoError(t, s.WriteAll(ctx, "key", []json.RawMessage{json.RawMessage(`{"a":1}`)}))

	out, err := s.ReadAll(ctx, "key")
	require.NoError(t, err)
	out[0] = json.RawMessage(`{"mutated":true}`)

	again, err := s.ReadAll(ctx, "key")
	require.NoError(t, err)
	assert.Equal(t, json.RawMessage(`{"a":1}`), again[0])
}
