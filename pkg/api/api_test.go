package api

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptionalPresence(t *testing.T) {
	var req MemoryUpdateRequest
	err := json.Unmarshal([]byte(`{"caption":"x","location":null,"assets":[]}`), &req)
	require.NoError(t, err)

	assert.True(t, req.Caption.Present())
	assert.Equal(t, "x", req.Caption.Value)

	assert.True(t, req.Location.Set)
	assert.True(t, req.Location.Null)
	assert.False(t, req.Location.Present())

	assert.True(t, req.Assets.Present())
	assert.NotNil(t, req.Assets.Value)
	assert.Empty(t, req.Assets.Value)

	assert.False(t, req.Content.Set)
	assert.False(t, req.Tags.Set)
	assert.False(t, req.Empty())
}

func TestOptionalNullAssets(t *testing.T) {
	var req MemoryUpdateRequest
	require.NoError(t, json.Unmarshal([]byte(`{"assets":null}`), &req))
	assert.True(t, req.Assets.Set)
	assert.True(t, req.Assets.Null)
	assert.Nil(t, req.Assets.Value)
}

func TestMemoryUpdateRequestEmpty(t *testing.T) {
	var req MemoryUpdateRequest
	require.NoError(t, json.Unmarshal([]byte(`{"unknown":1}`), &req))
	assert.True(t, req.Empty())
}

func TestOptionalMarshal(t *testing.T) {
	out, err := json.Marshal(MemoryUpdateRequest{Caption: Some("x"), Tags: Null[string]()})
	require.NoError(t, err)
	assert.Contains(t, string(out), `"caption":"x"`)
	assert.Contains(t, string(out), `"tags":null`)
}

func TestOptionalInvalidValue(t *testing.T) {
	var req MemoryUpdateRequest
	err := json.Unmarshal([]byte(`{"caption":5}`), &req)
	assert.Error(t, err)
}
