package api

import (
	"bytes"
	"encoding/json"
)

const RootPath = "/api"

// Route paths below RootPath
const (
	AssetsPath   = "/assets"
	MemoriesPath = "/memories"
	MediaPath    = "/all-media"
	ConfigPath   = "/config"
	AuthMePath   = "/auth/me"
	OpenAPIPath  = "/openapi.json"
)

// Optional records whether a JSON key was present in a partial update and, if so,
// whether its value was null. The zero value is an absent key.
type Optional[T any] struct {
	Set   bool
	Null  bool
	Value T
}

func Some[T any](value T) Optional[T] {
	return Optional[T]{Set: true, Value: value}
}

func Null[T any]() Optional[T] {
	return Optional[T]{Set: true, Null: true}
}

// Present is true when the key was sent with a non-null value
func (o Optional[T]) Present() bool {
	return o.Set && !o.Null
}

func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		var zero T
		o.Null = true
		o.Value = zero
		return nil
	}
	o.Null = false
	return json.Unmarshal(data, &o.Value)
}

func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.Present() {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value)
}
