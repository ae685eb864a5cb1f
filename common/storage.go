package common

import (
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

// GetSerialized returns deserialized value from contract storage or nil when
// nothing is stored by the given key.
func GetSerialized(ctx storage.Context, key interface{}) interface{} {
	data := storage.Get(ctx, key)
	if data != nil {
		return std.Deserialize(data.([]byte))
	}

	return nil
}

// SetSerialized serializes data and puts it into contract storage.
func SetSerialized(ctx storage.Context, key interface{}, value interface{}) {
	data := std.Serialize(value)
	storage.Put(ctx, key, data)
}
