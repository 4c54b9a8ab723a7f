// Package repository holds one repository per collection. Each repository
// owns its collection in memory and mirrors every mutation to the store as a
// whole serialized document — there is no partial update and no transaction,
// matching the single-operator model of the store.
package repository

import (
	"context"
	"encoding/json"
	"errors"

	"licoreria/internal/store"

	"github.com/rs/zerolog/log"
)

// ErrNoEncontrado is returned by lookups that miss.
var ErrNoEncontrado = errors.New("registro no encontrado")

// cargar reads and decodes a collection, falling back to def when the key is
// absent, unreadable, or corrupt. Failures are non-fatal: the worst case is
// starting from the documented default collection.
func cargar[T any](ctx context.Context, st store.Store, key string, def T) T {
	raw, ok, err := st.Get(ctx, key)
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("lectura de almacenamiento falló, usando valores por defecto")
		return def
	}
	if !ok {
		return def
	}
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("entrada corrupta, usando valores por defecto")
		return def
	}
	return v
}

// guardar mirrors a collection to the store. Write failures are logged and
// swallowed; the in-memory copy remains authoritative for the session.
func guardar(ctx context.Context, st store.Store, key string, v any) {
	raw, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Str("key", key).Msg("no se pudo serializar la colección")
		return
	}
	if err := st.Set(ctx, key, raw); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("escritura de almacenamiento falló")
	}
}
