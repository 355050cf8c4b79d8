package repository

import "context"

// Claves de los cuatro registros persistidos. Cada uno se lee y escribe como un blob JSON completo.
const (
	KeyInventory  = "inventory"
	KeyCategories = "categories"
	KeyPasswords  = "passwords"
	KeySession    = "warehouseSession"
)

// KeyValueStore puerto de almacenamiento clave/valor (memoria, PostgreSQL, MongoDB).
// Get devuelve found=false sin error cuando la clave no existe.
type KeyValueStore interface {
	Get(ctx context.Context, key string) (value []byte, found bool, err error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
