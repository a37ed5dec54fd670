package csvstore

import (
	"sync"

	"github.com/nicolljireth/inventario-joyeria/internal/domain/entity"
	"github.com/nicolljireth/inventario-joyeria/internal/domain/repository"
)

var _ repository.ItemRepository = (*CachedStore)(nil)

// CachedStore decora un ItemRepository con un snapshot único en memoria,
// propiedad del llamador y con invalidación explícita. Un Save exitoso
// invalida el snapshot; la siguiente lectura vuelve al archivo.
//
// Las cargas fallidas (archivo ausente, parseo) no se cachean: cada
// intento vuelve a consultar el archivo.
type CachedStore struct {
	inner repository.ItemRepository

	mu       sync.Mutex
	snapshot []*entity.InventoryItem
	valid    bool
}

// NewCachedStore construye el decorador de caché sobre el repositorio dado.
func NewCachedStore(inner repository.ItemRepository) *CachedStore {
	return &CachedStore{inner: inner}
}

// Load devuelve el snapshot cacheado o carga del repositorio interno.
// Siempre entrega copias: mutar el resultado no afecta la caché.
func (c *CachedStore) Load() ([]*entity.InventoryItem, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.valid {
		return cloneItems(c.snapshot), nil
	}
	items, err := c.inner.Load()
	if err != nil {
		return items, err
	}
	c.snapshot = cloneItems(items)
	c.valid = true
	return items, nil
}

// Save delega en el repositorio interno e invalida el snapshot si el
// guardado fue exitoso.
func (c *CachedStore) Save(items []*entity.InventoryItem) error {
	if err := c.inner.Save(items); err != nil {
		return err
	}
	c.Invalidate()
	return nil
}

// Invalidate descarta el snapshot; la próxima Load leerá del archivo.
func (c *CachedStore) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.snapshot = nil
	c.valid = false
}

func cloneItems(items []*entity.InventoryItem) []*entity.InventoryItem {
	out := make([]*entity.InventoryItem, len(items))
	for i, it := range items {
		copia := *it
		out[i] = &copia
	}
	return out
}
