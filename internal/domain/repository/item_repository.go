package repository

import "github.com/nicolljireth/inventario-joyeria/internal/domain/entity"

// ItemRepository define el puerto de persistencia para la tabla de
// inventario (DIP). La tabla se lee y escribe completa: no hay escrituras
// por fila.
//
// Load devuelve siempre una tabla utilizable: ante archivo ausente o error
// de parseo retorna la tabla vacía junto con domain.ErrSourceMissing o
// domain.ErrLoadFailed envolviendo la causa, para que el llamador pueda
// seguir renderizando una vista vacía.
type ItemRepository interface {
	Load() ([]*entity.InventoryItem, error)
	Save(items []*entity.InventoryItem) error
}
