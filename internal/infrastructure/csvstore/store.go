package csvstore

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/gocarina/gocsv"
	"github.com/nicolljireth/inventario-joyeria/internal/domain"
	"github.com/nicolljireth/inventario-joyeria/internal/domain/entity"
	"github.com/nicolljireth/inventario-joyeria/internal/domain/repository"
)

var _ repository.ItemRepository = (*Store)(nil)

// Store implementación del puerto ItemRepository sobre un archivo CSV plano.
// El archivo completo es la unidad de lectura y escritura: Save sobrescribe
// todo el contenido y una celda numérica inválida invalida la carga entera
// (sin recuperación por fila).
type Store struct {
	path string
}

// NewStore construye el adaptador de persistencia sobre el CSV indicado.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Load lee la tabla completa. Coerciona Cantidad, Precio_COP y Stock_Minimo
// a enteros; cualquier valor no numérico hace fallar toda la carga.
// Archivo ausente → tabla vacía + domain.ErrSourceMissing.
// Cualquier otro fallo de lectura o parseo → tabla vacía + domain.ErrLoadFailed.
func (s *Store) Load() ([]*entity.InventoryItem, error) {
	empty := []*entity.InventoryItem{}

	f, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return empty, fmt.Errorf("%w: %s", domain.ErrSourceMissing, s.path)
		}
		return empty, fmt.Errorf("%w: %v", domain.ErrLoadFailed, err)
	}
	defer f.Close()

	if err := checkHeader(f); err != nil {
		return empty, fmt.Errorf("%w: %v", domain.ErrLoadFailed, err)
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return empty, fmt.Errorf("%w: %v", domain.ErrLoadFailed, err)
	}

	items := []*entity.InventoryItem{}
	if err := gocsv.UnmarshalFile(f, &items); err != nil {
		return empty, fmt.Errorf("%w: %v", domain.ErrLoadFailed, err)
	}
	return items, nil
}

// Save sobrescribe el archivo con la tabla dada, columnas en el orden fijo
// ID,Nombre,Cantidad,Precio_COP,Stock_Minimo. Sin garantía de atomicidad:
// un corte a mitad de escritura puede dejar el archivo corrupto.
func (s *Store) Save(items []*entity.InventoryItem) error {
	f, err := os.Create(s.path)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrSaveFailed, err)
	}
	defer f.Close()

	if err := gocsv.MarshalFile(&items, f); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrSaveFailed, err)
	}
	return nil
}

// checkHeader verifica que la primera fila contenga las cinco columnas
// requeridas. Columnas extra se toleran; una requerida ausente falla la
// carga completa.
func checkHeader(f *os.File) error {
	header, err := csv.NewReader(f).Read()
	if err != nil {
		return fmt.Errorf("leer encabezado: %v", err)
	}
	present := make(map[string]bool, len(header))
	for _, col := range header {
		present[col] = true
	}
	for _, col := range entity.RequiredColumns() {
		if !present[col] {
			return fmt.Errorf("columna requerida ausente en el archivo: %s", col)
		}
	}
	return nil
}
