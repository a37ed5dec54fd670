package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrSourceMissing      = errors.New("archivo de inventario no encontrado")
	ErrLoadFailed         = errors.New("error al cargar o procesar el inventario")
	ErrSaveFailed         = errors.New("error al guardar el inventario")
	ErrNotificationFailed = errors.New("error enviando la alerta por correo")
	ErrInvalidInput       = errors.New("entrada inválida")
)

// MissingColumnsError indica que la tabla editada perdió columnas del
// esquema requerido. El guardado se rechaza completo; no hay guardado
// parcial.
type MissingColumnsError struct {
	Missing  []string
	Required []string
}

func (e *MissingColumnsError) Error() string {
	return fmt.Sprintf(
		"columnas faltantes: %s. Asegúrese de no borrar %s",
		strings.Join(e.Missing, ", "),
		strings.Join(e.Required, ", "),
	)
}

// DuplicateIDError indica que la tabla editada repite un ID no vacío.
type DuplicateIDError struct {
	ID string
}

func (e *DuplicateIDError) Error() string {
	return fmt.Sprintf("ID duplicado en la tabla editada: %s", e.ID)
}
