package entity

// InventoryItem representa una fila del inventario de joyas.
// Los tags csv fijan el orden y nombre de columnas del archivo:
// ID,Nombre,Cantidad,Precio_COP,Stock_Minimo.
type InventoryItem struct {
	ID          string `csv:"ID" json:"id"`
	Nombre      string `csv:"Nombre" json:"nombre"`
	Cantidad    int    `csv:"Cantidad" json:"cantidad"`
	PrecioCOP   int    `csv:"Precio_COP" json:"precio_cop"`
	StockMinimo int    `csv:"Stock_Minimo" json:"stock_minimo"`
}

// LowStock indica si el artículo está en o bajo su umbral mínimo.
func (i InventoryItem) LowStock() bool {
	return i.Cantidad <= i.StockMinimo
}

// RequiredColumns devuelve el esquema fijo de cinco columnas, en el orden
// de persistencia.
func RequiredColumns() []string {
	return []string{"ID", "Nombre", "Cantidad", "Precio_COP", "Stock_Minimo"}
}

// NumericColumns devuelve las columnas que deben coercionarse a entero en
// carga y en reconciliación.
func NumericColumns() []string {
	return []string{"Cantidad", "Precio_COP", "Stock_Minimo"}
}
