package entity

// Category agrupa artículos del inventario. El orden de la lista define el orden de las vistas.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
