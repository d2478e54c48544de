package entities

// Route маршрут из каталога ms-logistica, читается через HTTP gateway.
type Route struct {
	ID     int64
	Name   string
	Origin string
	Dest   string
	Active bool
}
