package entity

type Route struct {
	ID     int64
	Name   string
	Origin string
	Dest   string
	Active bool
}
