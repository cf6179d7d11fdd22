package entity

import "time"

// Warehouse is a storage location. DeletedAt marks soft deletion; a deleted
// warehouse must not receive new inventory.
type Warehouse struct {
	ID        int64
	CompanyID int64
	Name      string
	CreatedAt time.Time
	DeletedAt *time.Time
}

// Active reports whether the warehouse may receive inventory.
func (w *Warehouse) Active() bool {
	return w != nil && w.DeletedAt == nil
}
