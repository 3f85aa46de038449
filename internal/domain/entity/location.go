package entity

import "time"

// Address is the postal address of a store location, treated as a value
// object: replaced wholesale on update, never mutated field by field.
type Address struct {
	Street string
	City   string
	State  string
	Zip    string
}

// District is an administrative grouping of locations, managed by a
// DistrictManager.
type District struct {
	ID        int64
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Location is a physical store scoped to exactly one district. The owning
// district is immutable after creation. Locations are deactivated rather
// than deleted.
type Location struct {
	ID         int64
	DistrictID int64
	Name       string
	Code       string // Optional short store code, e.g. "NYC-014".
	Address    Address
	IsActive   bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Rename updates the display name.
func (l *Location) Rename(name string) {
	l.Name = name
	l.touch()
}

// Relocate replaces the address value object.
func (l *Location) Relocate(address Address) {
	l.Address = address
	l.touch()
}

// Deactivate soft-deletes the location.
func (l *Location) Deactivate() {
	l.IsActive = false
	l.touch()
}

func (l *Location) touch() {
	l.UpdatedAt = time.Now().UTC()
}
