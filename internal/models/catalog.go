package models

import "github.com/google/uuid"

// EquipmentDB represents an equipment catalog record. Reference data,
// immutable after seeding.
type EquipmentDB struct {
	EquipmentID uuid.UUID `json:"id" db:"equipment_id"`
	Name        string    `json:"name" db:"name"`
}

// TargetDB represents a target-muscle catalog record. Reference data,
// immutable after seeding.
type TargetDB struct {
	TargetID uuid.UUID `json:"id" db:"target_id"`
	Name     string    `json:"name" db:"name"`
}
