package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
)

// Instructions is an ordered list of instruction steps, stored as JSONB.
type Instructions []string

// Value implements driver.Valuer for JSONB storage.
func (i Instructions) Value() (driver.Value, error) {
	return json.Marshal(i)
}

// Scan implements sql.Scanner for JSONB retrieval.
func (i *Instructions) Scan(src any) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, i)
	case string:
		return json.Unmarshal([]byte(v), i)
	default:
		return errors.New("instructions: unsupported scan type")
	}
}

// ExerciseDB represents an exercise record in the database. Every exercise
// references exactly one equipment row and one target row.
type ExerciseDB struct {
	ExerciseID   uuid.UUID    `json:"id" db:"exercise_id"`
	Name         string       `json:"name" db:"name"`
	GifURL       string       `json:"gif_url" db:"gif_url"`
	Instructions Instructions `json:"instructions" db:"instructions"`
	EquipmentID  uuid.UUID    `json:"equipment_id" db:"equipment_id"`
	TargetID     uuid.UUID    `json:"target_id" db:"target_id"`
}

// ExerciseView is the serialized exercise shape returned to clients.
type ExerciseView struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	GifURL       string    `json:"gif_url"`
	Instructions []string  `json:"instructions"`
}

// View converts a database record to its client representation.
func (e ExerciseDB) View() ExerciseView {
	return ExerciseView{
		ID:           e.ExerciseID,
		Name:         e.Name,
		GifURL:       e.GifURL,
		Instructions: e.Instructions,
	}
}
