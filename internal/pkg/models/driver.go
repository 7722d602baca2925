package models

import (
	"time"

	"github.com/google/uuid"
)

// Driver is created and managed out of band; this service only checks
// existence and references the id from fixes and assignments.
type Driver struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Phone     *string   `json:"phone,omitempty" db:"phone"`
	Status    string    `json:"status" db:"status"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// Vehicle has the same out-of-band lifecycle as Driver.
type Vehicle struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Plate     *string   `json:"plate,omitempty" db:"plate"`
	Code      *string   `json:"code,omitempty" db:"code"`
	Status    string    `json:"status" db:"status"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
