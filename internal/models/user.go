package models

import (
	"time"

	"github.com/google/uuid"
)

// User is a platform account. Here it appears as a course instructor and as the
// owner of recommendations and learning paths.
type User struct {
	ID        uuid.UUID `db:"id"`
	FirstName string    `db:"first_name"`
	LastName  string    `db:"last_name"`
	Email     string    `db:"email"`
	Password  string    `db:"password"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}
