package entity

import "time"

// User credencial registrada. Dueño de cero o más Items.
type User struct {
	ID           string
	Username     string // único, 3-30 alfanumérico
	Email        string // único
	PasswordHash string // bcrypt; nunca se expone
	CreatedAt    time.Time
}
