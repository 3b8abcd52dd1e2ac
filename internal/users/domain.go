package users

import "time"

// User is a directory entry listed on the admin route.
type User struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	RoleName  string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}
