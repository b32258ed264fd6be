package domain

type UserStatus string

const (
	UserActive   UserStatus = "Active"
	UserInactive UserStatus = "Inactive"
)

// User é um usuário da área administrativa do backend
type User struct {
	ID     int        `json:"id"`
	Name   string     `json:"name"`
	Role   string     `json:"role"`
	Status UserStatus `json:"status"`
}
