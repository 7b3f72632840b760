package model

type User struct {
	ID           int64  `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
}

func (User) TableName() string { return "users" }

// Identity is the request-scoped caller identity resolved from the session
// store. Every domain call takes it explicitly; there is no process-wide
// session state.
type Identity struct {
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
}
