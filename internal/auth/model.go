package auth

// User is an admin account for the back-office.
type User struct {
	ID       string
	Name     string
	Email    string
	Password string
	Role     string
}
