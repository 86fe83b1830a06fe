package constants

const (
	RoleAdmin   = "admin"
	RoleStudent = "student"
)

// Pesan error otorisasi
const (
	ErrNotAuthorized = "You are not authorized to perform this action."
	ErrUnauthorized  = "Unauthorized"
)

var AdminOnly = []string{
	RoleAdmin,
}
