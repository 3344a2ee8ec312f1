package user

type Role string

const (
	RoleTeacher Role = "teacher"
	RoleStudent Role = "student"
)

// User is an account seeded into the user collection. Users are never
// created or edited through the API.
type User struct {
	ID       string `json:"userId"`
	Role     Role   `json:"role"`
	FullName string `json:"fullName"`
	Username string `json:"username"`
	Class    *int   `json:"class,omitempty"` // grade level, students only
}

func (u User) IsTeacher() bool { return u.Role == RoleTeacher }
func (u User) IsStudent() bool { return u.Role == RoleStudent }

// FindByUsername returns the user whose username matches exactly (case-sensitive).
func FindByUsername(users []User, username string) (User, bool) {
	for _, u := range users {
		if u.Username == username {
			return u, true
		}
	}
	return User{}, false
}

// Students returns the student accounts in collection order.
func Students(users []User) []User {
	var out []User
	for _, u := range users {
		if u.IsStudent() {
			out = append(out, u)
		}
	}
	return out
}
