// Package domain defines the records persisted by the application.
package domain

// User is a registered account. Username is the identity key; the email is
// stored encrypted (ivHex:cipherHex) and the password as a bcrypt hash.
// Users are immutable after registration — there are no edit/delete routes.
type User struct {
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	Username       string `json:"username"`
	Email          string `json:"email"`
	Password       string `json:"password"`
	ProfilePicture string `json:"profilePicture,omitempty"`
}

// UserView is the per-request view-model derived from the session username
// plus the stored User record. It carries only fields safe to hand to views.
type UserView struct {
	FirstName      string
	Username       string
	ProfilePicture string
}

// View builds the public view-model for u.
func (u *User) View() *UserView {
	picture := u.ProfilePicture
	if picture == "" {
		picture = "/public/images/test.jpg"
	}
	return &UserView{
		FirstName:      u.FirstName,
		Username:       u.Username,
		ProfilePicture: picture,
	}
}
