// Package entities contains core business entities.
package entities

// User is a domain representation of a managed account.
type User struct {
	ID    int64
	Name  string
	Email string
}

// NewUser carries the fields of a user that is not stored yet.
type NewUser struct {
	Name  string
	Email string
}

// UserPatch is a partial update. Nil fields are left untouched.
type UserPatch struct {
	Name  *string
	Email *string
}

// Empty reports whether the patch changes nothing.
func (p UserPatch) Empty() bool {
	return p.Name == nil && p.Email == nil
}

// Apply returns u with the supplied fields overwritten.
func (p UserPatch) Apply(u User) User {
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.Email != nil {
		u.Email = *p.Email
	}
	return u
}
