package store

import "fmt"

type (
	NotFound struct {
		Kind string
		ID   int64
	}

	UserNotFound struct {
		Email string
	}

	DuplicateEmail struct {
		Email string
	}

	DuplicateCategory struct {
		Name   string
		UserID int64
	}
)

func (n NotFound) Error() string {
	return fmt.Sprintf("%v %v not found", n.Kind, n.ID)
}

func (u UserNotFound) Error() string {
	return fmt.Sprintf("no user registered with email %v", u.Email)
}

func (d DuplicateEmail) Error() string {
	return fmt.Sprintf("email %v is already registered", d.Email)
}

func (d DuplicateCategory) Error() string {
	return fmt.Sprintf("category %v already exists for user %v", d.Name, d.UserID)
}
