package model

type Credentials struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type Profile struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// User is keyed by login email in the store. The profile email may be
// edited independently of the login email.
type User struct {
	Email    string
	Password string
	Profile  Profile
}

type ProfileUpdate struct {
	Name  string `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Email string `json:"email,omitempty" validate:"omitempty,email"`
}

type Item struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Price int    `json:"price"`
}
