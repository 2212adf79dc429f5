package dto

import "time"

// SignInRequest carries the credential exchange input.
type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate reports offending fields the way the login form does.
func (r *SignInRequest) Validate() FieldErrors {
	errs := FieldErrors{}
	if r.Email == "" {
		errs["email"] = "Email is required"
	}
	if r.Password == "" {
		errs["password"] = "Password is required"
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// SessionResponse describes the gate's current session, if any.
type SessionResponse struct {
	State     string     `json:"state"`
	Email     string     `json:"email,omitempty"`
	Token     string     `json:"token,omitempty"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
}
