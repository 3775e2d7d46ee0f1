package user

// AuthError signals a credential failure that must surface as 401, not 500.
type AuthError struct {
	Reason string
}

func (e AuthError) Error() string {
	return "authentication failed: " + e.Reason
}

// DuplicateEmailError signals a registration attempt with a taken address.
type DuplicateEmailError struct {
	Email string
}

func (e DuplicateEmailError) Error() string {
	return "an account with email " + e.Email + " already exists"
}
