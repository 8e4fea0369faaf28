package contract

// IValidator validates user-supplied credentials before they reach the store.
type IValidator interface {
	ValidateEmail(email string) error
	ValidatePasswordStrength(password string) error
}
