package models

// RegistrationData is the local signup payload for either role.
type RegistrationData struct {
	Username string
	Name     string
	Password string

	// Lawyer only.
	Profile LawyerProfile
}
