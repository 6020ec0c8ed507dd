package service

// CodeGenerator produces the short numeric secrets handed to users.
type CodeGenerator interface {
	// GenerateOTP returns a six digit one-time password.
	GenerateOTP() (string, error)

	// GenerateSecurityCode returns a device registration code in [10000, 99999].
	GenerateSecurityCode() (int, error)
}
