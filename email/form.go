package email

// User-facing field error messages.
const (
	EmailErrorMessage   = "Please enter a valid email address."
	ConsentErrorMessage = "Please accept the privacy policy to subscribe."
)

// FieldErrors holds one human-readable message per failing form field.
//
// Both fields may be set at once; each is retrievable independently so the
// form can render errors inline next to the offending input. A nil
// *FieldErrors means the form passed validation.
type FieldErrors struct {
	EmailError   string
	ConsentError string
}

// FormValidator wraps the Validate method.
//
// Validate checks a signup form's email address and GDPR consent flag. The
// return value will be nil if both inputs are valid.
type FormValidator interface {
	Validate(address string, gdprConsent bool) *FieldErrors
}

// ProdFormValidator is the production implementation of FormValidator.
//
// Consent must be exactly true; an unchecked box is a validation failure in
// its own right, not a missing default.
type ProdFormValidator struct{}

func (v ProdFormValidator) Validate(
	address string, gdprConsent bool,
) *FieldErrors {
	errs := &FieldErrors{}

	if err := ValidateAddress(address); err != nil {
		errs.EmailError = EmailErrorMessage
	}
	if !gdprConsent {
		errs.ConsentError = ConsentErrorMessage
	}

	if errs.EmailError == "" && errs.ConsentError == "" {
		return nil
	}
	return errs
}
