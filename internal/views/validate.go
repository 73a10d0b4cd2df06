package views

import (
	"errors"
	"regexp"
)

// Pre-flight checks only; the server re-validates everything. A non-nil
// error short-circuits the request and its message is shown to the user.

var (
	phonePattern  = regexp.MustCompile(`^\d{10}$`)
	postalPattern = regexp.MustCompile(`^\d{6}$`)
)

const minPasswordLen = 6

func validatePhone(phone string) error {
	if !phonePattern.MatchString(phone) {
		return errors.New("Mobile number must be exactly 10 digits")
	}
	return nil
}

func validatePostalCode(code string) error {
	if !postalPattern.MatchString(code) {
		return errors.New("Pincode must be exactly 6 digits")
	}
	return nil
}

func validatePassword(password string) error {
	if len(password) < minPasswordLen {
		return errors.New("Password must be at least 6 characters")
	}
	return nil
}

func validateAddressForm(f AddressForm) error {
	if f.FullName == "" || f.Phone == "" || f.AddressLine == "" ||
		f.City == "" || f.State == "" || f.PostalCode == "" || f.Country == "" {
		return errors.New("All address fields are mandatory")
	}
	if err := validatePhone(f.Phone); err != nil {
		return err
	}
	return validatePostalCode(f.PostalCode)
}

func validateSignup(name, email, phone, password string) error {
	if name == "" || email == "" || phone == "" || password == "" {
		return errors.New("All fields are mandatory")
	}
	if err := validatePhone(phone); err != nil {
		return err
	}
	return validatePassword(password)
}
