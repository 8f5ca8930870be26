package checkout

import (
	"regexp"
	"sort"
	"strings"

	"endlessvault/models"
)

// Payment methods offered at checkout. Online payment is listed in the UI
// but permanently unavailable; only cash on delivery is accepted.
const (
	PaymentCOD    = "Cash on Delivery"
	PaymentOnline = "Online Payment"
)

var (
	lettersAndSpaces = regexp.MustCompile(`^[a-zA-Z\s]+$`)
	phonePattern     = regexp.MustCompile(`^[6-9]\d{9}$`)
	pincodePattern   = regexp.MustCompile(`^[1-9][0-9]{5}$`)
)

// FieldErrors maps form field names to user-facing validation messages.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	keys := make([]string, 0, len(e))
	for k := range e {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(e))
	for _, k := range keys {
		parts = append(parts, k+": "+e[k])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// ValidateAddress checks every shipping field. Landmark is optional free
// text and never fails.
func ValidateAddress(a models.Address) FieldErrors {
	errs := FieldErrors{}

	if msg := validateFullName(a.FullName); msg != "" {
		errs["fullName"] = msg
	}
	if msg := validatePhone(a.Phone); msg != "" {
		errs["phone"] = msg
	}
	if msg := validateStreet(a.Street); msg != "" {
		errs["street"] = msg
	}
	if msg := validatePlace(a.City, "City", "city name"); msg != "" {
		errs["city"] = msg
	}
	if msg := validatePlace(a.State, "State", "state name"); msg != "" {
		errs["state"] = msg
	}
	if msg := validatePincode(a.Pincode); msg != "" {
		errs["pincode"] = msg
	}

	return errs
}

// ValidatePayment accepts only cash on delivery. The online option stays
// non-selectable until a gateway exists.
func ValidatePayment(method string) string {
	switch method {
	case PaymentCOD:
		return ""
	case PaymentOnline:
		return "Online payment is currently unavailable"
	default:
		return "Please select a payment method"
	}
}

func validateFullName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return "Full name is required"
	}
	if len(name) < 2 {
		return "Name must be at least 2 characters"
	}
	if !lettersAndSpaces.MatchString(name) {
		return "Name can only contain letters and spaces"
	}
	return ""
}

func validatePhone(phone string) string {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return "Phone number is required"
	}
	if !phonePattern.MatchString(strings.ReplaceAll(phone, " ", "")) {
		return "Enter a valid 10-digit Indian mobile number"
	}
	return ""
}

func validateStreet(street string) string {
	street = strings.TrimSpace(street)
	if street == "" {
		return "Street address is required"
	}
	if len(street) < 5 {
		return "Please enter a complete address"
	}
	return ""
}

func validatePlace(value, label, noun string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return label + " is required"
	}
	if len(value) < 2 {
		return "Enter a valid " + noun
	}
	if !lettersAndSpaces.MatchString(value) {
		return label + " name can only contain letters and spaces"
	}
	return ""
}

func validatePincode(pincode string) string {
	pincode = strings.TrimSpace(pincode)
	if pincode == "" {
		return "PIN code is required"
	}
	if !pincodePattern.MatchString(pincode) {
		return "Enter a valid 6-digit PIN code"
	}
	return ""
}
