package minsite

import (
	"regexp"
	"strings"
)

// EnquiryForm is a draft form submission before validation. Required lists
// the field names that must be non-empty for this form variant.
type EnquiryForm struct {
	Kind     string
	Name     string
	Company  string
	Country  string
	Contact  string
	Email    string
	Product  string
	Quantity string
	Message  string

	Required []string
}

// ValidationError identifies the failing category of a rejected submission.
// Exactly one blocking message is surfaced per attempt.
type ValidationError struct {
	Category string // "required", "contact" or "email"
	Message  string
}

func (e *ValidationError) Error() string { return e.Message }

// ContactForm returns a draft for the general contact form.
func ContactForm() EnquiryForm {
	return EnquiryForm{Kind: KindContact, Required: []string{"name", "email", "message"}}
}

// ProductEnquiryForm returns a draft for a product quote request.
func ProductEnquiryForm() EnquiryForm {
	return EnquiryForm{Kind: KindProductEnquiry, Required: []string{"name", "country", "contact", "email", "product"}}
}

// SpecSheetForm returns a draft for the spec-sheet download gate.
func SpecSheetForm() EnquiryForm {
	return EnquiryForm{Kind: KindSpecSheet, Required: []string{"name", "country", "contact", "email", "product"}}
}

func (f EnquiryForm) field(name string) string {
	switch name {
	case "name":
		return f.Name
	case "company":
		return f.Company
	case "country":
		return f.Country
	case "contact":
		return f.Contact
	case "email":
		return f.Email
	case "product":
		return f.Product
	case "quantity":
		return f.Quantity
	case "message":
		return f.Message
	}
	return ""
}

// Validate checks the draft and assembles the submission payload. The
// contact number is concatenated with the selected country's dialing code.
// This is advisory spam filtering, not authentication or integrity
// enforcement.
func (f EnquiryForm) Validate() (Enquiry, *ValidationError) {
	for _, name := range f.Required {
		if strings.TrimSpace(f.field(name)) == "" {
			return Enquiry{}, &ValidationError{
				Category: "required",
				Message:  "Please fill all required fields.",
			}
		}
	}
	dial := ""
	if f.Country != "" {
		country, ok := CountryByName(f.Country)
		if !ok {
			return Enquiry{}, &ValidationError{
				Category: "required",
				Message:  "Please select a valid country.",
			}
		}
		dial = country.Dial
	}
	if f.Contact != "" && !IsValidContact(f.Contact) {
		return Enquiry{}, &ValidationError{
			Category: "contact",
			Message:  "Please enter a valid contact number.",
		}
	}
	if !IsValidBusinessEmail(f.Email) {
		return Enquiry{}, &ValidationError{
			Category: "email",
			Message:  "Please enter a valid business email.",
		}
	}
	digits := stripNonDigits(f.Contact)
	return Enquiry{
		Kind:        f.Kind,
		Name:        strings.TrimSpace(f.Name),
		Company:     strings.TrimSpace(f.Company),
		Country:     f.Country,
		DialCode:    dial,
		Contact:     digits,
		Email:       strings.TrimSpace(f.Email),
		Product:     strings.TrimSpace(f.Product),
		Quantity:    strings.TrimSpace(f.Quantity),
		Message:     strings.TrimSpace(f.Message),
		FullContact: dial + digits,
	}, nil
}

var nonDigit = regexp.MustCompile(`\D`)

func stripNonDigits(s string) string {
	return nonDigit.ReplaceAllString(s, "")
}

// IsValidContact applies the heuristic phone check: at least 7 digits after
// stripping separators, not a single repeated digit, and not one unbroken
// ascending run like "1234567".
func IsValidContact(number string) bool {
	digits := stripNonDigits(number)
	if len(digits) < 7 {
		return false
	}
	if allSameDigit(digits) {
		return false
	}
	if ascendingRun(digits) {
		return false
	}
	return true
}

func allSameDigit(digits string) bool {
	for i := 1; i < len(digits); i++ {
		if digits[i] != digits[0] {
			return false
		}
	}
	return true
}

// ascendingRun reports whether every digit is exactly one greater than its
// predecessor ("0123456", "1234567"). "1234567890" breaks at 9->0 and passes.
func ascendingRun(digits string) bool {
	for i := 1; i < len(digits); i++ {
		if digits[i] != digits[i-1]+1 {
			return false
		}
	}
	return true
}

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// disposableDomains are throwaway mail providers rejected outright.
var disposableDomains = map[string]struct{}{
	"mailinator.com":    {},
	"guerrillamail.com": {},
	"10minutemail.com":  {},
	"tempmail.com":      {},
	"temp-mail.org":     {},
	"yopmail.com":       {},
	"trashmail.com":     {},
	"sharklasers.com":   {},
	"getnada.com":       {},
	"dispostable.com":   {},
	"maildrop.cc":       {},
	"fakeinbox.com":     {},
	"throwawaymail.com": {},
}

// genericLocalParts are mailbox prefixes that never belong to a real buyer.
var genericLocalParts = map[string]struct{}{
	"test":       {},
	"testing":    {},
	"tester":     {},
	"demo":       {},
	"sample":     {},
	"example":    {},
	"admin":      {},
	"noreply":    {},
	"no-reply":   {},
	"donotreply": {},
	"support":    {},
	"spam":       {},
	"fake":       {},
	"asdf":       {},
	"abc":        {},
	"xyz":        {},
	"user":       {},
	"mail":       {},
	"email":      {},
}

// IsValidBusinessEmail applies the heuristic business-email check: syntactic
// shape, no disposable domain, no generic local part, and a local part that
// is neither one repeated character nor all digits.
func IsValidBusinessEmail(email string) bool {
	email = strings.TrimSpace(email)
	if !emailPattern.MatchString(email) {
		return false
	}
	at := strings.LastIndexByte(email, '@')
	local := strings.ToLower(email[:at])
	domain := strings.ToLower(email[at+1:])
	if _, ok := disposableDomains[domain]; ok {
		return false
	}
	if _, ok := genericLocalParts[local]; ok {
		return false
	}
	if allSameChar(local) {
		return false
	}
	if allDigits(local) {
		return false
	}
	return true
}

func allSameChar(s string) bool {
	for i := 1; i < len(s); i++ {
		if s[i] != s[0] {
			return false
		}
	}
	return len(s) > 0
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return len(s) > 0
}
