package minsite

import "testing"

func TestIsValidContact(t *testing.T) {
	cases := []struct {
		number string
		want   bool
	}{
		{"1234567890", true}, // the 9->0 step breaks the ascending run
		{"9876543210", true},
		{"98765 43210", true}, // separators are stripped before checking
		{"+91-98765-43210", true},
		{"123456", false}, // under seven digits
		{"12345", false},
		{"1111111", false}, // single repeated digit
		{"0000000000", false},
		{"1234567", false}, // unbroken ascending run
		{"0123456", false},
		{"", false},
		{"abcdefg", false}, // no digits at all
	}
	for _, c := range cases {
		if got := IsValidContact(c.number); got != c.want {
			t.Errorf("IsValidContact(%q) = %v, want %v", c.number, got, c.want)
		}
	}
}

func TestIsValidBusinessEmail(t *testing.T) {
	cases := []struct {
		email string
		want  bool
	}{
		{"buyer@acme-traders.com", true},
		{"r.sharma@orevale.example.in", true},
		{"  buyer@acme-traders.com  ", true}, // surrounding whitespace is fine
		{"not-an-email", false},
		{"buyer@", false},
		{"@acme.com", false},
		{"test@mailinator.com", false}, // disposable domain
		{"buyer@yopmail.com", false},
		{"noreply@anycorp.com", false}, // generic local part
		{"test@anycorp.com", false},
		{"admin@anycorp.com", false},
		{"aaaa@anycorp.com", false},  // repeated character local part
		{"12345@anycorp.com", false}, // all-numeric local part
	}
	for _, c := range cases {
		if got := IsValidBusinessEmail(c.email); got != c.want {
			t.Errorf("IsValidBusinessEmail(%q) = %v, want %v", c.email, got, c.want)
		}
	}
}

func validProductDraft() EnquiryForm {
	f := ProductEnquiryForm()
	f.Name = "R. Sharma"
	f.Country = "United Arab Emirates"
	f.Contact = "98765 43210"
	f.Email = "buyer@acme-traders.com"
	f.Product = "Bentonite"
	return f
}

func TestValidateAcceptsCompleteDraft(t *testing.T) {
	e, verr := validProductDraft().Validate()
	if verr != nil {
		t.Fatalf("valid draft rejected: %v", verr)
	}
	if e.Kind != KindProductEnquiry {
		t.Errorf("kind = %q", e.Kind)
	}
	if e.DialCode != "+971" {
		t.Errorf("dial code = %q", e.DialCode)
	}
	if e.Contact != "9876543210" {
		t.Errorf("contact should hold bare digits, got %q", e.Contact)
	}
	if e.FullContact != "+9719876543210" {
		t.Errorf("full contact = %q", e.FullContact)
	}
}

func TestValidateRequiredFields(t *testing.T) {
	f := validProductDraft()
	f.Country = " "
	_, verr := f.Validate()
	if verr == nil || verr.Category != "required" {
		t.Fatalf("blank required field should fail as required, got %v", verr)
	}
}

func TestValidateUnknownCountry(t *testing.T) {
	f := validProductDraft()
	f.Country = "Atlantis"
	if _, verr := f.Validate(); verr == nil {
		t.Fatal("unknown country should be rejected")
	}
}

func TestValidateContactBeforeEmail(t *testing.T) {
	// Both heuristics would fail; the contact check runs first and its
	// message is the single surfaced error.
	f := validProductDraft()
	f.Contact = "1111111"
	f.Email = "test@mailinator.com"
	_, verr := f.Validate()
	if verr == nil || verr.Category != "contact" {
		t.Fatalf("expected contact rejection, got %v", verr)
	}
}

func TestValidateEmailHeuristic(t *testing.T) {
	f := validProductDraft()
	f.Email = "noreply@anycorp.com"
	_, verr := f.Validate()
	if verr == nil || verr.Category != "email" {
		t.Fatalf("expected email rejection, got %v", verr)
	}
}

func TestValidateContactFormSkipsPhoneFields(t *testing.T) {
	// The general contact form has no country or phone; validation must not
	// demand them.
	f := ContactForm()
	f.Name = "R. Sharma"
	f.Email = "buyer@acme-traders.com"
	f.Message = "Please quote 20 MT of bentonite."
	e, verr := f.Validate()
	if verr != nil {
		t.Fatalf("contact draft rejected: %v", verr)
	}
	if e.Kind != KindContact {
		t.Errorf("kind = %q", e.Kind)
	}
	if e.FullContact != "" {
		t.Errorf("contact form should carry no phone, got %q", e.FullContact)
	}
}

func TestFormKinds(t *testing.T) {
	if ContactForm().Kind != KindContact {
		t.Error("contact form kind")
	}
	if ProductEnquiryForm().Kind != KindProductEnquiry {
		t.Error("product enquiry form kind")
	}
	if SpecSheetForm().Kind != KindSpecSheet {
		t.Error("spec sheet form kind")
	}
}
