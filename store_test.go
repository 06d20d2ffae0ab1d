package minsite

import (
	"path/filepath"
	"testing"
)

func setupTestStore(t *testing.T) *EnquiryStore {
	t.Helper()
	s, err := NewEnquiryStore(filepath.Join(t.TempDir(), "enquiries.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func sampleEnquiry() Enquiry {
	return Enquiry{
		Kind:        KindProductEnquiry,
		Name:        "R. Sharma",
		Company:     "Acme Traders",
		Country:     "United Arab Emirates",
		DialCode:    "+971",
		Contact:     "501234567",
		FullContact: "+971501234567",
		Email:       "buyer@acme-traders.com",
		Product:     "Bentonite",
		Quantity:    "20 MT",
		Message:     "Please share API 13A specs and FOB pricing.",
	}
}

func TestNewEnquiryStore(t *testing.T) {
	s := setupTestStore(t)
	if s.db == nil {
		t.Fatal("db should not be nil")
	}
}

func TestSubmitAndListEnquiries(t *testing.T) {
	s := setupTestStore(t)

	e := sampleEnquiry()
	if err := s.Submit(e); err != nil {
		t.Fatalf("Submit failed: %v", err)
	}

	rows, err := s.ListEnquiries()
	if err != nil {
		t.Fatalf("ListEnquiries failed: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	got := rows[0]
	if got.ID == 0 {
		t.Error("row should have an id")
	}
	if got.CreatedAt == "" {
		t.Error("row should have a timestamp")
	}
	if got.Kind != e.Kind || got.Name != e.Name || got.Email != e.Email {
		t.Errorf("row mismatch: %+v", got)
	}
	if got.FullContact != "+971501234567" {
		t.Errorf("full contact = %q", got.FullContact)
	}
	if got.Product != "Bentonite" || got.Quantity != "20 MT" {
		t.Errorf("product fields mismatch: %+v", got)
	}
}

func TestListEnquiriesNewestFirst(t *testing.T) {
	s := setupTestStore(t)

	first := sampleEnquiry()
	first.Name = "First"
	second := sampleEnquiry()
	second.Name = "Second"

	if err := s.Submit(first); err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	if err := s.Submit(second); err != nil {
		t.Fatalf("Submit failed: %v", err)
	}

	rows, err := s.ListEnquiries()
	if err != nil {
		t.Fatalf("ListEnquiries failed: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0].Name != "Second" || rows[1].Name != "First" {
		t.Errorf("rows not newest first: %s, %s", rows[0].Name, rows[1].Name)
	}
}

func TestSubmitMinimalContactEnquiry(t *testing.T) {
	s := setupTestStore(t)

	e := Enquiry{
		Kind:    KindContact,
		Name:    "R. Sharma",
		Email:   "buyer@acme-traders.com",
		Message: "General question.",
	}
	if err := s.Submit(e); err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	rows, err := s.ListEnquiries()
	if err != nil {
		t.Fatalf("ListEnquiries failed: %v", err)
	}
	if rows[0].Country != "" || rows[0].Product != "" {
		t.Errorf("optional fields should stay empty: %+v", rows[0])
	}
}
