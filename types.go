package minsite

// Product is a catalog entry loaded from products.json. Everything beyond
// id/slug/name is optional in the data; rendering and search degrade around
// missing fields.
type Product struct {
	ID          string `json:"id"`
	Slug        string `json:"slug"`
	Name        string `json:"name"`
	Subtitle    string `json:"subtitle"`
	Description string `json:"description"`
	Type        string `json:"type"`

	Image  string   `json:"image"`
	Images []string `json:"images"`

	Applications     []string `json:"applications"`
	Grades           []string `json:"grades"`
	MeshSizes        []string `json:"meshSizes"`
	Packaging        []string `json:"packaging"`
	QualityStandards []string `json:"qualityStandards"`
	Certifications   []string `json:"certifications"`

	Purity    string `json:"purity"`
	Moisture  string `json:"moisture"`
	Origin    string `json:"origin"`
	LeadTime  string `json:"leadTime"`
	SpecSheet string `json:"specSheet"`
}

// PrimaryImage returns the first gallery image, falling back to the single
// image field. Empty when the product has no imagery at all.
func (p Product) PrimaryImage() string {
	if len(p.Images) > 0 {
		return p.Images[0]
	}
	return p.Image
}

// Gallery returns the ordered image list, normalizing the single-image case.
func (p Product) Gallery() []string {
	if len(p.Images) > 0 {
		return p.Images
	}
	if p.Image != "" {
		return []string{p.Image}
	}
	return nil
}

// Lite reports whether the product lacks the fields needed for the full
// detail view. Lite products route to the enquiry form instead.
func (p Product) Lite() bool {
	return p.PrimaryImage() == "" || p.Description == "" || len(p.Applications) == 0
}

// SiteMeta is the per-section display text document (meta.json): a nested
// key -> string/array map consumed verbatim by the views.
type SiteMeta map[string]any

// Section returns a nested section of the metadata document, or an empty map
// when the section is absent or the document never loaded.
func (m SiteMeta) Section(name string) map[string]any {
	if m == nil {
		return map[string]any{}
	}
	if s, ok := m[name].(map[string]any); ok {
		return s
	}
	return map[string]any{}
}

// Enquiry is a validated form submission handed to the enquiry sink.
type Enquiry struct {
	Kind     string // KindContact, KindProductEnquiry or KindSpecSheet
	Name     string
	Company  string
	Country  string
	DialCode string
	Contact  string // raw digits as entered
	Email    string
	Product  string
	Quantity string
	Message  string

	// FullContact is the dialing code concatenated with the raw digits.
	FullContact string
}

// Submission kinds carried on the enquiry payload.
const (
	KindContact        = "CONTACT"
	KindProductEnquiry = "PRODUCT_ENQUIRY"
	KindSpecSheet      = "SPEC_SHEET_DOWNLOAD"
)

// EnquirySink receives accepted form submissions. The bundled implementation
// is the SQLite-backed EnquiryStore.
type EnquirySink interface {
	Submit(Enquiry) error
}
