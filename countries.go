package minsite

// Country pairs a display name with its ISO code and dialing prefix for the
// enquiry forms' country selector.
type Country struct {
	Name string
	Code string
	Dial string
}

// Countries is the selector list, ordered for display. Major importing
// markets first, then alphabetical.
var Countries = []Country{
	{"India", "IN", "+91"},
	{"United States", "US", "+1"},
	{"United Kingdom", "GB", "+44"},
	{"United Arab Emirates", "AE", "+971"},
	{"Saudi Arabia", "SA", "+966"},
	{"Qatar", "QA", "+974"},
	{"Kuwait", "KW", "+965"},
	{"Oman", "OM", "+968"},
	{"Bahrain", "BH", "+973"},
	{"Australia", "AU", "+61"},
	{"Bangladesh", "BD", "+880"},
	{"Belgium", "BE", "+32"},
	{"Brazil", "BR", "+55"},
	{"Canada", "CA", "+1"},
	{"China", "CN", "+86"},
	{"Egypt", "EG", "+20"},
	{"France", "FR", "+33"},
	{"Germany", "DE", "+49"},
	{"Indonesia", "ID", "+62"},
	{"Italy", "IT", "+39"},
	{"Japan", "JP", "+81"},
	{"Kenya", "KE", "+254"},
	{"Malaysia", "MY", "+60"},
	{"Mexico", "MX", "+52"},
	{"Nepal", "NP", "+977"},
	{"Netherlands", "NL", "+31"},
	{"New Zealand", "NZ", "+64"},
	{"Nigeria", "NG", "+234"},
	{"Philippines", "PH", "+63"},
	{"Poland", "PL", "+48"},
	{"Russia", "RU", "+7"},
	{"Singapore", "SG", "+65"},
	{"South Africa", "ZA", "+27"},
	{"South Korea", "KR", "+82"},
	{"Spain", "ES", "+34"},
	{"Sri Lanka", "LK", "+94"},
	{"Tanzania", "TZ", "+255"},
	{"Thailand", "TH", "+66"},
	{"Turkey", "TR", "+90"},
	{"Vietnam", "VN", "+84"},
}

// CountryByName looks up a selector entry by its display name.
func CountryByName(name string) (Country, bool) {
	for _, c := range Countries {
		if c.Name == name {
			return c, true
		}
	}
	return Country{}, false
}
