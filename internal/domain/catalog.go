package domain

import "strings"

// StateCode and StateName identify the single supported state.
const (
	StateCode = "18"
	StateName = "Assam"
)

// District is one entry of the static district catalog.
type District struct {
	Code         string `json:"district_code"`
	Name         string `json:"district_name"`
	NameAssamese string `json:"district_name_assamese,omitempty"`
}

// Catalog is the fixed, ordered district table for the supported state.
// It is loaded once at process start and never mutated; resolution scans it
// in declaration order.
type Catalog struct {
	districts []District
}

// NewAssamCatalog builds the catalog of Assam districts with the 4-digit
// codes the upstream dataset's district_code filter understands.
func NewAssamCatalog() *Catalog {
	return &Catalog{districts: []District{
		{Code: "0424", Name: "Baksa", NameAssamese: "बक्सा"},
		{Code: "0405", Name: "Barpeta", NameAssamese: "बरपेटा"},
		{Code: "0428", Name: "Biswanath", NameAssamese: "बिश्वनाथ"},
		{Code: "0403", Name: "Bongaigaon", NameAssamese: "बोंगाईगांव"},
		{Code: "0423", Name: "Cachar", NameAssamese: "कछार"},
		{Code: "0430", Name: "Charaideo", NameAssamese: "चराइदेव"},
		{Code: "0408", Name: "Darrang", NameAssamese: "दरांग"},
		{Code: "0411", Name: "Dhemaji", NameAssamese: "धेमा जी"},
		{Code: "0401", Name: "Dhubri", NameAssamese: "धुबरी"},
		{Code: "0410", Name: "Dima Hasao", NameAssamese: "डिमा हासाओ"},
		{Code: "0404", Name: "Goalpara", NameAssamese: "गोलपाड़ा"},
		{Code: "0414", Name: "Golaghat", NameAssamese: "गोलाघाट"},
		{Code: "0422", Name: "Hailakandi", NameAssamese: "हैलाकांडी"},
		{Code: "0415", Name: "Jorhat", NameAssamese: "जोरहाट"},
		// Kamrup Metropolitan must precede Kamrup: resolution takes the first
		// catalog name found inside the free-text input, so the longer name
		// has to be tried first.
		{Code: "0426", Name: "Kamrup Metropolitan", NameAssamese: "कामरूप महानगरीय"},
		{Code: "0407", Name: "Kamrup", NameAssamese: "कामरूप"},
		{Code: "0419", Name: "Karimganj", NameAssamese: "करीमगंज"},
		{Code: "0420", Name: "Kokrajhar", NameAssamese: "कोकराझार"},
		{Code: "0432", Name: "Majuli", NameAssamese: "माजुली"},
		{Code: "0412", Name: "Morigaon", NameAssamese: "मोरीगांव"},
		{Code: "0413", Name: "Nagaon", NameAssamese: "नगांव"},
		{Code: "0425", Name: "Sivasagar", NameAssamese: "शिवसागर"},
		{Code: "0409", Name: "Sonitpur", NameAssamese: "शोणितपुर"},
		{Code: "0418", Name: "Tinsukia", NameAssamese: "तिनसुकिया"},
		{Code: "0427", Name: "Udalguri", NameAssamese: "उदलगुड़ी"},
		// Same ordering constraint as Kamrup Metropolitan / Kamrup.
		{Code: "0434", Name: "West Karbi Anglong", NameAssamese: "पश्चिम कार्बी आंगलोंग"},
		{Code: "0417", Name: "Karbi Anglong", NameAssamese: "कार्बी आंगलोंग"},
	}}
}

// Districts returns a copy of the catalog entries in declaration order.
func (c *Catalog) Districts() []District {
	out := make([]District, len(c.districts))
	copy(out, c.districts)
	return out
}

// Len reports the number of districts in the catalog.
func (c *Catalog) Len() int {
	return len(c.districts)
}

// MatchName finds the first district (in declaration order) whose canonical
// name appears, case-insensitively, as a substring of the given free-text
// name. First match wins, not best match; callers accepting that imprecision
// should list more specific names earlier.
func (c *Catalog) MatchName(name string) (District, bool) {
	lower := strings.ToLower(name)
	if lower == "" {
		return District{}, false
	}
	for _, d := range c.districts {
		if strings.Contains(lower, strings.ToLower(d.Name)) {
			return d, true
		}
	}
	return District{}, false
}

// AliasTable maps lowercased city names to canonical district names. Cities
// reported by geocoding providers are often not district names themselves
// (Guwahati sits in Kamrup Metropolitan), so the table improves resolution
// precision for the larger towns.
type AliasTable map[string]string

// AssamCityAliases returns the city-to-district alias table.
func AssamCityAliases() AliasTable {
	return AliasTable{
		"guwahati":   "Kamrup Metropolitan",
		"dibrugarh":  "Dibrugarh",
		"silchar":    "Cachar",
		"tezpur":     "Sonitpur",
		"jorhat":     "Jorhat",
		"nagaon":     "Nagaon",
		"barpeta":    "Barpeta",
		"bongaigaon": "Bongaigaon",
		"nalbari":    "Nalbari",
		"tinsukia":   "Tinsukia",
		"golaghat":   "Golaghat",
	}
}

// Lookup resolves a city name to its district name, case-insensitively.
func (t AliasTable) Lookup(city string) (string, bool) {
	name, ok := t[strings.ToLower(city)]
	return name, ok
}
