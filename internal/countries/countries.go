package countries

// ISO 3166-1 alpha-2 codes for the countries the app serves. The table is
// intentionally flat so both directions of the lookup stay trivial.
var codeByName = map[string]string{
	"Albania":                "AL",
	"Argentina":              "AR",
	"Armenia":                "AM",
	"Australia":              "AU",
	"Austria":                "AT",
	"Azerbaijan":             "AZ",
	"Belarus":                "BY",
	"Belgium":                "BE",
	"Bosnia and Herzegovina": "BA",
	"Brazil":                 "BR",
	"Bulgaria":               "BG",
	"Cambodia":               "KH",
	"Canada":                 "CA",
	"Chile":                  "CL",
	"China":                  "CN",
	"Colombia":               "CO",
	"Croatia":                "HR",
	"Cyprus":                 "CY",
	"Czechia":                "CZ",
	"Denmark":                "DK",
	"Egypt":                  "EG",
	"Estonia":                "EE",
	"Finland":                "FI",
	"France":                 "FR",
	"Georgia":                "GE",
	"Germany":                "DE",
	"Greece":                 "GR",
	"Hungary":                "HU",
	"Iceland":                "IS",
	"India":                  "IN",
	"Indonesia":              "ID",
	"Ireland":                "IE",
	"Israel":                 "IL",
	"Italy":                  "IT",
	"Japan":                  "JP",
	"Kazakhstan":             "KZ",
	"Kenya":                  "KE",
	"Latvia":                 "LV",
	"Liechtenstein":          "LI",
	"Lithuania":              "LT",
	"Luxembourg":             "LU",
	"Malaysia":               "MY",
	"Malta":                  "MT",
	"Mexico":                 "MX",
	"Moldova":                "MD",
	"Monaco":                 "MC",
	"Mongolia":               "MN",
	"Montenegro":             "ME",
	"Morocco":                "MA",
	"Nepal":                  "NP",
	"Netherlands":            "NL",
	"New Zealand":            "NZ",
	"Nigeria":                "NG",
	"North Macedonia":        "MK",
	"Norway":                 "NO",
	"Pakistan":               "PK",
	"Peru":                   "PE",
	"Philippines":            "PH",
	"Poland":                 "PL",
	"Portugal":               "PT",
	"Romania":                "RO",
	"Russia":                 "RU",
	"Serbia":                 "RS",
	"Singapore":              "SG",
	"Slovakia":               "SK",
	"Slovenia":               "SI",
	"South Africa":           "ZA",
	"South Korea":            "KR",
	"Spain":                  "ES",
	"Sri Lanka":              "LK",
	"Sweden":                 "SE",
	"Switzerland":            "CH",
	"Thailand":               "TH",
	"Turkey":                 "TR",
	"Ukraine":                "UA",
	"United Arab Emirates":   "AE",
	"United Kingdom":         "GB",
	"United States":          "US",
	"Uzbekistan":             "UZ",
	"Vietnam":                "VN",}

var nameByCode = func() map[string]string {
	m := make(map[string]string, len(codeByName))
	for name, code := range codeByName {
		m[code] = name
	}
	return m
}()

// Countries applying the common 90/180-day short-stay rule.
var schengenCodes = map[string]struct{}{
	"AT": {}, "BE": {}, "BG": {}, "HR": {}, "CZ": {}, "DK": {}, "EE": {},
	"FI": {}, "FR": {}, "DE": {}, "GR": {}, "HU": {}, "IS": {}, "IT": {},
	"LV": {}, "LI": {}, "LT": {}, "LU": {}, "MT": {}, "NL": {}, "NO": {},
	"PL": {}, "PT": {}, "RO": {}, "SK": {}, "SI": {}, "ES": {}, "SE": {},
	"CH": {},
}

// Name returns the country name for an alpha-2 code.
func Name(code string) (string, bool) {
	name, ok := nameByCode[code]
	return name, ok
}

// IsSchengen reports whether the alpha-2 code belongs to the Schengen zone.
func IsSchengen(code string) bool {
	_, ok := schengenCodes[code]
	return ok
}
