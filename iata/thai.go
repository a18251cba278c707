package iata

import "strings"

// cityAliases expands a textual city name to the set of airport codes that
// serve it. Only Bangkok is multi-airport in the current route set (§4.5
// step 1); everything else resolves to a single code via cityCodes.
var cityAliases = map[string][]string{
	"bangkok": {"BKK", "DMK"},
}

// cityCodes maps a single-airport city name (or a bare IATA code) to its
// code, used for the common case and as a fallback for cityAliases misses.
var cityCodes = map[string]string{
	"bangkok":     "BKK",
	"phuket":      "HKT",
	"chiang mai":  "CNX",
	"chiang rai":  "CEI",
	"krabi":       "KBV",
	"surat thani": "URT",
	"koh samui":   "USM",
	"ko samui":    "USM",
	"hat yai":     "HDY",
	"u-tapao":     "UTP",
	"pattaya":     "UTP",
	"rayong":      "UTP",
}

// provinceByAirport maps an airport code to the Thai province it serves,
// used by the score aggregator to locate the weather signal for a
// destination (§4.3). Codes absent from this map have no province mapping.
var provinceByAirport = map[string]string{
	"BKK": "Bangkok",
	"DMK": "Bangkok",
	"HKT": "Phuket",
	"CNX": "Chiang Mai",
	"CEI": "Chiang Mai",
	"KBV": "Krabi",
	"URT": "Surat Thani",
	"USM": "Surat Thani",
	"UTP": "Chon Buri",
}

// ResolveLocation converts free-form input (an IATA code or a city name)
// into the set of airport codes serving it. A 3-letter input is treated as
// a literal code if IATATimeZone recognizes it. Returns an empty slice if
// the location cannot be resolved (§4.5 step 1).
func ResolveLocation(input string) []string {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return nil
	}

	upper := strings.ToUpper(trimmed)
	if len(upper) == 3 {
		if loc := IATATimeZone(upper); loc.Tz != "" && loc.Tz != "Not supported IATA Code" {
			return []string{upper}
		}
	}

	lower := strings.ToLower(trimmed)
	if codes, ok := cityAliases[lower]; ok {
		out := make([]string, len(codes))
		copy(out, codes)
		return out
	}
	if code, ok := cityCodes[lower]; ok {
		return []string{code}
	}
	return nil
}

// ProvinceForAirport returns the Thai province serving an airport code and
// whether a mapping exists. A miss means the weather signal for that
// destination is treated as neutral (§4.3).
func ProvinceForAirport(code string) (string, bool) {
	province, ok := provinceByAirport[strings.ToUpper(code)]
	return province, ok
}
