package ingest

// provinceCoordinates gives each configured province a representative
// latitude/longitude for the weather APIs, taken from the IATA coordinates
// of its primary airport.
var provinceCoordinates = map[string]struct{ Lat, Lon float64 }{
	"Bangkok":     {13.6811, 100.747002},
	"Phuket":      {8.1132, 98.316902},
	"Chiang Mai":  {18.7668, 98.962601},
	"Krabi":       {8.09912, 98.986198},
	"Surat Thani": {9.1326, 99.135597},
	"Chon Buri":   {12.6799, 101.004997}, // U-Tapao (UTP) coordinates, nearest served airport
}

// CoordinatesForProvince returns the configured province's representative
// coordinates and whether it is known.
func CoordinatesForProvince(province string) (lat, lon float64, ok bool) {
	c, ok := provinceCoordinates[province]
	return c.Lat, c.Lon, ok
}
