// Package regions holds the hand-maintained constituency to region table.
package regions

import (
	"sort"

	"regions/internal/models"
)

// constituencyRegions returns the table contents. Names match exactly as they
// appear in election result files, including historical constituencies that
// no longer exist. Regions follow the URA Master Plan grouping.
func constituencyRegions() map[string]models.Region {
	return map[string]models.Region{
		// North
		"Ang Mo Kio":        models.RegionNorth,
		"Marsiling-Yew Tee": models.RegionNorth,
		"Nee Soon":          models.RegionNorth,
		"Sembawang":         models.RegionNorth,
		"Yishun":            models.RegionNorth,
		"Kebun Baru":        models.RegionNorth,
		"Sembawang West":    models.RegionNorth,
		"Thomson":           models.RegionNorth,
		"Seletar":           models.RegionNorth,
		"Nee Soon Central":  models.RegionNorth,
		"Nee Soon South":    models.RegionNorth,
		"Nee Soon East":     models.RegionNorth,
		"Teck Ghee":         models.RegionNorth,
		"Cheng San":         models.RegionNorth,
		"Chong Boon":        models.RegionNorth, // part of Ang Mo Kio area

		// North-East
		"Pasir Ris-Punggol": models.RegionNorthEast,
		"Punggol East":      models.RegionNorthEast,
		"Sengkang":          models.RegionNorthEast,
		"Tampines":          models.RegionNorthEast,
		"Punggol West":      models.RegionNorthEast,
		"Sengkang West":     models.RegionNorthEast,
		"Jalan Kayu":        models.RegionNorthEast,
		"Punggol":           models.RegionNorthEast,
		"Tampines Changkat": models.RegionNorthEast,
		"Yio Chu Kang":      models.RegionNorthEast,
		"Upper Serangoon":   models.RegionNorthEast,
		"Paya Lebar":        models.RegionNorthEast,
		"Serangoon Gardens": models.RegionNorthEast,
		"Punggol-Tampines":  models.RegionNorthEast,
		"Serangoon":         models.RegionNorthEast,
		"Pasir Ris":         models.RegionNorthEast,
		"Eunos":             models.RegionNorthEast,
		"Braddell Heights":  models.RegionNorthEast, // near Serangoon area
		"Bo Wen":            models.RegionNorthEast, // was in Serangoon area

		// East
		"Aljunied":                       models.RegionEast,
		"Bedok":                          models.RegionEast,
		"Changi-Simei":                   models.RegionEast,
		"East Coast":                     models.RegionEast,
		"Fengshan":                       models.RegionEast,
		"Hougang":                        models.RegionEast,
		"Marine Parade":                  models.RegionEast,
		"Marine Parade-Braddell Heights": models.RegionEast,
		"Pasir Ris-Changi":               models.RegionEast,
		"Joo Chiat":                      models.RegionEast,
		"Siglap":                         models.RegionEast,
		"Changi":                         models.RegionEast,
		"Katong":                         models.RegionEast,
		"Kampong Chai Chee":              models.RegionEast,
		"Geylang":                        models.RegionEast,
		"Geylang East":                   models.RegionEast,
		"Geylang Serai":                  models.RegionEast,
		"Geylang West":                   models.RegionEast,
		"Ulu Bedok":                      models.RegionEast,
		"Kaki Bukit":                     models.RegionEast,
		"Kampong Ubi":                    models.RegionEast,
		"Tanah Merah":                    models.RegionEast,
		"Kampong Kembangan":              models.RegionEast, // near Kaki Bukit area

		// Central
		"Bishan-Toa Payoh":     models.RegionCentral,
		"Bukit Timah":          models.RegionCentral,
		"Holland-Bukit Timah":  models.RegionCentral,
		"Jalan Besar":          models.RegionCentral,
		"Kallang":              models.RegionCentral,
		"MacPherson":           models.RegionCentral,
		"Marymount":            models.RegionCentral,
		"Moulmein":             models.RegionCentral,
		"Mountbatten":          models.RegionCentral,
		"Potong Pasir":         models.RegionCentral,
		"Radin Mas":            models.RegionCentral,
		"Tanjong Pagar":        models.RegionCentral,
		"Toa Payoh":            models.RegionCentral,
		"Cairnhill":            models.RegionCentral,
		"Whampoa":              models.RegionCentral,
		"Queenstown":           models.RegionCentral,
		"Kampong Glam":         models.RegionCentral,
		"Rochore":              models.RegionCentral,
		"River Valley":         models.RegionCentral,
		"Telok Ayer":           models.RegionCentral,
		"Tanglin":              models.RegionCentral,
		"Stamford":             models.RegionCentral,
		"Bras Basah":           models.RegionCentral,
		"Crawford":             models.RegionCentral,
		"Farrer Park":          models.RegionCentral,
		"Kampong Kapor":        models.RegionCentral,
		"Havelock":             models.RegionCentral,
		"Hong Lim":             models.RegionCentral,
		"Kreta Ayer":           models.RegionCentral,
		"Tiong Bahru":          models.RegionCentral,
		"Boon Teck":            models.RegionCentral,
		"Kim Keat":             models.RegionCentral,
		"Kim Seng":             models.RegionCentral,
		"Sepoy Lines":          models.RegionCentral,
		"Kreta Ayer - Tanglin": models.RegionCentral,
		"Moulmein-Kallang":     models.RegionCentral,
		"Henderson":            models.RegionCentral,
		"Kolam Ayer":           models.RegionCentral,
		"Pasir Panjang":        models.RegionCentral,
		"Anson":                models.RegionCentral, // was in the central business district area
		"Southern Islands":     models.RegionCentral, // Sentosa, St John's Island, Kusu Island

		// West
		"Bukit Batok":             models.RegionWest,
		"Bukit Panjang":           models.RegionWest,
		"Choa Chu Kang":           models.RegionWest,
		"Chua Chu Kang":           models.RegionWest,
		"Holland-Bukit Panjang":   models.RegionWest,
		"Hong Kah North":          models.RegionWest,
		"Jurong":                  models.RegionWest,
		"Pioneer":                 models.RegionWest,
		"Tuas":                    models.RegionWest,
		"West Coast":              models.RegionWest,
		"Bukit Gombak":            models.RegionWest,
		"Jurong Central":          models.RegionWest,
		"Jurong East-Bukit Batok": models.RegionWest,
		"West Coast-Jurong West":  models.RegionWest,
		"Yuhua":                   models.RegionWest,
		"Delta":                   models.RegionWest,
		"Telok Blangah":           models.RegionWest,
		"Ulu Pandan":              models.RegionWest,
		"Alexandra":               models.RegionWest,
		"Bukit Ho Swee":           models.RegionWest,
		"Bukit Merah":             models.RegionWest,
		"Brickworks":              models.RegionWest,
		"Clementi":                models.RegionWest,
		"Ayer Rajah":              models.RegionWest,
		"Boon Lay":                models.RegionWest,
		"Buona Vista":             models.RegionWest,
		"Hong Kah":                models.RegionWest,
		"Khe Bong":                models.RegionWest,
		"Kuo Chuan":               models.RegionWest,
		"Leng Kee":                models.RegionWest,
		"Changkat":                models.RegionWest, // was in Tampines area
	}
}

// Table maps constituency names to regions. It is read-only after New.
type Table struct {
	byName map[string]models.Region
}

// New builds the region table
func New() *Table {
	return &Table{byName: constituencyRegions()}
}

// Lookup returns the region for an exact, case-sensitive constituency name.
// Unmapped names return false.
func (t *Table) Lookup(name string) (models.Region, bool) {
	r, ok := t.byName[name]
	return r, ok
}

// Len returns the number of mapped constituencies
func (t *Table) Len() int {
	return len(t.byName)
}

// Names returns the mapped constituency names in sorted order
func (t *Table) Names() []string {
	names := make([]string, 0, len(t.byName))
	for n := range t.byName {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
