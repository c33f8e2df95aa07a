package geo

import "jobmate/monitor-service/internal/model"

// RegionEntry is one row of the Northern-California region table.
// Counties, cities and metro areas are stored as display names and
// matched against normalised text; Keywords are colloquial free-text
// phrases already in normalised form.
type RegionEntry struct {
	Region     model.Region
	Counties   []string
	Cities     []string
	MetroAreas []string
	Keywords   []string
}

// Alias rewrites a colloquial location token to its canonical form before
// matching ("sf" → "san francisco"). Both sides are normalised text; the
// source is matched on word boundaries only.
type Alias struct {
	From string
	To   string
}

// Table is the full geographic matching configuration. Entry order is
// significant: region ties break to the first-declared entry.
type Table struct {
	Regions []RegionEntry

	Aliases []Alias

	// GeneralKeywords flag Northern California as a whole without
	// resolving a specific region ("norcal", "northern california").
	GeneralKeywords []string

	// RemoteIndicators mark a posting as remote, which redirects
	// matching to the company's own location when one is known.
	RemoteIndicators []string
}

// DefaultTable returns the built-in Northern-California hierarchy.
// County/city membership is domain content — Bakersfield sitting in
// CENTRAL_VALLEY (and therefore flagging Northern California) is a
// geography judgment call inherited from the product definition.
func DefaultTable() Table {
	return Table{
		Regions: []RegionEntry{
			{
				Region: model.RegionBayArea,
				Counties: []string{
					"Alameda", "Contra Costa", "Marin", "Napa",
					"San Francisco", "San Mateo", "Santa Clara",
					"Solano", "Sonoma",
				},
				Cities: []string{
					"San Francisco", "Oakland", "San Jose", "Berkeley",
					"Palo Alto", "Mountain View", "Sunnyvale", "Fremont",
					"Santa Rosa", "Redwood City", "Cupertino", "Menlo Park",
					"Walnut Creek", "Vallejo",
				},
				MetroAreas: []string{
					"San Francisco Bay Area", "San Jose Metropolitan Area",
				},
				Keywords: []string{
					"bay area", "silicon valley", "east bay", "north bay",
					"peninsula",
				},
			},
			{
				Region: model.RegionSacramentoValley,
				Counties: []string{
					"Sacramento", "Yolo", "Placer", "El Dorado", "Sutter",
					"Yuba", "Butte", "Colusa", "Glenn", "Tehama", "Shasta",
				},
				Cities: []string{
					"Sacramento", "Davis", "Roseville", "Folsom",
					"Elk Grove", "Chico", "Redding", "Woodland",
				},
				MetroAreas: []string{
					"Greater Sacramento",
				},
				Keywords: []string{
					"sacramento valley", "sacramento region",
				},
			},
			{
				Region: model.RegionCentralValley,
				Counties: []string{
					"San Joaquin", "Stanislaus", "Merced", "Madera",
					"Fresno", "Kings", "Tulare", "Kern",
				},
				Cities: []string{
					"Stockton", "Modesto", "Fresno", "Bakersfield",
					"Merced", "Visalia", "Tracy", "Turlock",
				},
				MetroAreas: nil,
				Keywords: []string{
					"central valley", "san joaquin valley",
				},
			},
			{
				Region: model.RegionNorthCoast,
				Counties: []string{
					"Mendocino", "Humboldt", "Del Norte", "Lake", "Trinity",
				},
				Cities: []string{
					"Eureka", "Ukiah", "Arcata", "Crescent City",
					"Fort Bragg",
				},
				MetroAreas: nil,
				Keywords: []string{
					"north coast", "redwood coast",
				},
			},
			{
				Region: model.RegionSierraNevada,
				Counties: []string{
					"Nevada", "Alpine", "Amador", "Calaveras", "Tuolumne",
					"Mariposa", "Mono",
				},
				Cities: []string{
					"Truckee", "South Lake Tahoe", "Grass Valley", "Auburn",
					"Mammoth Lakes", "Sonora",
				},
				MetroAreas: nil,
				Keywords: []string{
					"sierra nevada", "lake tahoe", "gold country",
				},
			},
		},
		Aliases: []Alias{
			{From: "sf", To: "san francisco"},
			{From: "sj", To: "san jose"},
			{From: "south bay", To: "santa clara county"},
			{From: "the city", To: "san francisco"},
			{From: "sac", To: "sacramento"},
		},
		GeneralKeywords: []string{
			"northern california", "norcal", "nor cal",
		},
		RemoteIndicators: []string{
			"remote", "work from home", "wfh", "telecommute",
			"work from anywhere", "distributed",
		},
	}
}
