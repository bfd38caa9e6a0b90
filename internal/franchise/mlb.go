package franchise

// MLB returns the full lineage table for Major League Baseball: every modern
// franchise with its Lahman identifiers and documented relocations. Identifier
// sets include the era-specific franchID values where Lahman switched codes
// across a move (Braves, Athletics, Browns/Orioles, ...) and the single stable
// code where it did not (Dodgers, Giants).
func MLB() []FranchiseLineage {
	return []FranchiseLineage{
		// Relocated franchises.
		{
			CanonicalID: "ATL",
			CurrentName: "Atlanta Braves",
			FoundedYear: 1876,
			Identifiers: []string{"BSN", "ML1", "ATL"},
			Relocations: []RelocationEvent{
				{Year: 1953, FromCity: "Boston", ToCity: "Milwaukee", FromTeamName: "Boston Braves", ToTeamName: "Milwaukee Braves", IdentifierChanges: true},
				{Year: 1966, FromCity: "Milwaukee", ToCity: "Atlanta", FromTeamName: "Milwaukee Braves", ToTeamName: "Atlanta Braves", IdentifierChanges: true},
			},
			Notes: "Moved twice: Boston (1876-1952) -> Milwaukee (1953-1965) -> Atlanta (1966-present)",
		},
		{
			CanonicalID: "LAD",
			CurrentName: "Los Angeles Dodgers",
			FoundedYear: 1884,
			Identifiers: []string{"LAD"},
			Relocations: []RelocationEvent{
				{Year: 1958, FromCity: "Brooklyn", ToCity: "Los Angeles", FromTeamName: "Brooklyn Dodgers", ToTeamName: "Los Angeles Dodgers"},
			},
			Notes: "Brooklyn era uses teamID BRO but franchID LAD throughout",
		},
		{
			CanonicalID: "SFG",
			CurrentName: "San Francisco Giants",
			FoundedYear: 1883,
			Identifiers: []string{"SFG"},
			Relocations: []RelocationEvent{
				{Year: 1958, FromCity: "New York", ToCity: "San Francisco", FromTeamName: "New York Giants", ToTeamName: "San Francisco Giants"},
			},
			Notes: "Same year as the Dodgers' move to LA",
		},
		{
			CanonicalID: "OAK",
			CurrentName: "Oakland Athletics",
			FoundedYear: 1901,
			Identifiers: []string{"PHA", "KC1", "OAK"},
			Relocations: []RelocationEvent{
				{Year: 1955, FromCity: "Philadelphia", ToCity: "Kansas City", FromTeamName: "Philadelphia Athletics", ToTeamName: "Kansas City Athletics", IdentifierChanges: true},
				{Year: 1968, FromCity: "Kansas City", ToCity: "Oakland", FromTeamName: "Kansas City Athletics", ToTeamName: "Oakland Athletics", IdentifierChanges: true},
			},
			Notes: "Three-city franchise",
		},
		{
			CanonicalID: "MIN",
			CurrentName: "Minnesota Twins",
			FoundedYear: 1901,
			Identifiers: []string{"WS1", "MIN"},
			Relocations: []RelocationEvent{
				{Year: 1961, FromCity: "Washington", ToCity: "Minneapolis-St. Paul", FromTeamName: "Washington Senators", ToTeamName: "Minnesota Twins", IdentifierChanges: true},
			},
			Notes: "Original Washington Senators franchise (1901-1960)",
		},
		{
			CanonicalID: "TEX",
			CurrentName: "Texas Rangers",
			FoundedYear: 1961,
			Identifiers: []string{"WS2", "TEX"},
			Relocations: []RelocationEvent{
				{Year: 1972, FromCity: "Washington", ToCity: "Dallas-Fort Worth", FromTeamName: "Washington Senators", ToTeamName: "Texas Rangers", IdentifierChanges: true},
			},
			Notes: "Expansion Senators (1961-1971), distinct from the original Senators",
		},
		{
			CanonicalID: "BAL",
			CurrentName: "Baltimore Orioles",
			FoundedYear: 1902,
			Identifiers: []string{"SLA", "BAL"},
			Relocations: []RelocationEvent{
				{Year: 1954, FromCity: "St. Louis", ToCity: "Baltimore", FromTeamName: "St. Louis Browns", ToTeamName: "Baltimore Orioles", IdentifierChanges: true},
			},
			Notes: "St. Louis Browns became the Baltimore Orioles",
		},
		{
			CanonicalID: "MIL",
			CurrentName: "Milwaukee Brewers",
			FoundedYear: 1969,
			Identifiers: []string{"SE1", "ML4", "MIL"},
			Relocations: []RelocationEvent{
				{Year: 1970, FromCity: "Seattle", ToCity: "Milwaukee", FromTeamName: "Seattle Pilots", ToTeamName: "Milwaukee Brewers", IdentifierChanges: true},
			},
			Notes: "Seattle Pilots (1969) became the Brewers; switched AL -> NL in 1998",
		},
		{
			CanonicalID: "WSN",
			CurrentName: "Washington Nationals",
			FoundedYear: 1969,
			Identifiers: []string{"MON", "WSN"},
			Relocations: []RelocationEvent{
				{Year: 2005, FromCity: "Montreal", ToCity: "Washington", FromTeamName: "Montreal Expos", ToTeamName: "Washington Nationals", IdentifierChanges: true},
			},
			Notes: "Montreal Expos (1969-2004) became the Nationals",
		},
		{
			CanonicalID: "NYY",
			CurrentName: "New York Yankees",
			FoundedYear: 1901,
			Identifiers: []string{"BLA", "NYY"},
			Relocations: []RelocationEvent{
				{Year: 1903, FromCity: "Baltimore", ToCity: "New York", FromTeamName: "Baltimore Orioles", ToTeamName: "New York Highlanders", IdentifierChanges: true},
			},
			Notes: "Original Baltimore Orioles (1901-1902), unrelated to the modern Orioles",
		},

		// Name changes only, no relocation.
		{
			CanonicalID: "ANA",
			CurrentName: "Los Angeles Angels",
			FoundedYear: 1961,
			Identifiers: []string{"ANA"},
			Notes:       "Angels name changes all within the same metro area",
		},
		{
			CanonicalID: "FLA",
			CurrentName: "Miami Marlins",
			FoundedYear: 1993,
			Identifiers: []string{"FLA"},
			Notes:       "Florida Marlins became Miami Marlins in 2012, same city",
		},

		// Stable franchises.
		{CanonicalID: "BOS", CurrentName: "Boston Red Sox", FoundedYear: 1901, Identifiers: []string{"BOS"}},
		{CanonicalID: "CHC", CurrentName: "Chicago Cubs", FoundedYear: 1876, Identifiers: []string{"CHC"}},
		{CanonicalID: "CHW", CurrentName: "Chicago White Sox", FoundedYear: 1901, Identifiers: []string{"CHW"}},
		{CanonicalID: "CIN", CurrentName: "Cincinnati Reds", FoundedYear: 1882, Identifiers: []string{"CIN"}},
		{CanonicalID: "CLE", CurrentName: "Cleveland Guardians", FoundedYear: 1901, Identifiers: []string{"CLE"}, Notes: "Renamed Guardians in 2022"},
		{CanonicalID: "DET", CurrentName: "Detroit Tigers", FoundedYear: 1901, Identifiers: []string{"DET"}},
		{CanonicalID: "PHI", CurrentName: "Philadelphia Phillies", FoundedYear: 1883, Identifiers: []string{"PHI"}},
		{CanonicalID: "PIT", CurrentName: "Pittsburgh Pirates", FoundedYear: 1882, Identifiers: []string{"PIT"}},
		{CanonicalID: "STL", CurrentName: "St. Louis Cardinals", FoundedYear: 1882, Identifiers: []string{"STL"}},

		// Expansion teams.
		{CanonicalID: "ARI", CurrentName: "Arizona Diamondbacks", FoundedYear: 1998, Identifiers: []string{"ARI"}},
		{CanonicalID: "COL", CurrentName: "Colorado Rockies", FoundedYear: 1993, Identifiers: []string{"COL"}},
		{CanonicalID: "HOU", CurrentName: "Houston Astros", FoundedYear: 1962, Identifiers: []string{"HOU"}, Notes: "Switched NL -> AL in 2013"},
		{CanonicalID: "KCR", CurrentName: "Kansas City Royals", FoundedYear: 1969, Identifiers: []string{"KCR"}},
		{CanonicalID: "NYM", CurrentName: "New York Mets", FoundedYear: 1962, Identifiers: []string{"NYM"}},
		{CanonicalID: "SDP", CurrentName: "San Diego Padres", FoundedYear: 1969, Identifiers: []string{"SDP"}},
		{CanonicalID: "SEA", CurrentName: "Seattle Mariners", FoundedYear: 1977, Identifiers: []string{"SEA"}},
		{CanonicalID: "TBD", CurrentName: "Tampa Bay Rays", FoundedYear: 1998, Identifiers: []string{"TBD"}},
		{CanonicalID: "TOR", CurrentName: "Toronto Blue Jays", FoundedYear: 1977, Identifiers: []string{"TOR"}},
	}
}
