package conquest

// standardTerritories is the raw world dataset. Some neighbor references point
// at territories outside the dataset; NewWorldMap drops them.
func standardTerritories() []TerritoryInfo {
	return []TerritoryInfo{
		// North America
		{ID: "US", ISO3: "USA", Name: "United States", MaxPopulation: 600,
			Neighbors: []string{"CA", "MX", "RU", "GB"}, Center: LatLng{39.0, -98.0}},
		{ID: "CA", ISO3: "CAN", Name: "Canada", MaxPopulation: 400,
			Neighbors: []string{"US", "RU", "GL"}, Center: LatLng{56.0, -106.0}},
		{ID: "MX", ISO3: "MEX", Name: "Mexico", MaxPopulation: 300,
			Neighbors: []string{"US", "BR", "CO"}, Center: LatLng{23.0, -102.0}},

		// South America
		{ID: "BR", ISO3: "BRA", Name: "Brazil", MaxPopulation: 400,
			Neighbors: []string{"MX", "AR", "PE", "CO", "AF", "NG"}, Center: LatLng{-14.0, -51.0}},
		{ID: "AR", ISO3: "ARG", Name: "Argentina", MaxPopulation: 300,
			Neighbors: []string{"BR", "CL"}, Center: LatLng{-34.0, -64.0}},

		// Europe
		{ID: "GB", ISO3: "GBR", Name: "United Kingdom", MaxPopulation: 300,
			Neighbors: []string{"US", "FR", "DE", "NO"}, Center: LatLng{54.0, -2.0}},
		{ID: "FR", ISO3: "FRA", Name: "France", MaxPopulation: 350,
			Neighbors: []string{"GB", "DE", "ES", "IT"}, Center: LatLng{46.0, 2.0}},
		{ID: "DE", ISO3: "DEU", Name: "Germany", MaxPopulation: 350,
			Neighbors: []string{"FR", "PL", "IT", "DK"}, Center: LatLng{51.0, 10.0}},
		{ID: "PL", ISO3: "POL", Name: "Poland", MaxPopulation: 400,
			Neighbors: []string{"DE", "UA", "RU"}, Center: LatLng{52.0, 19.0}},
		{ID: "UA", ISO3: "UKR", Name: "Ukraine", MaxPopulation: 500,
			Neighbors: []string{"RU", "PL", "TR"}, Center: LatLng{49.0, 32.0}},
		{ID: "RU", ISO3: "RUS", Name: "Russia", MaxPopulation: 700,
			Neighbors: []string{"US", "CA", "CN", "MN", "UA", "FI", "JP", "TR", "IR"}, Center: LatLng{61.0, 95.0}},
		{ID: "TR", ISO3: "TUR", Name: "Turkey", MaxPopulation: 450,
			Neighbors: []string{"RU", "UA", "SA", "EG"}, Center: LatLng{39.0, 35.0}},

		// Asia
		{ID: "CN", ISO3: "CHN", Name: "China", MaxPopulation: 800,
			Neighbors: []string{"RU", "IN", "MN", "VN", "KP", "JP", "AU"}, Center: LatLng{35.0, 104.0}},
		{ID: "IN", ISO3: "IND", Name: "India", MaxPopulation: 700,
			Neighbors: []string{"CN", "PK", "SA", "MM"}, Center: LatLng{20.0, 78.0}},
		{ID: "JP", ISO3: "JPN", Name: "Japan", MaxPopulation: 300,
			Neighbors: []string{"CN", "RU", "KR", "US"}, Center: LatLng{36.0, 138.0}},
		{ID: "SA", ISO3: "SAU", Name: "Saudi Arabia", MaxPopulation: 300,
			Neighbors: []string{"IN", "EG", "TR", "IR"}, Center: LatLng{23.0, 45.0}},

		// Africa
		{ID: "EG", ISO3: "EGY", Name: "Egypt", MaxPopulation: 300,
			Neighbors: []string{"SA", "LY", "SD", "TR"}, Center: LatLng{26.0, 30.0}},
		{ID: "ZA", ISO3: "ZAF", Name: "South Africa", MaxPopulation: 300,
			Neighbors: []string{"EG", "BR", "AU"}, Center: LatLng{-30.0, 25.0}},

		// Oceania
		{ID: "AU", ISO3: "AUS", Name: "Australia", MaxPopulation: 300,
			Neighbors: []string{"CN", "ID", "ZA", "NZ"}, Center: LatLng{-25.0, 133.0}},
	}
}
