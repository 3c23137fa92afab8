package agronomy

var defaultTemplate = []CultivationStage{
	{Stage: "Land Preparation", DurationDays: 7, Details: "Plough and level the field; incorporate organic matter if needed."},
	{Stage: "Sowing/Planting", DurationDays: 3, Details: "Sow seeds at recommended spacing or transplant seedlings as required."},
	{Stage: GrowingStage, DurationDays: 60, Details: "Irrigation, weeding, fertilizer application, pest monitoring."},
	{Stage: "Harvesting", DurationDays: 7, Details: "Harvest at maturity; handling and drying as needed."},
}

func defaultCrops() []CropProfile {
	return []CropProfile{
		{Name: "Rice", SoilTypes: []SoilType{Clay, Loam, SandyLoam}, OptimalTemp: Range{20, 35}, OptimalPH: Range{5.5, 7.0}, WaterRequirement: WaterHigh, Seasons: []Season{Monsoon, Winter}, BaseScore: 95},
		{Name: "Wheat", SoilTypes: []SoilType{Loam, ClayLoam, SandyLoam}, OptimalTemp: Range{15, 25}, OptimalPH: Range{6.0, 7.5}, WaterRequirement: WaterModerate, Seasons: []Season{Winter}, BaseScore: 90},
		{Name: "Maize", SoilTypes: []SoilType{Loam, SandyLoam, ClayLoam}, OptimalTemp: Range{21, 27}, OptimalPH: Range{5.8, 7.0}, WaterRequirement: WaterModerate, Seasons: []Season{Monsoon}, BaseScore: 88},
		{Name: "Sugarcane", SoilTypes: []SoilType{ClayLoam, Loam, SandyClay}, OptimalTemp: Range{20, 30}, OptimalPH: Range{6.0, 8.0}, WaterRequirement: WaterHigh, Seasons: []Season{YearRound}, BaseScore: 85},
		{Name: "Cotton", SoilTypes: []SoilType{Clay, ClayLoam, SandyLoam}, OptimalTemp: Range{21, 30}, OptimalPH: Range{5.8, 8.0}, WaterRequirement: WaterModerate, Seasons: []Season{Monsoon}, BaseScore: 82},
		{Name: "Soybean", SoilTypes: []SoilType{ClayLoam, SandyLoam, Loam}, OptimalTemp: Range{20, 30}, OptimalPH: Range{6.0, 7.0}, WaterRequirement: WaterModerate, Seasons: []Season{Monsoon}, BaseScore: 80},
		{Name: "Potato", SoilTypes: []SoilType{SandyLoam, Loam, ClayLoam}, OptimalTemp: Range{15, 25}, OptimalPH: Range{5.2, 6.4}, WaterRequirement: WaterModerate, Seasons: []Season{Winter}, BaseScore: 85},
		{Name: "Tomato", SoilTypes: []SoilType{SandyLoam, Loam, ClayLoam}, OptimalTemp: Range{20, 30}, OptimalPH: Range{6.0, 7.0}, WaterRequirement: WaterModerate, Seasons: []Season{YearRound}, BaseScore: 78},
		{Name: "Onion", SoilTypes: []SoilType{SandyLoam, Loam, ClayLoam}, OptimalTemp: Range{13, 24}, OptimalPH: Range{6.0, 7.5}, WaterRequirement: WaterLow, Seasons: []Season{Winter}, BaseScore: 75},
		{Name: "Garlic", SoilTypes: []SoilType{SandyLoam, Loam}, OptimalTemp: Range{12, 20}, OptimalPH: Range{6.0, 7.0}, WaterRequirement: WaterLow, Seasons: []Season{Winter}, BaseScore: 72},
		{Name: "Carrot", SoilTypes: []SoilType{SandyLoam, Loam}, OptimalTemp: Range{16, 20}, OptimalPH: Range{5.5, 6.5}, WaterRequirement: WaterModerate, Seasons: []Season{Winter}, BaseScore: 70},
		{Name: "Cabbage", SoilTypes: []SoilType{ClayLoam, SandyLoam, Loam}, OptimalTemp: Range{15, 20}, OptimalPH: Range{6.0, 6.8}, WaterRequirement: WaterModerate, Seasons: []Season{Winter}, BaseScore: 73},
	}
}

func defaultFertilizers() []FertilizerRecord {
	return []FertilizerRecord{
		{Crop: "Rice", Name: "Urea", Price: 20, Use: "Nitrogen source for vegetative growth"},
		{Crop: "Rice", Name: "DAP", Price: 35, Use: "Phosphorus for root development"},
		{Crop: "Rice", Name: "MOP", Price: 30, Use: "Potassium for grain filling"},
		{Crop: "Wheat", Name: "Urea", Price: 22, Use: "Nitrogen for tillering and growth"},
		{Crop: "Wheat", Name: "SSP", Price: 28, Use: "Phosphorus for root and shoot"},
		{Crop: "Wheat", Name: "MOP", Price: 32, Use: "Potassium for disease resistance"},
		{Crop: "Maize", Name: "Urea", Price: 21, Use: "Nitrogen for leaf development"},
		{Crop: "Maize", Name: "DAP", Price: 36, Use: "Phosphorus for early growth"},
		{Crop: "Maize", Name: "Potash", Price: 29, Use: "Potassium for cob formation"},
	}
}

func defaultDurations() map[string]int {
	return map[string]int{
		"Rice":      120,
		"Wheat":     120,
		"Maize":     90,
		"Sugarcane": 365,
		"Cotton":    150,
		"Soybean":   110,
		"Potato":    120,
		"Tomato":    100,
		"Onion":     120,
		"Garlic":    150,
		"Carrot":    90,
		"Cabbage":   90,
	}
}

// DefaultCatalog returns the built-in reference tables.
func DefaultCatalog() *Catalog {
	c, err := NewCatalog(defaultCrops(), defaultFertilizers(), defaultDurations(), nil)
	if err != nil {
		panic("agronomy: built-in catalog is invalid: " + err.Error())
	}
	return c
}
