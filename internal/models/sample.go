package models

// SampleProperties returns the built-in dataset used when no listing file
// is available, so the pipeline always has something to value.
func SampleProperties() []Property {
	return []Property{
		NewRealEstate("Budapest", 250000, 100, 4, Condominium),
		NewRealEstate("Debrecen", 220000, 120, 5, FamilyHouse),
		NewRealEstate("Nyíregyháza", 110000, 60, 2, Farm),
		NewRealEstate("Nyíregyháza", 250000, 160, 6, FamilyHouse),
		NewRealEstate("Kisvárda", 150000, 50, 2, Condominium),
		NewPanel("Budapest", 180000, 70, 3, Condominium, 4, false),
		NewPanel("Debrecen", 120000, 35, 2, Condominium, 0, true),
		NewPanel("Tiszaújváros", 120000, 750, 3, Condominium, 10, false),
		NewPanel("Nyíregyháza", 170000, 80, 3, Condominium, 7, false),
	}
}
