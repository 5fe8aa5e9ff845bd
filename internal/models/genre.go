package models

import "fmt"

// Genre classifies a property for report filtering.
type Genre int

const (
	FamilyHouse Genre = iota
	Condominium
	Farm
)

var genreNames = map[Genre]string{
	FamilyHouse: "FAMILYHOUSE",
	Condominium: "CONDOMINIUM",
	Farm:        "FARM",
}

func (g Genre) String() string {
	if name, ok := genreNames[g]; ok {
		return name
	}
	return fmt.Sprintf("Genre(%d)", int(g))
}

// ParseGenre maps a record token to a Genre. The match is exact and
// case-sensitive; anything else is an error.
func ParseGenre(s string) (Genre, error) {
	for g, name := range genreNames {
		if name == s {
			return g, nil
		}
	}
	return 0, fmt.Errorf("unknown genre: %q", s)
}
