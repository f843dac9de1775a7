package generation

const (
	cityAttempts   = 200
	cityCeiling    = 0.5
	citySpacing    = 15.0
	castleAttempts = 300
	castleFloor    = 0.55
	castleCeiling  = 0.75
	castleSpacing  = 20.0
	shipAttempts   = 100
	shipDepth      = 0.05
)

// SettlementKind distinguishes cities from castles
type SettlementKind string

const (
	KindCity   SettlementKind = "city"
	KindCastle SettlementKind = "castle"
)

// Settlement is a named city or castle on a grid cell
type Settlement struct {
	Kind SettlementKind `json:"kind"`
	Cell Point          `json:"cell"`
	Name string         `json:"name"`
}

// Ship is a decorative vessel on open water
type Ship struct {
	Cell Point `json:"cell"`
}

// PlaceCities rejection-samples lowland cells that keep their distance
// from every other city. An exhausted budget yields fewer cities.
func PlaceCities(elev *Field, waterLevel float64, count int, rng, nameRng Stream, names *NameRegistry) []Settlement {
	cities := make([]Settlement, 0, count)
	for i := 0; i < cityAttempts && len(cities) < count; i++ {
		c := rng.Cell(elev.Width, elev.Height)
		e := elev.Get(c)
		if e <= waterLevel || e >= cityCeiling {
			continue
		}
		if tooClose(c, cities, citySpacing) {
			continue
		}
		cities = append(cities, Settlement{Kind: KindCity, Cell: c, Name: names.Next(KindCity, &nameRng)})
	}
	return cities
}

// PlaceCastles rejection-samples highland cells away from cities and
// other castles.
func PlaceCastles(elev *Field, count int, cities []Settlement, rng, nameRng Stream, names *NameRegistry) []Settlement {
	castles := make([]Settlement, 0, count)
	for i := 0; i < castleAttempts && len(castles) < count; i++ {
		c := rng.Cell(elev.Width, elev.Height)
		e := elev.Get(c)
		if e <= castleFloor || e >= castleCeiling {
			continue
		}
		if tooClose(c, cities, castleSpacing) || tooClose(c, castles, castleSpacing) {
			continue
		}
		castles = append(castles, Settlement{Kind: KindCastle, Cell: c, Name: names.Next(KindCastle, &nameRng)})
	}
	return castles
}

// PlaceShips scatters ships on deep water connected to the map border
func PlaceShips(elev *Field, waterLevel float64, ocean []bool, count int, rng Stream) []Ship {
	ships := make([]Ship, 0, count)
	for i := 0; i < shipAttempts && len(ships) < count; i++ {
		c := rng.Cell(elev.Width, elev.Height)
		if elev.Get(c) >= waterLevel-shipDepth {
			continue
		}
		if !ocean[c.Y*elev.Width+c.X] {
			continue
		}
		ships = append(ships, Ship{Cell: c})
	}
	return ships
}

func tooClose(c Point, placed []Settlement, spacing float64) bool {
	for _, s := range placed {
		if c.Dist(s.Cell) < spacing {
			return true
		}
	}
	return false
}
