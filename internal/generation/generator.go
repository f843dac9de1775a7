package generation

// Stream salts for each pipeline stage
const (
	saltLakes uint32 = iota + 1
	saltRivers
	saltCities
	saltCastles
	saltShips
	saltCityNames
	saltCastleNames
	saltRoads
)

// MapConfig is the input to one generation
type MapConfig struct {
	Seed   uint32
	Params Params
}

// Map is the immutable result of one generation. Features are not stored;
// they are derived from the fields by ClassifyFeatures.
type Map struct {
	Seed      uint32
	Params    Params
	Elevation *Field
	Moisture  *Field
	Ocean     []bool
	Lakes     []Lake
	Rivers    []River
	Cities    []Settlement
	Castles   []Settlement
	Roads     *RoadNetwork
	Ships     []Ship
}

// Width returns the grid width in cells
func (m *Map) Width() int { return m.Elevation.Width }

// Height returns the grid height in cells
func (m *Map) Height() int { return m.Elevation.Height }

// IsWater reports whether a cell is below the water line
func (m *Map) IsWater(p Point) bool {
	return IsWater(m.Elevation, m.Params.WaterLevel, p)
}

// IsOcean reports whether a cell is open water connected to the border
func (m *Map) IsOcean(p Point) bool {
	if !m.Elevation.InBounds(p) {
		return true
	}
	return m.Ocean[p.Y*m.Width()+p.X]
}

// Settlements returns castles followed by cities
func (m *Map) Settlements() []Settlement {
	out := make([]Settlement, 0, len(m.Castles)+len(m.Cities))
	out = append(out, m.Castles...)
	return append(out, m.Cities...)
}

// LandFraction returns the share of cells above the water line
func (m *Map) LandFraction() float64 {
	land := 0
	for y := 0; y < m.Height(); y++ {
		for x := 0; x < m.Width(); x++ {
			if !m.IsWater(Point{x, y}) {
				land++
			}
		}
	}
	return float64(land) / float64(m.Width()*m.Height())
}

// MapGenerator runs the generation pipeline for one config
type MapGenerator struct {
	config *MapConfig
	params Params
	rng    Stream
	names  *NameRegistry

	elevation *Field
	moisture  *Field
	ocean     []bool
	lakes     []Lake
	rivers    []River
	cities    []Settlement
	castles   []Settlement
	roads     *RoadNetwork
	ships     []Ship
}

// NewMapGenerator creates a generator for the given config.
// Parameters are clamped into their slider ranges.
func NewMapGenerator(config *MapConfig) *MapGenerator {
	return &MapGenerator{
		config: config,
		params: config.Params.Clamp(),
		rng:    NewStream(config.Seed),
		names:  NewNameRegistry(),
	}
}

// Generate produces the map. It never fails: exhausted placement budgets
// simply yield fewer items.
func (mg *MapGenerator) Generate() *Map {
	// 1. Sample elevation and moisture
	mg.buildFields()

	// 2. Mark open water reachable from the border
	mg.ocean = OceanMask(mg.elevation, mg.params.WaterLevel)

	// 3. Place lakes
	mg.lakes = PlaceLakes(mg.elevation, mg.params.WaterLevel, mg.params.LakeCount, mg.rng.Fork(saltLakes))

	// 4. Trace rivers; stalled rivers add their own lakes
	mg.traceRivers()

	// 5. Place cities, then castles away from them
	mg.placeSettlements()

	// 6. Connect cities
	mg.roads = BuildRoads(mg.cities, mg.rng.Fork(saltRoads))

	// 7. Put ships on open water
	mg.ships = PlaceShips(mg.elevation, mg.params.WaterLevel, mg.ocean, mg.params.ShipCount, mg.rng.Fork(saltShips))

	// 8. Build output
	return mg.buildOutput()
}

func (mg *MapGenerator) buildFields() {
	mg.elevation, mg.moisture = BuildFields(mg.config.Seed, GridWidth, GridHeight, mg.params.Roughness)
}

func (mg *MapGenerator) traceRivers() {
	rivers, lakes := TraceRivers(mg.elevation, mg.params.WaterLevel, mg.rng.Fork(saltRivers))
	mg.rivers = rivers
	mg.lakes = append(mg.lakes, lakes...)
}

func (mg *MapGenerator) placeSettlements() {
	wl := mg.params.WaterLevel
	mg.cities = PlaceCities(mg.elevation, wl, mg.params.CityCount,
		mg.rng.Fork(saltCities), mg.rng.Fork(saltCityNames), mg.names)
	mg.castles = PlaceCastles(mg.elevation, mg.params.CastleCount, mg.cities,
		mg.rng.Fork(saltCastles), mg.rng.Fork(saltCastleNames), mg.names)
}

func (mg *MapGenerator) buildOutput() *Map {
	return &Map{
		Seed:      mg.config.Seed,
		Params:    mg.params,
		Elevation: mg.elevation,
		Moisture:  mg.moisture,
		Ocean:     mg.ocean,
		Lakes:     mg.lakes,
		Rivers:    mg.rivers,
		Cities:    mg.cities,
		Castles:   mg.castles,
		Roads:     mg.roads,
		Ships:     mg.ships,
	}
}

// Generate is a shorthand for running a MapGenerator
func Generate(seed uint32, p Params) *Map {
	return NewMapGenerator(&MapConfig{Seed: seed, Params: p}).Generate()
}
