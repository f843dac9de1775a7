package models

import "cartographer.dev/internal/generation"

// Position is a cell on the 200x150 grid
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// MapSummary is the JSON view of one generation
type MapSummary struct {
	Seed         uint32            `json:"seed"`
	Params       generation.Params `json:"params"`
	Width        int               `json:"width"`
	Height       int               `json:"height"`
	LandFraction float64           `json:"land_fraction"`
	Filename     string            `json:"filename"`
	Cities       []SettlementView  `json:"cities"`
	Castles      []SettlementView  `json:"castles"`
	Ships        []Position        `json:"ships"`
	Lakes        []LakeView        `json:"lakes"`
	Rivers       []RiverView       `json:"rivers"`
	Roads        []RoadView        `json:"roads"`
	RoadClusters int               `json:"road_clusters"`
	Features     map[string]int    `json:"features"`
}

// SettlementView is a named city or castle
type SettlementView struct {
	Name     string   `json:"name"`
	Kind     string   `json:"kind"`
	Position Position `json:"position"`
}

// LakeView describes one lake
type LakeView struct {
	Center      Position `json:"center"`
	Radius      float64  `json:"radius"`
	Synthesized bool     `json:"synthesized"`
}

// RiverView describes one river by its endpoints
type RiverView struct {
	Source   Position `json:"source"`
	Mouth    Position `json:"mouth"`
	Length   int      `json:"length"`
	Terminus string   `json:"terminus"`
}

// RoadView is a road between two named cities
type RoadView struct {
	From   string  `json:"from"`
	To     string  `json:"to"`
	Length float64 `json:"length"`
}

// ControlList wraps the slider descriptions
type ControlList struct {
	Controls []generation.Control `json:"controls"`
	Defaults generation.Params    `json:"defaults"`
}

// NewMapSummary flattens a generated map into its JSON view
func NewMapSummary(m *generation.Map, filename string) *MapSummary {
	s := &MapSummary{
		Seed:         m.Seed,
		Params:       m.Params,
		Width:        m.Width(),
		Height:       m.Height(),
		LandFraction: m.LandFraction(),
		Filename:     filename,
		Cities:       settlementViews(m.Cities),
		Castles:      settlementViews(m.Castles),
		Ships:        make([]Position, 0, len(m.Ships)),
		Lakes:        make([]LakeView, 0, len(m.Lakes)),
		Rivers:       make([]RiverView, 0, len(m.Rivers)),
		Roads:        make([]RoadView, 0, len(m.Roads.Roads)),
		RoadClusters: m.Roads.Components(),
		Features:     make(map[string]int),
	}
	for _, sh := range m.Ships {
		s.Ships = append(s.Ships, toPosition(sh.Cell))
	}
	for _, l := range m.Lakes {
		s.Lakes = append(s.Lakes, LakeView{Center: toPosition(l.Center), Radius: l.Radius, Synthesized: l.Synthesized})
	}
	for _, r := range m.Rivers {
		s.Rivers = append(s.Rivers, RiverView{
			Source:   toPosition(r.Path[0]),
			Mouth:    toPosition(r.Path[len(r.Path)-1]),
			Length:   len(r.Path),
			Terminus: string(r.Terminus),
		})
	}
	for _, r := range m.Roads.Roads {
		s.Roads = append(s.Roads, RoadView{
			From:   m.Cities[r.From].Name,
			To:     m.Cities[r.To].Name,
			Length: r.Length,
		})
	}
	for kind, n := range generation.CountFeatures(generation.ClassifyFeatures(m)) {
		s.Features[string(kind)] = n
	}
	return s
}

func settlementViews(in []generation.Settlement) []SettlementView {
	out := make([]SettlementView, 0, len(in))
	for _, st := range in {
		out = append(out, SettlementView{Name: st.Name, Kind: string(st.Kind), Position: toPosition(st.Cell)})
	}
	return out
}

func toPosition(p generation.Point) Position {
	return Position{X: p.X, Y: p.Y}
}
