package generation

import "sort"

const (
	mountainLine   = 0.65
	forestCeiling  = 0.6
	hillFloor      = 0.5
	mountainChance = 0.3
	treeChance     = 0.4
	hillChance     = 0.2
	featureJitter  = 0.4

	featureRollSalt   = 0x1F3A
	featureJitterSalt = 0x2B7C
)

// FeatureKind is the decoration drawn on a land cell
type FeatureKind string

const (
	FeatureMountain FeatureKind = "mountain"
	FeatureTree     FeatureKind = "tree"
	FeatureHill     FeatureKind = "hill"
)

// Feature is one decoration glyph, positioned in grid units
type Feature struct {
	Kind      FeatureKind `json:"kind"`
	Cell      Point       `json:"cell"`
	Position  Vec         `json:"position"`
	Elevation float64     `json:"elevation"`
}

// ClassifyFeatures scans land cells and decides which glyph, if any, each
// one carries. The result is stable-sorted by Position.Y so that painting in
// order puts nearer glyphs on top.
func ClassifyFeatures(m *Map) []Feature {
	p := m.Params
	rollSeed := m.Seed ^ featureRollSalt
	jitterSeed := m.Seed ^ featureJitterSalt

	var features []Feature
	for y := 0; y < m.Elevation.Height; y++ {
		for x := 0; x < m.Elevation.Width; x++ {
			e := m.Elevation.At(x, y)
			if e < p.WaterLevel {
				continue
			}
			moist := m.Moisture.At(x, y)
			roll := CellHash(rollSeed, x, y)

			var kind FeatureKind
			switch {
			case e > mountainLine:
				if roll < mountainChance*p.Roughness {
					kind = FeatureMountain
				}
			case e > p.WaterLevel && e < forestCeiling && moist > 1-p.Vegetation:
				if roll < treeChance {
					kind = FeatureTree
				}
			case e > hillFloor && e < mountainLine:
				if roll < hillChance*p.HillDensity {
					kind = FeatureHill
				}
			}
			if kind == "" {
				continue
			}

			jx := (CellHash(jitterSeed, x, y) - 0.5) * 2 * featureJitter
			jy := (CellHash(jitterSeed+1, x, y) - 0.5) * 2 * featureJitter
			features = append(features, Feature{
				Kind:      kind,
				Cell:      Point{x, y},
				Position:  Vec{float64(x) + jx, float64(y) + jy},
				Elevation: e,
			})
		}
	}

	sort.SliceStable(features, func(i, j int) bool {
		return features[i].Position.Y < features[j].Position.Y
	})
	return features
}

// CountFeatures tallies features by kind
func CountFeatures(features []Feature) map[FeatureKind]int {
	counts := make(map[FeatureKind]int, 3)
	for _, f := range features {
		counts[f.Kind]++
	}
	return counts
}
