package generation

import "strings"

var (
	cityPrefixes = []string{
		"West", "North", "Iron", "Deep", "Grey", "Misty", "High", "Red", "Blue", "Black", "White", "Silver",
		"Gold", "Green", "Old", "New", "Lost", "Dark", "Light", "Stone", "Raven", "Wolf", "Bear",
	}
	citySuffixes = []string{
		"wood", "mount", "peak", "river", "fall", "bridge", "field", "haven", "watch", "guard", "dale",
		"vale", "gate", "port", "bay", "isle", "keep", "hold", "bury", "ton", "grad", "heim",
	}
	castlePrefixes = []string{"Dread", "Storm", "Iron", "Shadow", "Doom", "Blood", "Cloud", "Void", "Kings", "Oath"}
	castleSuffixes = []string{"fort", "tower", "citadel", "bastion", "spire", "stronghold", "reach", "crag", "wall"}
)

const nameRetries = 50

// NameRegistry hands out settlement names that are unique within one map
type NameRegistry struct {
	used map[string]bool
}

// NewNameRegistry creates an empty registry
func NewNameRegistry() *NameRegistry {
	return &NameRegistry{used: make(map[string]bool)}
}

// Next draws a prefix+suffix name for the given kind. After the retry budget
// is spent on collisions, a roman ordinal is appended until the name is free.
func (r *NameRegistry) Next(kind SettlementKind, rng *Stream) string {
	prefixes, suffixes := cityPrefixes, citySuffixes
	if kind == KindCastle {
		prefixes, suffixes = castlePrefixes, castleSuffixes
	}

	var name string
	for i := 0; i < nameRetries; i++ {
		name = rng.Choice(prefixes) + rng.Choice(suffixes)
		if !r.used[name] {
			r.used[name] = true
			return name
		}
	}

	for n := 2; ; n++ {
		candidate := name + " " + Roman(n)
		if !r.used[candidate] {
			r.used[candidate] = true
			return candidate
		}
	}
}

// Has reports whether a name was already handed out
func (r *NameRegistry) Has(name string) bool {
	return r.used[name]
}

var romanTable = []struct {
	value  int
	symbol string
}{
	{1000, "M"}, {900, "CM"}, {500, "D"}, {400, "CD"},
	{100, "C"}, {90, "XC"}, {50, "L"}, {40, "XL"},
	{10, "X"}, {9, "IX"}, {5, "V"}, {4, "IV"}, {1, "I"},
}

// Roman formats a positive integer as a roman numeral
func Roman(n int) string {
	if n <= 0 {
		return ""
	}
	var b strings.Builder
	for _, r := range romanTable {
		for n >= r.value {
			b.WriteString(r.symbol)
			n -= r.value
		}
	}
	return b.String()
}
