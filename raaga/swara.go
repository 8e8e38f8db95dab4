package raaga

// swaraTable maps swara names to signed semitone offsets relative to the
// reference Sa. The middle octave is unmarked, the lower octave carries a
// trailing "↓" and the upper octave a trailing "↑". Komal (flat) and tivra
// (sharp) variants use their conventional prefixes; "Sa'" is the octave Sa.
var swaraTable = map[string]int{
	// Middle octave
	"Sa":        0,
	"komal Re":  1,
	"Re":        2,
	"komal Ga":  3,
	"Ga":        4,
	"Ma":        5,
	"Tivra Ma":  6,
	"Pa":        7,
	"komal Dha": 8,
	"Dha":       9,
	"komal Ni":  10,
	"Ni":        11,
	"Sa'":       12,

	// Lower octave
	"Sa↓":        -12,
	"komal Re↓":  -11,
	"Re↓":        -10,
	"komal Ga↓":  -9,
	"Ga↓":        -8,
	"Ma↓":        -7,
	"Tivra Ma↓":  -6,
	"Pa↓":        -5,
	"komal Dha↓": -4,
	"Dha↓":       -3,
	"komal Ni↓":  -2,
	"Ni↓":        -1,

	// Upper octave
	"Sa↑":        12,
	"komal Re↑":  13,
	"Re↑":        14,
	"komal Ga↑":  15,
	"Ga↑":        16,
	"Ma↑":        17,
	"Tivra Ma↑":  18,
	"Pa↑":        19,
	"komal Dha↑": 20,
	"Dha↑":       21,
	"komal Ni↑":  22,
	"Ni↑":        23,
	"Sa'↑":       24,
}

// SwaraToSemitone resolves a swara name to its semitone offset from Sa.
// The second return value reports whether the name is known; unknown names
// resolve to offset 0.
func SwaraToSemitone(name string) (int, bool) {
	offset, ok := swaraTable[name]
	return offset, ok
}
