package chartviz

import (
	"fmt"
	"math"
	"strconv"
)

// DefaultColor is used whenever a color string can not be parsed.
const DefaultColor = "black"

type Palette []string

var (
	Category10 Palette
	Tableau10  Palette
)

func init() {
	Category10 = splitColorString("1f77b4ff7f0e2ca02cd627289467bd8c564be377c27f7f7fbcbd2217becf")
	Tableau10 = splitColorString("4e79a7f28e2ce1575976b7b259a14fedc949af7aa1ff9da79c755fbab0ab")
}

func (p Palette) At(i int) string {
	if len(p) == 0 {
		return DefaultColor
	}
	if i < 0 {
		i = -i
	}
	return p[i%len(p)]
}

func splitColorString(str string) []string {
	var arr []string
	for i := 0; i < len(str); i += 6 {
		arr = append(arr, "#"+str[i:i+6])
	}
	return arr
}

// SafeColor validates a color string. Hex colors (#rgb, #rrggbb) and plain
// letter keywords pass through, anything else falls back to DefaultColor.
func SafeColor(str string) string {
	if str == "" {
		return DefaultColor
	}
	if str[0] == '#' {
		if _, _, _, ok := parseHex(str); !ok {
			return DefaultColor
		}
		return str
	}
	for _, r := range str {
		ok := (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
		if !ok {
			return DefaultColor
		}
	}
	return str
}

// LerpColor interpolates between two hex colors. The endpoints fall back to
// DefaultColor when unparseable; t is clamped to [0, 1].
func LerpColor(from, to string, t float64) string {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	fr, fg, fb, ok := parseHex(from)
	if !ok {
		fr, fg, fb = 0, 0, 0
	}
	tr, tg, tb, ok := parseHex(to)
	if !ok {
		tr, tg, tb = 0, 0, 0
	}
	lerp := func(a, b uint8) uint8 {
		return uint8(math.Round(float64(a) + (float64(b)-float64(a))*t))
	}
	return fmt.Sprintf("#%02x%02x%02x", lerp(fr, tr), lerp(fg, tg), lerp(fb, tb))
}

func parseHex(str string) (r, g, b uint8, ok bool) {
	if len(str) == 0 || str[0] != '#' {
		return 0, 0, 0, false
	}
	str = str[1:]
	if len(str) == 3 {
		str = string([]byte{str[0], str[0], str[1], str[1], str[2], str[2]})
	}
	if len(str) != 6 {
		return 0, 0, 0, false
	}
	v, err := strconv.ParseUint(str, 16, 32)
	if err != nil {
		return 0, 0, 0, false
	}
	return uint8(v >> 16), uint8(v >> 8), uint8(v), true
}
