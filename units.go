package pipeline

import (
	"sort"
	"strings"

	"github.com/caffix/stringset"
	"github.com/shopspring/decimal"
)

// Unit names a unit of length.
type Unit string

// Registered units.
const (
	Inch       Unit = "in"
	Centimeter Unit = "cm"
	Millimeter Unit = "mm"
	Meter      Unit = "m"
	Foot       Unit = "ft"
	Yard       Unit = "yd"
)

// metres holds the exact length of one unit in metres.
var metres = map[Unit]string{
	Inch:       "0.0254",
	Centimeter: "0.01",
	Millimeter: "0.001",
	Meter:      "1",
	Foot:       "0.3048",
	Yard:       "0.9144",
}

var aliases = map[string]Unit{
	"inch":        Inch,
	"inches":      Inch,
	"pulg":        Inch,
	"pulgada":     Inch,
	"pulgadas":    Inch,
	"centimeter":  Centimeter,
	"centimeters": Centimeter,
	"centimetre":  Centimeter,
	"centimetres": Centimeter,
	"millimeter":  Millimeter,
	"millimeters": Millimeter,
	"millimetre":  Millimeter,
	"millimetres": Millimeter,
	"meter":       Meter,
	"meters":      Meter,
	"metre":       Meter,
	"metres":      Meter,
	"foot":        Foot,
	"feet":        Foot,
	"yard":        Yard,
	"yards":       Yard,
}

// ParseUnit resolves a unit name or alias, ignoring case and surrounding space.
func ParseUnit(s string) (Unit, error) {
	name := strings.ToLower(strings.TrimSpace(s))

	if _, ok := metres[Unit(name)]; ok {
		return Unit(name), nil
	}
	if u, ok := aliases[name]; ok {
		return u, nil
	}
	return "", argError("unit", s, "unknown unit")
}

// Units returns the registered units sorted by name.
func Units() []Unit {
	out := make([]Unit, 0, len(metres))

	for u := range metres {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Aliases returns the sorted names accepted by ParseUnit for u, including u itself.
func Aliases(u Unit) []string {
	names := stringset.New(string(u))
	defer names.Close()

	for alias, target := range aliases {
		if target == u {
			names.Insert(alias)
		}
	}

	out := names.Slice()
	sort.Strings(out)
	return out
}

// Conversion returns the Converter from one unit to another. Factors are
// computed in decimal so that in to cm is exactly x*2.54 and cm to in is
// exactly x/2.54.
func Conversion(from, to Unit) (Converter, error) {
	f, ok := metres[from]
	if !ok {
		return nil, argError("from", from, "unknown unit")
	}
	t, ok := metres[to]
	if !ok {
		return nil, argError("to", to, "unknown unit")
	}
	if from == to {
		return Identity, nil
	}

	fm := decimal.RequireFromString(f)
	tm := decimal.RequireFromString(t)
	if fm.GreaterThan(tm) {
		factor := fm.Div(tm).InexactFloat64()
		return ConverterFunc(func(v float64) float64 { return v * factor }), nil
	}

	divisor := tm.Div(fm).InexactFloat64()
	return ConverterFunc(func(v float64) float64 { return v / divisor }), nil
}
