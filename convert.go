package pipeline

// CentimetersPerInch is the exact inch to centimetre factor.
const CentimetersPerInch = 2.54

// Converter is implemented by pure unary numeric transforms, such as a
// change of unit.
type Converter interface {
	Convert(float64) float64
}

// ConverterFunc is an adapter to allow the use of plain functions as Converter instances.
type ConverterFunc func(float64) float64

// Convert calls f(v)
func (f ConverterFunc) Convert(v float64) float64 {
	return f(v)
}

var (
	// InchesToCentimeters multiplies by 2.54.
	InchesToCentimeters Converter = ConverterFunc(func(v float64) float64 {
		return v * CentimetersPerInch
	})

	// CentimetersToInches divides by 2.54.
	CentimetersToInches Converter = ConverterFunc(func(v float64) float64 {
		return v / CentimetersPerInch
	})

	// Identity returns its input.
	Identity Converter = ConverterFunc(func(v float64) float64 { return v })
)

// Chain returns a Converter applying each of cs in order.
func Chain(cs ...Converter) Converter {
	return ConverterFunc(func(v float64) float64 {
		for _, c := range cs {
			v = c.Convert(v)
		}
		return v
	})
}

// Convert applies c to every element of values and returns the results in
// a new slice of the same length and order.
func Convert(values []float64, c Converter) []float64 {
	out := make([]float64, len(values))

	for i, v := range values {
		out[i] = c.Convert(v)
	}
	return out
}
