package graphics

// Color is an RGB triple for truecolor terminal output.
type Color struct {
	R, G, B uint8
}
