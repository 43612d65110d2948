package directory

// ColorOption pairs a display name with its hex value.
type ColorOption struct {
	Name string
	Hex  string
}

// ColorOptions is the fixed accent palette the picker offers.
var ColorOptions = []ColorOption{
	{Name: "Red", Hex: "#F44336"},
	{Name: "Green", Hex: "#4CAF50"},
	{Name: "Blue", Hex: "#2196F3"},
}
