// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package units

// builtinDefinitions is the default unit table, in the same definition grammar
// accepted by Define. Order matters: a unit must be defined before anything
// that references it.
var builtinDefinitions = []string{
	// Length
	"meter = [length] = m = metre",
	"kilometer = 1000 meter = km",
	"centimeter = 0.01 meter = cm",
	"millimeter = 0.001 meter = mm",
	"inch = 0.0254 meter = in",
	"foot = 0.3048 meter = ft",
	"yard = 0.9144 meter = yd",
	"mile = 1609.344 meter = mi",

	// Mass
	"gram = [mass] = g",
	"kilogram = 1000 gram = kg",
	"milligram = 0.001 gram = mg",
	"tonne = 1000000 gram = t",
	"pound = 453.59237 gram = lb = lbs",
	"ounce = 28.349523125 gram = oz",
	"stone = 6350.29318 gram = st",

	// Time
	"second = [time] = s = sec",
	"minute = 60 second = min",
	"hour = 3600 second = h = hr",
	"day = 86400 second",
	"week = 604800 second = wk",

	// Volume
	"liter = [volume] = l = L = litre",
	"milliliter = 0.001 liter = ml",
	"centiliter = 0.01 liter = cl",
	"gallon = 3.785411784 liter = gal",
	"quart = 0.946352946 liter = qt",
	"pint = 0.473176473 liter = pt",
	"floz = 0.0295735295625 liter",

	// Area
	"sqm = [area] = m2",
	"sqkm = 1000000 sqm = km2",
	"sqft = 0.09290304 sqm",
	"hectare = 10000 sqm = ha",
	"acre = 4046.8564224 sqm",

	// Speed
	"mps = [speed]",
	"kph = 0.2777777777777778 mps = kmh",
	"mph = 0.44704 mps",

	// Digital information
	"byte = [data] = B",
	"bit = 0.125 byte",
	"kilobyte = 1000 byte = kB = KB",
	"megabyte = 1000000 byte = MB",
	"gigabyte = 1000000000 byte = GB",
	"terabyte = 1000000000000 byte = TB",
	"kibibyte = 1024 byte = KiB",
	"mebibyte = 1048576 byte = MiB",
	"gibibyte = 1073741824 byte = GiB",
}

// builtinContexts are always registered, never pre-enabled. A query activates
// one by naming it as a prefix ("cooking 2 cup ml").
var builtinContexts = []Context{
	{
		Name: "cooking",
		Definitions: []string{
			"cup = 0.2365882365 liter",
			"tablespoon = 0.0147867647813 liter = tbsp",
			"teaspoon = 0.00492892159375 liter = tsp",
			"stick = 113.398 gram",
		},
	},
	{
		Name: "nautical",
		Definitions: []string{
			"nmi = 1852 meter",
			"knot = 0.5144444444444445 mps = kt",
			"fathom = 1.8288 meter",
		},
	},
}

// loadBuiltins populates a fresh registry. Definitions here are trusted;
// a failure is a programming error in the table itself.
func (r *Registry) loadBuiltins() {
	for _, def := range builtinDefinitions {
		if err := r.Define(def); err != nil {
			panic("units: bad builtin definition: " + err.Error())
		}
	}

	// Temperature scales need an offset term, which the definition grammar
	// deliberately does not express.
	r.units["kelvin"] = &unit{name: "kelvin", dim: "[temperature]", factor: 1}
	r.aliases["K"] = "kelvin"
	r.defineAffine("celsius", "[temperature]", 1, 273.15, "degC", "C")
	r.defineAffine("fahrenheit", "[temperature]", 5.0/9.0, 255.37222222222223, "degF", "F")

	for _, ctx := range builtinContexts {
		r.RegisterContext(ctx)
	}
}
