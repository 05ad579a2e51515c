// Package file implements the CatalogStore port over a TOML file.
//
// The catalog file holds the two tracked person keys and the raw food
// records:
//
//	[schema]
//	people = ["Ren", "Stimpy"]
//
//	[[foods]]
//	alias = "barley"
//	nameEn = "Barley"
//	nameNative = "Orge"
//	serving = "1/2 cup cooked"
//	categoryRen = "Minimize"
//	categoryStimpy = "Enjoy"
//
// Records are decoded as raw keyed maps and handed to the domain
// untouched; the store performs no validation beyond TOML syntax and
// the two-person schema shape.
package file
