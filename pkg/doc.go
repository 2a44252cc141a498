// Package pkg holds the libraries behind daireno, a tool that numbers the
// apartments of a building section and draws the result.
//
// # Overview
//
// A section is a stack of floors: basements at the bottom, then the ground
// floor ("Zemin Kat") and the upper normal floors. Every floor holds a row of
// apartments numbered consecutively from the deepest basement upwards. Users
// change a floor's apartment count, which renumbers everything above it, or
// give a single apartment a custom label.
//
// # Architecture
//
//	setup (normal floors, basements, apartments per floor)
//	         ↓
//	    [section] (generate, renumber, relabel)
//	         ↓
//	    [editor] (click → prompt → commit)
//	         ↓
//	    [render/diagram] (layout, hit testing)
//	         ↓
//	    [render/sink] (SVG, JSON, PNG)
//
// # Quick Start
//
//	e := editor.New()
//	if err := e.Generate(ctx, editor.Setup{NormalFloors: 5, Basements: 1, Apartments: 4}); err != nil {
//	    return err
//	}
//	if p, ok := e.Click(100, 25); ok {
//	    e.Commit(ctx, p, "6", false)
//	}
//	svg := sink.RenderSVG(e.Drawing())
//
// # Main Packages
//
//   - [section]: floors, apartments and the numbering rules
//   - [editor]: setup parsing and the prompt-driven edit flow
//   - [render/diagram]: geometry, hit testing and draw commands
//   - [render/sink]: output formats
//   - [render/styles]: palette and text helpers
//   - [fonts]: built-in faces for raster output
//   - [session]: per-user editor state for the web front end (memory, Redis)
//   - [config]: TOML configuration
//   - [observability]: hooks for logging generate, edit, render and session events
//   - [errors]: coded errors shared by all packages
//   - [buildinfo]: version stamped in at build time
//
// [section]: https://pkg.go.dev/github.com/matzehuels/daireno/pkg/section
// [editor]: https://pkg.go.dev/github.com/matzehuels/daireno/pkg/editor
// [render/diagram]: https://pkg.go.dev/github.com/matzehuels/daireno/pkg/render/diagram
// [render/sink]: https://pkg.go.dev/github.com/matzehuels/daireno/pkg/render/sink
// [render/styles]: https://pkg.go.dev/github.com/matzehuels/daireno/pkg/render/styles
// [fonts]: https://pkg.go.dev/github.com/matzehuels/daireno/pkg/fonts
// [session]: https://pkg.go.dev/github.com/matzehuels/daireno/pkg/session
// [config]: https://pkg.go.dev/github.com/matzehuels/daireno/pkg/config
// [observability]: https://pkg.go.dev/github.com/matzehuels/daireno/pkg/observability
// [errors]: https://pkg.go.dev/github.com/matzehuels/daireno/pkg/errors
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/daireno/pkg/buildinfo
package pkg
