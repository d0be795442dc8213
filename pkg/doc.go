// Package pkg holds the heatgrid libraries for rendering heatmap charts.
//
// # Overview
//
// A heatmap is a grid of colored cells: one axis of keys runs across, one
// runs down, and every (x, y) pair carries an optional value that a color
// gradient maps to a fill. The pkg directory is organized into three areas:
//
//  1. Chart core: [axis], [gradient], [grid], [layout], [blend], [numfmt]
//  2. Drawing: [render], [render/sink], [fonts], [heatmap]
//  3. Plumbing: [io], [config], [cache], [pipeline], [observability], [errors]
//
// # Architecture
//
// The typical data flow through heatgrid:
//
//	CSV / JSON / XLSX table
//	         ↓
//	    [io] package (points plus axis titles)
//	         ↓
//	    [heatmap] package (resolve cells, bounds, layout)
//	         ↓
//	    [render] package (scene, z-ordered drawing onto a surface)
//	         ↓
//	    [render/sink] package (PNG, SVG, JSON)
//
// # Quick Start
//
//	months := axis.New[string]("Month")
//	for _, m := range []string{"Jan", "Feb", "Mar"} {
//	    months.Add(m, m)
//	}
//	years := axis.New[int]("Year")
//	years.Add(2023, "2023")
//	years.Add(2024, "2024")
//
//	opts := layout.DefaultOptions()
//	chart := &heatmap.Chart[string, int]{
//	    Title:   "Revenue",
//	    XAxis:   months,
//	    YAxis:   years,
//	    Options: &opts,
//	}
//	img, err := chart.Render([]heatmap.Point[string, int]{
//	    heatmap.P("Jan", 2023, 1.5),
//	    heatmap.P("Feb", 2024, 2.0),
//	}, fonts.Default())
//
// The [pipeline] package wraps the same flow behind a content-addressed
// artifact cache and is what the heatgrid CLI runs.
//
// # Testing
//
//	go test ./pkg/...         # All tests
//	go test -run Example      # Examples only
//
// Redis cache tests run when HEATGRID_TEST_REDIS_URL is set.
//
// [axis]: https://pkg.go.dev/github.com/matzehuels/heatgrid/pkg/axis
// [gradient]: https://pkg.go.dev/github.com/matzehuels/heatgrid/pkg/gradient
// [grid]: https://pkg.go.dev/github.com/matzehuels/heatgrid/pkg/grid
// [layout]: https://pkg.go.dev/github.com/matzehuels/heatgrid/pkg/layout
// [blend]: https://pkg.go.dev/github.com/matzehuels/heatgrid/pkg/blend
// [numfmt]: https://pkg.go.dev/github.com/matzehuels/heatgrid/pkg/numfmt
// [render]: https://pkg.go.dev/github.com/matzehuels/heatgrid/pkg/render
// [render/sink]: https://pkg.go.dev/github.com/matzehuels/heatgrid/pkg/render/sink
// [fonts]: https://pkg.go.dev/github.com/matzehuels/heatgrid/pkg/fonts
// [heatmap]: https://pkg.go.dev/github.com/matzehuels/heatgrid/pkg/heatmap
// [io]: https://pkg.go.dev/github.com/matzehuels/heatgrid/pkg/io
// [config]: https://pkg.go.dev/github.com/matzehuels/heatgrid/pkg/config
// [cache]: https://pkg.go.dev/github.com/matzehuels/heatgrid/pkg/cache
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/heatgrid/pkg/pipeline
// [observability]: https://pkg.go.dev/github.com/matzehuels/heatgrid/pkg/observability
// [errors]: https://pkg.go.dev/github.com/matzehuels/heatgrid/pkg/errors
package pkg
