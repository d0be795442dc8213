package heatmap_test

import (
	"fmt"

	"github.com/matzehuels/heatgrid/pkg/axis"
	"github.com/matzehuels/heatgrid/pkg/heatmap"
	"github.com/matzehuels/heatgrid/pkg/layout"
)

func ExampleChart_Scene() {
	opts := layout.DefaultOptions()
	opts.LegendSteps = 3

	chart := &heatmap.Chart[string, int]{
		Title:   "Load",
		XAxis:   axis.Strings("Host", "web-1", "web-2"),
		YAxis:   axis.Ints("Hour", 0, 1),
		Options: &opts,
	}
	points := []heatmap.Point[string, int]{
		heatmap.P("web-1", 0, 0.2),
		heatmap.P("web-2", 0, 0.6),
		{X: "web-1", Y: 1}, // no data
		heatmap.P("web-2", 1, 1),
	}

	// A fixed-width measurer keeps the example independent of fonts.
	measure := layout.MeasureFunc(func(text string, f layout.Font) (int, int) {
		return len(text) * int(f.Size) / 2, int(f.Size)
	})
	scene, err := chart.Scene(points, measure)
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, e := range scene.Layout.Legend.Entries {
		fmt.Println(e.Label.Text)
	}
	// Output:
	// 1
	// 0.6
	// 0.2
}
