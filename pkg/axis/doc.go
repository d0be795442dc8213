// Package axis provides the categorical axes of a heatmap.
//
// # Overview
//
// An [Axis] maps arbitrary comparable keys (months, years, sensor names) to
// dense integer indices used by the layout engine, and carries the display
// label drawn for each key. Indices are assigned in first-insertion order,
// starting at 0, and are never reused: the axis has no removal operation.
//
// # Basic Usage
//
//	months := axis.New[time.Month]("Month")
//	months.Add(time.January, "Jan").Add(time.February, "Feb")
//	i, ok := months.IndexOf(time.February) // 1, true
//
// Adding a key that is already present is a no-op, so the first label wins.
// [Ints] and [Strings] build common axes in one call.
package axis
