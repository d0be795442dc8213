// Package io reads heatmap data tables from CSV, JSON and XLSX files.
//
// # Table Layout
//
// Every format describes the same thing: a list of (x, y, value) points plus
// the two axis titles. CSV and XLSX use three columns with a header row:
//
//	Month,Year,Revenue
//	Jan,2024,1200.5
//	Feb,2024,
//	Jan,2025,1830
//
// The first two header cells become the axis titles; the third is ignored.
// An empty value cell is a "no data" point. Axis entries are ordered by
// first occurrence, so the file order decides the chart order.
//
// JSON uses an object with explicit fields, and x/y keys may be strings or
// numbers:
//
//	{
//	  "x_title": "Month",
//	  "y_title": "Year",
//	  "points": [
//	    {"x": "Jan", "y": 2024, "value": 1200.5},
//	    {"x": "Feb", "y": 2024, "value": null}
//	  ]
//	}
//
// # Import and Export
//
// [Import] dispatches on the file extension. [ReadCSV], [ReadJSON] and
// [ReadXLSX] read from any io.Reader. [WriteJSON] and [ExportJSON] write the
// JSON form, which [ReadJSON] reads back identically.
package io
