package schema

import "time"

// Custom string types for type safety.
type (
	// Column names a counter column of the traffic table.
	Column string

	// Quantity names the derived value that feeds a chart.
	Quantity string

	// Marker names the glyph drawn for each sampled point.
	Marker string

	// OutputFormat represents the chart image format.
	OutputFormat string

	// RenderBackend represents the charting library used to draw.
	RenderBackend string

	// DisplayMode represents the color scheme.
	DisplayMode string

	// ReportMode represents the format of the run report.
	ReportMode string

	// DatabaseBackend represents the database holding the traffic table.
	DatabaseBackend string
)

// Columns of the traffic table.
const (
	ClonesColumn    Column = "clones"
	ViewsColumn     Column = "views"
	DownloadsColumn Column = "total_downloads"
	StarsColumn     Column = "total_stars"
)

// Quantities a chart can plot.
const (
	DailyQuantity         Quantity = "daily"          // raw daily column
	CumulativeSumQuantity Quantity = "cumulative_sum" // running sum of a daily column
	SnapshotQuantity      Quantity = "snapshot"       // cumulative column, windowed from first non-zero
)

// Markers supported by the renderers.
const (
	CircleMarker   Marker = "o"
	SquareMarker   Marker = "s"
	StarMarker     Marker = "*"
	TriangleMarker Marker = "^"
	PlusMarker     Marker = "+"
	CrossMarker    Marker = "x"
)

// All output formats supported.
const (
	SVGFormat OutputFormat = "svg" // default
	PNGFormat OutputFormat = "png"
)

// All render backends supported.
const (
	GonumBackend   RenderBackend = "gonum" // default
	GoChartBackend RenderBackend = "gochart"
)

// All display modes supported.
const (
	LightMode DisplayMode = "light" // default
	DarkMode  DisplayMode = "dark"
)

// All report modes supported.
const (
	TextReport ReportMode = "text" // default
	JSONReport ReportMode = "json"
	CSVReport  ReportMode = "csv"
)

// All database backends supported.
const (
	SQLiteBackend     DatabaseBackend = "sqlite" // default
	MySQLBackend      DatabaseBackend = "mysql"
	PostgreSQLBackend DatabaseBackend = "postgresql"
)

// Sampling and layout constants.
const (
	// MinSplinePoints is the fewest samples a cubic spline is fitted through.
	MinSplinePoints = 4

	// DefaultCurveSamples is the number of positions a curve is evaluated at.
	DefaultCurveSamples = 300

	// MinSnapshotSpan is the narrowest window a snapshot chart is drawn with.
	MinSnapshotSpan = 3 * 24 * time.Hour

	// SinglePointSpan is the window drawn around a chart with one sample.
	SinglePointSpan = 10 * 24 * time.Hour

	// DefaultCompositeWidth is used when an input image declares no width.
	DefaultCompositeWidth = 800.0

	// DefaultCompositeHeight is used when an input image declares no height.
	DefaultCompositeHeight = 400.0
)

// ValidOutputFormats lists all valid output formats.
var ValidOutputFormats = map[OutputFormat]struct{}{
	SVGFormat: {},
	PNGFormat: {},
}

// ValidRenderBackends lists all valid render backends.
var ValidRenderBackends = map[RenderBackend]struct{}{
	GonumBackend:   {},
	GoChartBackend: {},
}

// ValidReportModes lists all valid report modes.
var ValidReportModes = map[ReportMode]struct{}{
	TextReport: {},
	JSONReport: {},
	CSVReport:  {},
}

// ValidDatabaseBackends lists all valid database backends.
var ValidDatabaseBackends = map[DatabaseBackend]struct{}{
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
}
