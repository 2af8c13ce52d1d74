package schema

// Custom string types for type safety.
type (
	// OutputMode represents the format of the output.
	OutputMode string

	// DatabaseBackend represents the database backend for the results store.
	DatabaseBackend string

	// ResultsSource represents where geoprocessing results are read from.
	ResultsSource string

	// ColumnKind represents the type of a table column.
	ColumnKind string
)

// All output modes supported.
const (
	CSVOut     OutputMode = "csv"
	TextOut    OutputMode = "text" // default
	JSONOut    OutputMode = "json"
	ParquetOut OutputMode = "parquet"
)

// All results store backends supported.
const (
	SQLiteBackend     DatabaseBackend = "sqlite" // default
	MySQLBackend      DatabaseBackend = "mysql"
	PostgreSQLBackend DatabaseBackend = "postgresql"
	NoneBackend       DatabaseBackend = "none"
)

// All results sources supported.
const (
	FileSource  ResultsSource = "file" // default
	StoreSource ResultsSource = "store"
	S3Source    ResultsSource = "s3"
)

// All column kinds supported by the table surface.
const (
	ClassColumn       ColumnKind = "class"
	MetricValueColumn ColumnKind = "metricValue"
	MetricChartColumn ColumnKind = "metricChart"
	LayerToggleColumn ColumnKind = "layerToggle"
	TextColumn        ColumnKind = "text"
)

// Identifiers used by the size card.
const (
	SizeFunctionName    = "boundaryAreaOverlap"
	SizeMetricGroupID   = "boundaryAreaOverlap"
	SizePrecalcMetricID = "area"
	DefaultBoundary     = "default-boundary"
	SizeDownloadName    = "size"
	PercMetricSuffix    = "Perc"
	GapMarker           = "—"
)

// DefaultClassPriority is the display priority of boundary classes.
var DefaultClassPriority = []string{"eez", "offshore", "contiguous"}

// ValidOutputModes lists all valid output modes for reports.
var ValidOutputModes = map[OutputMode]struct{}{
	CSVOut:  {},
	TextOut: {},
	JSONOut: {},
}

// ValidDownloadModes lists all valid output modes for data downloads.
var ValidDownloadModes = map[OutputMode]struct{}{
	CSVOut:     {},
	JSONOut:    {},
	ParquetOut: {},
}

// ValidDatabaseBackends lists all valid results store backends.
var ValidDatabaseBackends = map[DatabaseBackend]struct{}{
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
	NoneBackend:       {},
}

// ValidResultsSources lists all valid results sources.
var ValidResultsSources = map[ResultsSource]struct{}{
	FileSource:  {},
	StoreSource: {},
	S3Source:    {},
}
