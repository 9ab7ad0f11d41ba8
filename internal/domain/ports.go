package domain

// ProjectScanner discovers files under a project root using the configured
// include patterns and excluded directory names.
type ProjectScanner interface {
	Scan(projectPath string, cfg QualityConfig) (*ScanResult, error)
}

// ScanResult holds the discovered file sets, paths relative to RootPath.
type ScanResult struct {
	RootPath    string   `json:"root_path"`
	TestFiles   []string `json:"test_files"`
	SourceFiles []string `json:"source_files"`
}

// ModuleExtractor parses one source file into its structural model. Parse
// failures degrade: the returned module carries ParseError and empty lists.
// The error return is reserved for extractor setup problems, never for bad
// input.
type ModuleExtractor interface {
	Extract(path string, content []byte) (*SourceModule, error)
}

// ConfigLoader reads project-level configuration, returning defaults when no
// config file exists.
type ConfigLoader interface {
	Load(projectPath string) (Config, error)
}

// ReportStore persists and retrieves project reports.
type ReportStore interface {
	Save(report *ProjectReport, path string) error
	Load(path string) (*ProjectReport, error)
}

// ReportHistory keeps an append-only record of analysis runs.
type ReportHistory interface {
	Append(projectPath string, entry HistoryEntry) error
	Load(projectPath string) ([]HistoryEntry, error)
}

// GitInfo exposes version-control metadata for a project.
type GitInfo interface {
	IsRepo(projectPath string) bool
	CommitHash(projectPath string) (string, error)
}
