package workspace

const (
	// client-side cap, matching what the server keeps per file
	DefaultMaxFileChars = 50000

	// bytes inspected for a NUL when deciding whether a file is binary
	sampleBytes = 1024
)

// directories skipped unless Options.IncludeAll is set
var ignoredDirs = map[string]bool{
	".git":         true,
	"node_modules": true,
	"dist":         true,
	"build":        true,
}

var allowedExtensions = map[string]bool{
	".py":   true,
	".js":   true,
	".ts":   true,
	".java": true,
	".go":   true,
	".md":   true,
	".txt":  true,
}

// files picked up by exact name regardless of extension
var allowedNames = map[string]bool{
	"Dockerfile":       true,
	"package.json":     true,
	"pyproject.toml":   true,
	"requirements.txt": true,
}

type Options struct {
	IncludeAll   bool // also descend into .git, node_modules, dist and build
	MaxFiles     int  // 0 means no limit
	MaxFileChars int  // 0 means DefaultMaxFileChars
}

// one collected file, shaped like an entry of the query payload
type File struct {
	Path      string `json:"path"`
	Size      int64  `json:"size"`
	Content   string `json:"content"`
	Truncated bool   `json:"truncated"`
}

type Stats struct {
	Collected  int
	Binary     int // sent with metadata only
	Truncated  int
	Unreadable int
	Dropped    int // over MaxFiles
}
