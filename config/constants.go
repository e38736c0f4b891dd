package config

// Server Constants
const (
	// DefaultPort is the HTTP port used when PORT is unset
	DefaultPort = "8080"

	// DefaultServerURL is where the TUI client looks for the server
	DefaultServerURL = "http://localhost:8080"
)

// Directory Constants
const (
	// ArticlesDir is the directory generated articles are saved to
	ArticlesDir = "articles"
)
