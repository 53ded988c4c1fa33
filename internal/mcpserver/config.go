package mcpserver

import (
	"log/slog"
	"os"
	"strconv"
)

// serverConfig holds all configurable MCP server defaults.
// Loaded once at startup from environment variables via loadConfig().
type serverConfig struct {
	// IssueLimit caps the issues returned by the validate tool.
	IssueLimit int
	// FragmentLimit caps the fragments returned by the split tool.
	FragmentLimit int
	// Conformance enables the kin-openapi pass in validate by default.
	Conformance bool
}

// cfg is the active server configuration, initialized at package load time.
var cfg = loadConfig()

// loadConfig reads configuration from SPECWELD_MCP_* environment variables.
// Invalid values log a warning and fall back to the hardcoded default.
func loadConfig() *serverConfig {
	return &serverConfig{
		IssueLimit:    envInt("SPECWELD_MCP_ISSUE_LIMIT", 100),
		FragmentLimit: envInt("SPECWELD_MCP_FRAGMENT_LIMIT", 100),
		Conformance:   envBool("SPECWELD_MCP_CONFORMANCE", false),
	}
}

func envBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("invalid bool env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return b
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		slog.Warn("invalid int env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return n
}
