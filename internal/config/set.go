package config

import (
	"fmt"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"
)

// Set updates one config key from its string form and persists the file.
// List-valued keys take comma-separated values.
func Set(key, value string) error {
	switch key {
	case "tool_path":
		config.ToolPath = value
	case "timeout_ms":
		ms, err := strconv.Atoi(value)
		if err != nil || ms < 0 {
			return fmt.Errorf("timeout_ms must be a non-negative integer, got %q", value)
		}
		config.TimeoutMS = ms
	case "log_level":
		if _, err := log.ParseLevel(value); err != nil {
			return fmt.Errorf("unknown log level %q", value)
		}
		config.LogLevel = value
	case "search_roots":
		config.SearchRoots = splitList(value)
	case "vendor_ids":
		config.VendorIDs = splitList(value)
	default:
		return fmt.Errorf("unknown config key %q", key)
	}
	return SaveConfig()
}

func splitList(value string) []string {
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
