package utils

import (
	"strconv"
	"strings"
)

// FormatVersions renders a sorted BML version set for display, e.g.
// "1", "1, 2", or "-" when the report never mentioned the model.
func FormatVersions(versions []int) string {
	if len(versions) == 0 {
		return "-"
	}
	parts := make([]string, 0, len(versions))
	for _, v := range versions {
		parts = append(parts, strconv.Itoa(v))
	}
	return strings.Join(parts, ", ")
}
