package logger

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
)

// messager matches zerr.Error, which reports its message without the cause chain.
type messager interface {
	Message() string
}

type metadataer interface {
	Metadata() map[string]any
}

// ErrorEntry is one level of an error chain.
type ErrorEntry struct {
	Message  string
	Metadata map[string]any
}

// collectErrorEntries flattens an error chain, descending into joined errors in order.
// Metadata of message-less wrappers is attached to the next entry.
func collectErrorEntries(err error) []ErrorEntry {
	var entries []ErrorEntry
	var pending map[string]any

	var walk func(error)
	walk = func(e error) {
		for e != nil {
			if joined, ok := e.(interface{ Unwrap() []error }); ok {
				for _, inner := range joined.Unwrap() {
					walk(inner)
				}
				return
			}

			m, ok := e.(messager)
			if !ok {
				entries = append(entries, ErrorEntry{Message: e.Error(), Metadata: pending})
				pending = nil
				return
			}

			var md map[string]any
			if withMeta, ok := e.(metadataer); ok {
				md = withMeta.Metadata()
			}

			if m.Message() == "" {
				pending = mergeMetadata(pending, md)
			} else {
				entries = append(entries, ErrorEntry{Message: m.Message(), Metadata: mergeMetadata(pending, md)})
				pending = nil
			}
			e = errors.Unwrap(e)
		}
	}
	walk(err)

	return entries
}

func mergeMetadata(a, b map[string]any) map[string]any {
	if len(a) == 0 && len(b) == 0 {
		return nil
	}
	merged := make(map[string]any, len(a)+len(b))
	maps.Copy(merged, a)
	maps.Copy(merged, b)
	return merged
}

// formatErrorEntries renders the entries as the main error followed by its causes.
func formatErrorEntries(entries []ErrorEntry) string {
	var lines []string

	for i, entry := range entries {
		msgLines := strings.Split(entry.Message, "\n")

		var indent string
		if i == 0 {
			lines = append(lines, "Error: "+msgLines[0])
			indent = "       "
		} else {
			if i == 1 {
				lines = append(lines, "", "  Caused by:")
			}
			lines = append(lines, "    → "+msgLines[0])
			indent = "      "
		}

		for _, line := range msgLines[1:] {
			lines = append(lines, indent+line)
		}
		for _, key := range slices.Sorted(maps.Keys(entry.Metadata)) {
			lines = append(lines, fmt.Sprintf("%s%s: %v", indent, key, entry.Metadata[key]))
		}
	}

	return strings.Join(lines, "\n")
}
