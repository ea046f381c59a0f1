package container

import (
	"fmt"
	"sort"
	"strings"
)

// SerializeMetadata renders m as "key=value\n" lines, UTF-8, keys
// sorted for a deterministic byte layout. Keys and values MUST NOT
// contain '\n', and keys additionally MUST NOT contain '='.
func SerializeMetadata(m map[string]string) ([]byte, error) {
	if len(m) == 0 {
		return nil, nil
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var buf strings.Builder
	for _, k := range keys {
		v := m[k]
		if strings.ContainsAny(k, "=\n") {
			return nil, fmt.Errorf("container: metadata key %q contains '=' or newline", k)
		}
		if strings.Contains(v, "\n") {
			return nil, fmt.Errorf("container: metadata value for key %q contains newline", k)
		}
		buf.WriteString(k)
		buf.WriteByte('=')
		buf.WriteString(v)
		buf.WriteByte('\n')
	}
	return []byte(buf.String()), nil
}

// DeserializeMetadata parses "key=value\n" lines back into a map.
// Malformed lines (missing '=') are skipped rather than treated as
// fatal, matching the decoder's tolerance for internal anomalies.
func DeserializeMetadata(data []byte) map[string]string {
	if len(data) == 0 {
		return nil
	}
	m := make(map[string]string)
	for _, line := range strings.Split(string(data), "\n") {
		if line == "" {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		m[key] = value
	}
	return m
}
