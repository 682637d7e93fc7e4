package reader

import (
	"bufio"
	"os"
	"strings"
)

// ReadTypes loads a mapcss-style types.txt mapping: one type string per
// line, 0-indexed by line order. Pipe characters are normalized to
// hyphens and blank lines are skipped, matching
// original_source/mwm/mwm.py's read_types. The result is used to resolve
// a dat feature's per-type varuint ids; an id past the end of the table
// falls back to the decimal string of id+1 instead.
func ReadTypes(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var types []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		types = append(types, strings.ReplaceAll(line, "|", "-"))
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	return types, nil
}
