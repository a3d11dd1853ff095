package store

import (
	"bufio"
	"bytes"
	"errors"
	"os"
	"strings"
)

// LoadRosterFile reads newline-delimited names from path. A missing file
// yields no names; the roster substitutes its fallback list.
func LoadRosterFile(path string) ([]string, error) {
	body, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var lines []string
	sc := bufio.NewScanner(bytes.NewReader(body))
	for sc.Scan() {
		if ln := strings.TrimSpace(sc.Text()); ln != "" {
			lines = append(lines, ln)
		}
	}
	return lines, sc.Err()
}
