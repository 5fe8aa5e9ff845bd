package loader

import (
	"bufio"
	"fmt"
	"os"
)

// ReadLines reads a listing file into its lines. The file handle is
// closed before returning on every path.
func ReadLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open listing file: %w", err)
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read listing file: %w", err)
	}
	return lines, nil
}

// WriteReport writes the report body verbatim to the sink file.
func WriteReport(path string, body string) error {
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		return fmt.Errorf("failed to write report file: %w", err)
	}
	return nil
}
