// Package trace replays address traces against a cache model and records
// the outcome of every access.
package trace

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// An AccessKind tells what a trace entry asks the cache to do.
type AccessKind int

const (
	// KindRead is a read access.
	KindRead AccessKind = iota

	// KindWrite is a write access.
	KindWrite

	// KindInvalidate removes the addressed line from the cache.
	KindInvalidate
)

func (k AccessKind) String() string {
	switch k {
	case KindRead:
		return "read"
	case KindWrite:
		return "write"
	case KindInvalidate:
		return "invalidate"
	default:
		return fmt.Sprintf("AccessKind(%d)", int(k))
	}
}

// An Access is one entry of a trace.
type Access struct {
	Kind    AccessKind
	Address uint64
}

// Parse reads a text trace. Each line holds an operation letter and an
// address: "R 0x1f40" reads, "W 8000" writes, "I 0x1f40" invalidates.
// Addresses are hexadecimal with a 0x prefix or decimal without one. Blank
// lines and lines starting with # are skipped.
func Parse(r io.Reader) ([]Access, error) {
	var accesses []Access

	scanner := bufio.NewScanner(r)
	lineNum := 0

	for scanner.Scan() {
		lineNum++

		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		access, err := parseLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNum, err)
		}

		accesses = append(accesses, access)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return accesses, nil
}

// ParseFile reads a text trace from a file.
func ParseFile(path string) ([]Access, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	accesses, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return accesses, nil
}

func parseLine(line string) (Access, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return Access{}, fmt.Errorf(
			"expected an operation and an address, got %q", line)
	}

	var kind AccessKind
	switch strings.ToUpper(fields[0]) {
	case "R":
		kind = KindRead
	case "W":
		kind = KindWrite
	case "I":
		kind = KindInvalidate
	default:
		return Access{}, fmt.Errorf("unknown operation %q", fields[0])
	}

	addr, err := strconv.ParseUint(fields[1], 0, 64)
	if err != nil {
		return Access{}, fmt.Errorf("bad address %q: %w", fields[1], err)
	}

	return Access{Kind: kind, Address: addr}, nil
}
