package routes

import (
	"bytes"
	"os"
	"strconv"
	"strings"

	"github.com/tyriatrails/routelint/pkg/errors"
)

// anchorFields are the fields the inserted StartGameMapId line is placed
// after, in priority order. The first one present in the file wins.
var anchorFields = []string{
	"LastUpdated",
	"Author",
	"CreatedWithTool",
	"FormatVersion",
	"Name",
}

// InsertStartGameMapID inserts a StartGameMapId field into the raw record
// text without disturbing any existing bytes. The new line is placed
// immediately after the first anchor field present, copies the anchor
// line's indentation and line ending, and comma placement is adjusted so
// the document stays valid JSON.
func InsertStartGameMapID(raw []byte, id int, path string) ([]byte, error) {
	if bytes.Contains(raw, []byte(`"StartGameMapId"`)) {
		return nil, errors.NewRepairError(path, "StartGameMapId already present")
	}

	lines := splitAfterEOL(raw)

	anchorIdx := -1
	for _, field := range anchorFields {
		if i := findFieldLine(lines, field); i >= 0 {
			anchorIdx = i
			break
		}
	}
	if anchorIdx < 0 {
		return nil, errors.NewRepairError(path, "no anchor field found for insertion")
	}

	anchor := lines[anchorIdx]
	content, eol := splitEOL(anchor)
	if eol == "" {
		eol = dominantEOL(lines)
	}

	indent := content[:len(content)-len(strings.TrimLeft(content, " \t"))]
	trimmed := strings.TrimRight(content, " \t")

	newField := indent + `"StartGameMapId": ` + strconv.Itoa(id)
	if strings.HasSuffix(trimmed, ",") {
		// Fields follow the anchor, so the inserted line needs a comma too.
		newField += ","
	} else {
		// Anchor was the last member; it gains the comma instead.
		lines[anchorIdx] = trimmed + "," + content[len(trimmed):] + eol
	}
	newField += eol

	var out bytes.Buffer
	out.Grow(len(raw) + len(newField))
	for i, line := range lines {
		out.WriteString(line)
		if i == anchorIdx {
			out.WriteString(newField)
		}
	}
	return out.Bytes(), nil
}

// RepairFile applies InsertStartGameMapID to a file in place, preserving
// the file mode.
func RepairFile(path string, id int) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return errors.NewIOError("read", path, err)
	}

	fixed, err := InsertStartGameMapID(raw, id, path)
	if err != nil {
		return err
	}

	info, err := os.Stat(path)
	if err != nil {
		return errors.NewIOError("stat", path, err)
	}
	if err := os.WriteFile(path, fixed, info.Mode().Perm()); err != nil {
		return errors.NewIOError("write", path, err)
	}
	return nil
}

// splitAfterEOL splits raw into lines, each keeping its trailing line
// ending. The final element has no EOL when the file lacks one.
func splitAfterEOL(raw []byte) []string {
	var lines []string
	start := 0
	for i := 0; i < len(raw); i++ {
		if raw[i] == '\n' {
			lines = append(lines, string(raw[start:i+1]))
			start = i + 1
		}
	}
	if start < len(raw) {
		lines = append(lines, string(raw[start:]))
	}
	return lines
}

// splitEOL separates a line into its content and line ending.
func splitEOL(line string) (content, eol string) {
	if strings.HasSuffix(line, "\r\n") {
		return line[:len(line)-2], "\r\n"
	}
	if strings.HasSuffix(line, "\n") {
		return line[:len(line)-1], "\n"
	}
	return line, ""
}

func eolOf(line string) string {
	_, eol := splitEOL(line)
	return eol
}

// dominantEOL picks the line ending used elsewhere in the file, for the
// case where the anchor is the unterminated final line.
func dominantEOL(lines []string) string {
	for _, line := range lines {
		if eol := eolOf(line); eol != "" {
			return eol
		}
	}
	return "\n"
}

// findFieldLine returns the index of the first line whose first token is
// the quoted field name followed by a colon.
func findFieldLine(lines []string, field string) int {
	needle := `"` + field + `"`
	for i, line := range lines {
		trimmed := strings.TrimLeft(line, " \t")
		if !strings.HasPrefix(trimmed, needle) {
			continue
		}
		rest := strings.TrimLeft(trimmed[len(needle):], " \t")
		if strings.HasPrefix(rest, ":") {
			return i
		}
	}
	return -1
}
