package catalog

import (
	"encoding/xml"
	"os"
	"strconv"
)

// ClassTable maps a class-table index to a display name. The FCD, VCD, and
// WCD files all share the same element shape, so one parser covers them.
type ClassTable map[int]string

// Name returns the display name for idx, or "" when unknown.
func (t ClassTable) Name(idx int) string {
	if t == nil {
		return ""
	}
	return t[idx]
}

// classFile accepts any element name so the same shape parses FCD, VCD,
// and WCD tables alike.
type classFile struct {
	Entries []classEntry `xml:",any"`
}

type classEntry struct {
	Num  string `xml:"Num,attr"`
	Name string `xml:"Name"`
}

// ParseClassTable reads a class-name table. Entries with an invalid index
// or no name are ignored; class tables are auxiliary and never fatal.
func ParseClassTable(path string) (ClassTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var file classFile
	if err := xml.Unmarshal(data, &file); err != nil {
		return nil, err
	}

	table := make(ClassTable, len(file.Entries))
	for _, entry := range file.Entries {
		num, err := strconv.Atoi(entry.Num)
		if err != nil || num < 0 || entry.Name == "" {
			continue
		}
		table[num] = entry.Name
	}
	return table, nil
}

// loadClassTable is the tolerant variant used during catalog parsing: an
// absent table just means names cannot be resolved from it.
func loadClassTable(path string) ClassTable {
	table, err := ParseClassTable(path)
	if err != nil {
		return nil
	}
	return table
}
