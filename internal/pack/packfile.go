package pack

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/ruminaider/mcpack/internal/fsutil"
)

// PackFormatVersion is the only mmc-pack.json format version understood.
const PackFormatVersion = 1

// Record is the persisted form of one component.
type Record struct {
	UID            string `json:"uid"`
	CurrentVersion string `json:"currentVersion,omitempty"`
	CachedName     string `json:"cachedName,omitempty"`
}

type packDocument struct {
	FormatVersion int       `json:"formatVersion"`
	Components    *[]Record `json:"components"`
}

// MarshalPack serializes records as an indented mmc-pack.json document.
func MarshalPack(records []Record) ([]byte, error) {
	if records == nil {
		records = []Record{}
	}
	doc := packDocument{FormatVersion: PackFormatVersion, Components: &records}
	data, err := json.MarshalIndent(doc, "", "    ")
	if err != nil {
		return nil, fmt.Errorf("marshaling pack: %w", err)
	}
	return append(data, '\n'), nil
}

// ParsePack decodes an mmc-pack.json document. Any problem rejects the whole
// document; there is no partial result.
func ParsePack(data []byte) ([]Record, error) {
	var doc packDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPackFile, err)
	}
	if doc.FormatVersion != PackFormatVersion {
		return nil, fmt.Errorf("%w: formatVersion %d, expected %d", ErrInvalidPackFile, doc.FormatVersion, PackFormatVersion)
	}
	if doc.Components == nil {
		return nil, fmt.Errorf("%w: missing components", ErrInvalidPackFile)
	}
	records := *doc.Components
	for i, r := range records {
		if r.UID == "" {
			return nil, fmt.Errorf("%w: component %d has no uid", ErrInvalidPackFile, i)
		}
	}
	return records, nil
}

// ReadPackFile reads and parses the pack file at path.
func ReadPackFile(path string) ([]Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading pack file: %w", err)
	}
	records, err := ParsePack(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return records, nil
}

// WritePackFile atomically writes records to path.
func WritePackFile(path string, records []Record) error {
	data, err := MarshalPack(records)
	if err != nil {
		return err
	}
	return fsutil.WriteFileAtomic(path, data)
}

func recordsOf(components []*Component) []Record {
	records := make([]Record, 0, len(components))
	for _, c := range components {
		records = append(records, c.Record())
	}
	return records
}
