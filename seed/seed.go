// Package seed loads CV record collections from YAML or JSON documents and
// ships a small sample collection.
package seed

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/poiesic/cvfind/core"
	"gopkg.in/yaml.v3"
)

//go:embed cvs.yaml
var sampleCVs []byte

// Default returns a fresh copy of the sample collection.
func Default() ([]*core.CVRecord, error) {
	return Load(bytes.NewReader(sampleCVs))
}

// LoadFile reads a record file from disk. See Load.
func LoadFile(path string) ([]*core.CVRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Load(f)
}

// Load decodes a list of records. Documents starting with '[' are read as
// JSON, anything else as YAML. Records without an ID get one derived from
// their name and email, and every record is validated.
func Load(r io.Reader) ([]*core.CVRecord, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var records []*core.CVRecord
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		err = json.Unmarshal(trimmed, &records)
	} else {
		err = yaml.Unmarshal(data, &records)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", core.ErrMalformedData, err)
	}

	for i, record := range records {
		if record == nil {
			return nil, fmt.Errorf("record %d: %w", i, core.ErrInvalidRecord)
		}
		if record.ID == "" {
			record.ID = core.IDFromContent(record.Name, record.Email)
		}
		if err := core.ValidateRecord(record); err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
	}
	return records, nil
}
