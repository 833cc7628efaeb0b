// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package ingestion

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/poiesic/cvfind/ai"
	"github.com/poiesic/cvfind/core"
)

const (
	defaultName  = "Unknown"
	defaultEmail = "unknown@example.com"
	dateLayout   = "2006-01-02"
)

// processor turns a document into a record ready for insertion.
type processor struct {
	extractor ai.TextExtractor
	parser    ai.CVParser
	now       func() time.Time
	newID     func() string
	logger    *slog.Logger
}

// process extracts text from doc, parses it and assembles the record.
// Nothing is stored.
func (p *processor) process(ctx context.Context, doc ai.Document) (*core.CVRecord, error) {
	if doc.MimeType != "" && !ai.IsSupported(doc.MimeType) {
		return nil, fmt.Errorf("%w: %s", ai.ErrUnsupportedFormat, doc.MimeType)
	}

	text, err := p.extractor.ExtractText(ctx, doc)
	if err != nil {
		p.logger.Error("error extracting text", "document", doc.Name, "err", err)
		return nil, err
	}
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%w: %s", ErrEmptyDocument, doc.Name)
	}

	draft, err := p.parser.ParseCV(ctx, text)
	if err != nil {
		p.logger.Error("error parsing cv", "document", doc.Name, "err", err)
		return nil, err
	}

	record := Assemble(draft, doc, p.newID(), p.now())
	p.logger.Debug("assembled record", "document", doc.Name, "id", record.ID, "name", record.Name)
	return record, nil
}

// Assemble builds a complete record from a parsed draft. Missing name and
// email fall back to placeholders, the upload date is now in UTC as
// YYYY-MM-DD, file details come from doc and the record starts untagged.
func Assemble(draft *core.CVDraft, doc ai.Document, id string, now time.Time) *core.CVRecord {
	if draft == nil {
		draft = &core.CVDraft{}
	}

	record := &core.CVRecord{
		ID:           id,
		Name:         orDefault(draft.Name, defaultName),
		Email:        orDefault(draft.Email, defaultEmail),
		Phone:        draft.Phone,
		Summary:      draft.Summary,
		Education:    draft.Education,
		Experience:   draft.Experience,
		Skills:       draft.Skills,
		Languages:    draft.Languages,
		Publications: draft.Publications,
		FileURL:      doc.URI,
		FileType:     doc.MimeType,
		UploadDate:   now.UTC().Format(dateLayout),
	}
	return record.Clone()
}

func orDefault(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}
