package core

//go:generate go run ../cmd/musgen

import (
	"encoding/binary"
	"encoding/hex"
	"slices"

	"github.com/go-crypt/x/blake2b"
)

// IDFromContent derives a deterministic record ID from identifying content using
// BLAKE2b hashing. Identical parts always produce identical IDs.
func IDFromContent(parts ...string) string {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	for _, part := range parts {
		var size [4]byte
		binary.BigEndian.PutUint32(size[:], uint32(len(part)))
		h.Write(size[:])
		h.Write([]byte(part))
	}
	return hex.EncodeToString(h.Sum(nil))
}

// Field names a top-level attribute of a CVRecord that a search term can match.
type Field string

const (
	FieldName         Field = "name"
	FieldEmail        Field = "email"
	FieldSummary      Field = "summary"
	FieldSkills       Field = "skills"
	FieldExperience   Field = "experience"
	FieldEducation    Field = "education"
	FieldPublications Field = "publications"
	FieldTags         Field = "tags"
)

// Education is a single entry of a candidate's education history.
type Education struct {
	Institution string `json:"institution" yaml:"institution"`
	Degree      string `json:"degree" yaml:"degree"`
	Field       string `json:"field" yaml:"field"`
	StartDate   string `json:"startDate" yaml:"startDate"`
	EndDate     string `json:"endDate" yaml:"endDate"`
}

// Experience is a single entry of a candidate's employment history.
type Experience struct {
	Company     string `json:"company" yaml:"company"`
	Position    string `json:"position" yaml:"position"`
	StartDate   string `json:"startDate" yaml:"startDate"`
	EndDate     string `json:"endDate" yaml:"endDate"`
	Description string `json:"description" yaml:"description"`
}

// Skill is a named competency with an optional proficiency level.
type Skill struct {
	Name  string `json:"name" yaml:"name" validate:"required"`
	Level string `json:"level,omitempty" yaml:"level,omitempty"`
}

// CVRecord is a structured candidate profile.
// Optional scalar fields are empty strings when absent and optional lists are nil.
type CVRecord struct {
	ID           string       `json:"id" yaml:"id" validate:"required"`
	Name         string       `json:"name" yaml:"name" validate:"required"`
	Email        string       `json:"email" yaml:"email"`
	Phone        string       `json:"phone,omitempty" yaml:"phone,omitempty"`
	Summary      string       `json:"summary,omitempty" yaml:"summary,omitempty"`
	Education    []Education  `json:"education" yaml:"education"`
	Experience   []Experience `json:"experience" yaml:"experience"`
	Skills       []Skill      `json:"skills" yaml:"skills" validate:"dive"`
	Languages    []string     `json:"languages,omitempty" yaml:"languages,omitempty"`
	Publications []string     `json:"publications,omitempty" yaml:"publications,omitempty"`
	FileURL      string       `json:"fileUrl,omitempty" yaml:"fileUrl,omitempty"`
	FileType     string       `json:"fileType,omitempty" yaml:"fileType,omitempty"`
	UploadDate   string       `json:"uploadDate" yaml:"uploadDate"`
	Tags         []string     `json:"tags,omitempty" yaml:"tags,omitempty"`
}

// Clone returns a deep copy of the record.
func (r *CVRecord) Clone() *CVRecord {
	if r == nil {
		return nil
	}
	c := *r
	c.Education = slices.Clone(r.Education)
	c.Experience = slices.Clone(r.Experience)
	c.Skills = slices.Clone(r.Skills)
	c.Languages = slices.Clone(r.Languages)
	c.Publications = slices.Clone(r.Publications)
	c.Tags = slices.Clone(r.Tags)
	return &c
}

// HasTag reports whether the record carries exactly the given tag.
func (r *CVRecord) HasTag(tag string) bool {
	return slices.Contains(r.Tags, tag)
}

// CVDraft holds whatever fields a parser managed to extract from a document.
// It is assembled into a full CVRecord before insertion.
type CVDraft struct {
	Name         string       `json:"name,omitempty"`
	Email        string       `json:"email,omitempty"`
	Phone        string       `json:"phone,omitempty"`
	Summary      string       `json:"summary,omitempty"`
	Education    []Education  `json:"education,omitempty"`
	Experience   []Experience `json:"experience,omitempty"`
	Skills       []Skill      `json:"skills,omitempty"`
	Languages    []string     `json:"languages,omitempty"`
	Publications []string     `json:"publications,omitempty"`
}

// RecordPatch describes a partial update. Nil fields are left unchanged.
// The record ID is immutable and cannot be patched.
type RecordPatch struct {
	Name         *string       `json:"name,omitempty"`
	Email        *string       `json:"email,omitempty"`
	Phone        *string       `json:"phone,omitempty"`
	Summary      *string       `json:"summary,omitempty"`
	Education    *[]Education  `json:"education,omitempty"`
	Experience   *[]Experience `json:"experience,omitempty"`
	Skills       *[]Skill      `json:"skills,omitempty"`
	Languages    *[]string     `json:"languages,omitempty"`
	Publications *[]string     `json:"publications,omitempty"`
	FileURL      *string       `json:"fileUrl,omitempty"`
	FileType     *string       `json:"fileType,omitempty"`
	UploadDate   *string       `json:"uploadDate,omitempty"`
	Tags         *[]string     `json:"tags,omitempty"`
}

// Apply returns a copy of record with the patch merged in. The input is not modified.
func (p *RecordPatch) Apply(record *CVRecord) *CVRecord {
	merged := record.Clone()
	if p == nil {
		return merged
	}
	setString(&merged.Name, p.Name)
	setString(&merged.Email, p.Email)
	setString(&merged.Phone, p.Phone)
	setString(&merged.Summary, p.Summary)
	setString(&merged.FileURL, p.FileURL)
	setString(&merged.FileType, p.FileType)
	setString(&merged.UploadDate, p.UploadDate)
	setSlice(&merged.Education, p.Education)
	setSlice(&merged.Experience, p.Experience)
	setSlice(&merged.Skills, p.Skills)
	setSlice(&merged.Languages, p.Languages)
	setSlice(&merged.Publications, p.Publications)
	setSlice(&merged.Tags, p.Tags)
	return merged
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

func setSlice[T any](dst *[]T, src *[]T) {
	if src != nil {
		*dst = slices.Clone(*src)
	}
}

// SearchResult pairs a record with its relevance score for a single query.
// MatchedFields lists each matching field once, in the order it was scored.
type SearchResult struct {
	Record        *CVRecord `json:"cv"`
	Score         int       `json:"relevanceScore"`
	MatchedFields []Field   `json:"matchedFields"`
}
