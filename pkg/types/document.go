package types

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// TextFragment is one piece of an abstract. Upstream abstracts are arrays
// of typed fragments; only the text matters for display.
type TextFragment struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// Platform describes availability of a symbol or framework on one platform.
type Platform struct {
	Name         string `json:"name"`
	IntroducedAt string `json:"introducedAt"`
	Beta         bool   `json:"beta"`
}

// Metadata is the header block of a documentation page.
type Metadata struct {
	Title     string     `json:"title"`
	Role      string     `json:"role"`
	Platforms []Platform `json:"platforms"`
}

// TopicSection is a named grouping of reference identifiers within a page.
type TopicSection struct {
	Title       string   `json:"title"`
	Identifiers []string `json:"identifiers"`
}

// Reference describes one symbol mentioned by a documentation page.
// Platforms may be absent; callers fall back to the owning page's platforms.
type Reference struct {
	Identifier string         `json:"identifier"`
	Title      string         `json:"title"`
	Kind       string         `json:"kind"`
	Role       string         `json:"role"`
	URL        string         `json:"url"`
	Abstract   []TextFragment `json:"abstract"`
	Platforms  []Platform     `json:"platforms"`
}

// Document is a single documentation page, either a framework overview or
// one symbol. Identifiers listed in TopicSections are not guaranteed to
// exist in References; missing entries mean "no data available".
type Document struct {
	Metadata      Metadata       `json:"metadata"`
	Abstract      []TextFragment `json:"abstract"`
	TopicSections []TopicSection `json:"topicSections"`
	References    ReferenceMap   `json:"references"`
}

// Technology is one entry in the upstream technology index.
type Technology struct {
	Identifier string         `json:"identifier"`
	Title      string         `json:"title"`
	Kind       string         `json:"kind"`
	Role       string         `json:"role"`
	URL        string         `json:"url"`
	Abstract   []TextFragment `json:"abstract"`
}

// IsFramework reports whether the technology is a framework-level
// collection rather than a leaf node or an article.
func (t Technology) IsFramework() bool {
	return t.Kind == "symbol" && t.Role == "collection"
}

// ReferenceMap is the references object of a documentation page with its
// document key order preserved.
type ReferenceMap struct {
	refs  map[string]Reference
	order []string
}

// UnmarshalJSON decodes the references object, recording keys in the order
// they appear in the document. A JSON null decodes to an empty map.
func (m *ReferenceMap) UnmarshalJSON(data []byte) error {
	m.refs = make(map[string]Reference)
	m.order = nil
	return walkObject(data, func(key string, dec *json.Decoder) error {
		var ref Reference
		if err := dec.Decode(&ref); err != nil {
			return fmt.Errorf("reference %q: %w", key, err)
		}
		if ref.Identifier == "" {
			ref.Identifier = key
		}
		m.refs[key] = ref
		m.order = append(m.order, key)
		return nil
	})
}

// MarshalJSON round-trips the map as a plain JSON object.
func (m ReferenceMap) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.refs)
}

// Get returns the reference stored under id.
func (m *ReferenceMap) Get(id string) (Reference, bool) {
	ref, ok := m.refs[id]
	return ref, ok
}

// IDs returns reference identifiers in document order.
func (m *ReferenceMap) IDs() []string {
	return m.order
}

// Len returns the number of references.
func (m *ReferenceMap) Len() int {
	return len(m.refs)
}

// TechnologyIndex is the decoded technology index document. Entries keep
// the order they appear in the upstream references object.
type TechnologyIndex struct {
	technologies []Technology
}

// UnmarshalJSON extracts technologies from the index's references object.
// Entries without a title are kept; filtering is the caller's concern.
func (x *TechnologyIndex) UnmarshalJSON(data []byte) error {
	var raw struct {
		References json.RawMessage `json:"references"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	x.technologies = nil
	if len(raw.References) == 0 {
		return nil
	}
	return walkObject(raw.References, func(key string, dec *json.Decoder) error {
		var tech Technology
		if err := dec.Decode(&tech); err != nil {
			return fmt.Errorf("technology %q: %w", key, err)
		}
		if tech.Identifier == "" {
			tech.Identifier = key
		}
		x.technologies = append(x.technologies, tech)
		return nil
	})
}

// Technologies returns all entries in index order.
func (x *TechnologyIndex) Technologies() []Technology {
	return x.technologies
}

// Frameworks returns the framework-level entries in index order.
func (x *TechnologyIndex) Frameworks() []Technology {
	var out []Technology
	for _, tech := range x.technologies {
		if tech.IsFramework() {
			out = append(out, tech)
		}
	}
	return out
}

// walkObject streams over a JSON object, invoking fn once per key in
// document order. A JSON null is treated as an empty object.
func walkObject(data []byte, fn func(key string, dec *json.Decoder) error) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		return nil
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("expected JSON object, got %v", tok)
	}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("expected object key, got %v", keyTok)
		}
		if err := fn(key, dec); err != nil {
			return err
		}
	}
	_, err = dec.Token() // closing brace
	return err
}

// FlattenAbstract joins abstract fragments into one description string.
// Absent or empty abstracts flatten to "".
func FlattenAbstract(fragments []TextFragment) string {
	var b strings.Builder
	for _, f := range fragments {
		b.WriteString(f.Text)
	}
	return strings.TrimSpace(b.String())
}

// FormatPlatforms renders platform availability for display, for example
// "iOS 13.0+, macOS 10.15+ (Beta)". No usable platform data renders as
// "All platforms".
func FormatPlatforms(platforms []Platform) string {
	parts := make([]string, 0, len(platforms))
	for _, p := range platforms {
		if p.Name == "" {
			continue
		}
		var b strings.Builder
		b.WriteString(p.Name)
		if p.IntroducedAt != "" {
			b.WriteString(" ")
			b.WriteString(p.IntroducedAt)
			b.WriteString("+")
		}
		if p.Beta {
			b.WriteString(" (Beta)")
		}
		parts = append(parts, b.String())
	}
	if len(parts) == 0 {
		return "All platforms"
	}
	return strings.Join(parts, ", ")
}
