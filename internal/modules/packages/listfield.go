package packages

import (
	"encoding/json"
	"log"
	"strings"
)

type ListKind int

const (
	ListEmpty ListKind = iota
	ListStructured
	ListRaw
)

// ListField is a free-text list column at the API boundary. It accepts either
// an already-structured string array or newline-delimited text, and keeps
// track of which one it got so legacy downgrades stay visible instead of
// being silently flattened.
type ListField struct {
	Kind  ListKind
	Items []string
	Raw   string
}

func StructuredList(items []string) ListField {
	if len(items) == 0 {
		return ListField{}
	}
	return ListField{Kind: ListStructured, Items: items}
}

func RawList(text string) ListField {
	if strings.TrimSpace(text) == "" {
		return ListField{}
	}
	return ListField{Kind: ListRaw, Raw: text}
}

func (f *ListField) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "" || trimmed == "null" {
		*f = ListField{}
		return nil
	}

	var items []string
	if err := json.Unmarshal(data, &items); err == nil {
		*f = StructuredList(items)
		return nil
	}

	var raw string
	if err := json.Unmarshal(data, &raw); err == nil {
		*f = RawList(raw)
		return nil
	}

	return &json.UnmarshalTypeError{Value: "list field", Type: nil}
}

func (f ListField) MarshalJSON() ([]byte, error) {
	switch f.Kind {
	case ListStructured:
		return json.Marshal(f.Items)
	case ListRaw:
		return json.Marshal(f.Raw)
	default:
		return []byte("null"), nil
	}
}

// Lines resolves the field to one entry per non-empty trimmed line.
func (f ListField) Lines() []string {
	switch f.Kind {
	case ListStructured:
		return trimNonEmpty(f.Items)
	case ListRaw:
		return trimNonEmpty(strings.Split(f.Raw, "\n"))
	default:
		return nil
	}
}

func trimNonEmpty(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		s = strings.TrimSpace(s)
		if s != "" {
			out = append(out, s)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// HydrateListColumn rebuilds a ListField from a stored jsonb column. Legacy
// rows sometimes hold plain text instead of a JSON array; every downgrade is
// logged so data shape problems stay auditable.
func HydrateListColumn(field string, column []byte) ListField {
	if len(column) == 0 {
		return ListField{}
	}

	var items []string
	if err := json.Unmarshal(column, &items); err == nil {
		return StructuredList(items)
	}

	var raw string
	if err := json.Unmarshal(column, &raw); err == nil {
		log.Printf("legacy_list_column field=%s kind=raw_text len=%d", field, len(raw))
		return RawList(raw)
	}

	log.Printf("legacy_list_column field=%s kind=unparseable len=%d", field, len(column))
	return RawList(string(column))
}
