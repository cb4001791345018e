// Package schema converts tree-shaped API documentation exports into the
// normalized endpoint summary the refinement engine hands to the model as
// an [API_DOCUMENT] input. It performs no I/O; it operates on already
// decoded text.
package schema

import (
	"encoding/json"
	"fmt"
	"regexp"
	"sort"
	"strings"

	apperrors "blueprint-ai/backend/internal/errors"
)

// FieldNode is one node of a normalized field tree. Object-typed nodes
// carry Properties; array-typed nodes carry a single Items descriptor for
// the element shape.
type FieldNode struct {
	Type        string               `json:"type"`
	Description string               `json:"description,omitempty"`
	Properties  map[string]FieldNode `json:"properties,omitempty"`
	Items       *FieldNode           `json:"items,omitempty"`
}

// Suggestion is one flattened response field with a mechanically derived
// human-readable label, for display next to the raw summary.
type Suggestion struct {
	FieldName    string `json:"field_name"`
	DisplayName  string `json:"display_name"`
	Type         string `json:"type"`
	Description  string `json:"description"`
	UISuggestion string `json:"ui_suggestion"`
}

// Endpoint is one retained API endpoint of the summary.
type Endpoint struct {
	Title          string               `json:"title"`
	Path           string               `json:"path"`
	Method         string               `json:"method"`
	RequestParams  map[string]FieldNode `json:"request_params"`
	ResponseFields map[string]FieldNode `json:"response_fields"`
	Suggestions    []Suggestion         `json:"field_mapping_suggestions"`
}

// Summary is the wire contract handed verbatim to the refinement engine.
// Its JSON shape is the one the refinement system instruction documents to
// the model.
type Summary struct {
	APIEndpoints []Endpoint `json:"apiEndpoints"`
}

// JSON serializes the summary in the form sent to the model.
func (s *Summary) JSON() (string, error) {
	out, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// rawField mirrors one entry of the export's flat field lists. Children
// nest; Path is a positional marker whose ".0" suffix identifies array
// item descriptors.
type rawField struct {
	Name        string     `json:"name"`
	Type        string     `json:"type"`
	Description string     `json:"description"`
	Path        string     `json:"path"`
	Children    []rawField `json:"children"`
}

type rawEndpoint struct {
	Title     string     `json:"title"`
	Path      string     `json:"path"`
	Method    string     `json:"method"`
	ReqDetail []rawField `json:"req_detail"`
	ResDetail []rawField `json:"res_detail"`
}

type rawDocument struct {
	List []rawEndpoint `json:"list"`
}

// Extract parses an API documentation export and folds it into the
// normalized summary. The top-level "list" array is required; endpoint
// entries missing path, method or title are silently excluded.
func Extract(raw []byte) (*Summary, error) {
	var doc rawDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrMalformedSchema, err)
	}
	if doc.List == nil {
		return nil, fmt.Errorf("%w: top-level \"list\" array is missing", apperrors.ErrMalformedSchema)
	}

	summary := &Summary{APIEndpoints: []Endpoint{}}
	for _, api := range doc.List {
		if api.Path == "" || api.Method == "" || api.Title == "" {
			continue
		}
		resFields := foldFields(api.ResDetail)
		summary.APIEndpoints = append(summary.APIEndpoints, Endpoint{
			Title:          api.Title,
			Path:           api.Path,
			Method:         api.Method,
			RequestParams:  foldFields(api.ReqDetail),
			ResponseFields: resFields,
			Suggestions:    fieldSuggestions(resFields),
		})
	}
	return summary, nil
}

// isItemMarker reports whether a field entry is a positional array-item
// descriptor rather than a named field.
func isItemMarker(f rawField) bool {
	return f.Name == "0" || strings.HasSuffix(f.Path, ".0")
}

// foldFields turns a flat child list into a name-keyed field tree. Names
// are unique at each level in the source format; a duplicate overwrites
// the earlier entry rather than erroring. For array fields the first
// qualifying child stands in for the element shape; arrays are assumed
// homogeneous, which drops information when they are not.
func foldFields(fields []rawField) map[string]FieldNode {
	result := map[string]FieldNode{}
	for _, field := range fields {
		if field.Name == "0" && strings.HasSuffix(field.Path, ".0") {
			continue
		}
		node := FieldNode{Type: field.Type, Description: field.Description}
		switch {
		case field.Type == "object" && len(field.Children) > 0:
			node.Properties = foldFields(field.Children)
		case field.Type == "array" && len(field.Children) > 0:
			item := field.Children[0]
			for _, child := range field.Children {
				if isItemMarker(child) {
					item = child
					break
				}
			}
			if item.Type == "object" && len(item.Children) > 0 {
				node.Items = &FieldNode{Type: "object", Properties: foldFields(item.Children)}
			} else {
				node.Items = &FieldNode{Type: item.Type}
			}
		case field.Type == "array":
			node.Items = &FieldNode{Type: "any"}
		}
		result[field.Name] = node
	}
	return result
}

// fieldSuggestions flattens a response field tree into dotted paths with
// display labels. Keys are walked in sorted order so output is stable.
func fieldSuggestions(fields map[string]FieldNode) []Suggestion {
	suggestions := []Suggestion{}
	var walk func(fields map[string]FieldNode, prefix string)
	walk = func(fields map[string]FieldNode, prefix string) {
		names := make([]string, 0, len(fields))
		for name := range fields {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			field := fields[name]
			fullName := name
			if prefix != "" {
				fullName = prefix + "." + name
			}
			display := DisplayName(name)
			suggestions = append(suggestions, Suggestion{
				FieldName:    fullName,
				DisplayName:  display,
				Type:         field.Type,
				Description:  field.Description,
				UISuggestion: fmt.Sprintf("%s (%s, %s)", display, fullName, field.Type),
			})
			if field.Type == "object" && field.Properties != nil {
				walk(field.Properties, fullName)
			}
			if field.Type == "array" && field.Items != nil && field.Items.Properties != nil {
				walk(field.Items.Properties, fullName)
			}
		}
	}
	walk(fields, "")
	return suggestions
}

var capitalRe = regexp.MustCompile(`([A-Z])`)

// DisplayName derives a human-readable label from a field identifier:
// spaces before capitals, an initial capital, and trailing Id/Url
// abbreviations expanded.
func DisplayName(fieldName string) string {
	s := capitalRe.ReplaceAllString(fieldName, " $1")
	s = strings.TrimSpace(s)
	if s == "" {
		return s
	}
	s = strings.ToUpper(s[:1]) + s[1:]
	if strings.HasSuffix(s, "Id") {
		s = strings.TrimSpace(strings.TrimSuffix(s, "Id"))
		if s == "" {
			return "ID"
		}
		return s + " ID"
	}
	if strings.HasSuffix(s, "Url") {
		s = strings.TrimSpace(strings.TrimSuffix(s, "Url"))
		if s == "" {
			return "URL"
		}
		return s + " URL"
	}
	return s
}
