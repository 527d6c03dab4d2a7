package validators

import (
	"context"
	"fmt"
	"math"
	"net/url"
	"slices"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/billiard-pos/internal/app"
	"github.com/MKhiriev/billiard-pos/models"
)

// Location is where a parameter is read from.
type Location string

const (
	InPath  Location = "path"
	InQuery Location = "query"
	InBody  Location = "body"
)

// locationOrder is the order violations are reported in.
var locationOrder = []Location{InPath, InQuery, InBody}

// Type is the normalized type of a parameter.
type Type int

const (
	TypeString Type = iota
	TypeInt
	TypeNumber
	TypeBool
	TypeStrings
)

// Field is the rule set of a single parameter.
type Field struct {
	Name     string
	In       Location
	Type     Type
	Required bool

	// Min and Max bound numeric values.
	Min *float64
	Max *float64

	// MinLen and MaxLen bound string length in runes. For TypeStrings
	// MaxLen bounds every item. Zero means unbounded.
	MinLen int
	MaxLen int

	// MinItems and MaxItems bound TypeStrings lists. Zero means unbounded.
	MinItems int
	MaxItems int

	// Enum restricts string values.
	Enum []string

	// KeepSpace disables whitespace trimming of string values.
	KeepSpace bool
}

// Schema validates one endpoint.
type Schema struct {
	// Name identifies the schema in logs (e.g. "products.create").
	Name string

	Fields []Field

	// RequireAnyBody demands that at least one body field is present.
	RequireAnyBody bool
}

// Input carries the raw parameters of a request.
type Input struct {
	Path  map[string]string
	Query url.Values
	Body  map[string]any
}

// Validate checks in against every field of the schema and returns the
// normalized values, or an *app.Error listing all violations.
func (s *Schema) Validate(_ context.Context, in Input) (Values, error) {
	values := make(Values, len(s.Fields))
	var violations []models.FieldViolation

	for _, loc := range locationOrder {
		for _, field := range s.Fields {
			if field.In != loc {
				continue
			}

			raw, present := lookup(in, field)
			if !present {
				if field.Required {
					violations = append(violations, violation(field, msgRequired))
				}
				continue
			}

			value, msg := field.normalize(raw)
			if msg != "" {
				violations = append(violations, violation(field, msg))
				continue
			}
			values[field.Name] = value
		}
	}

	if s.RequireAnyBody && len(violations) == 0 && !s.hasBodyValue(values) {
		violations = append(violations, models.FieldViolation{Field: "body", In: string(InBody), Message: msgNoFields})
	}

	if len(violations) > 0 {
		return nil, app.ValidationFailed(violations)
	}
	return values, nil
}

func (s *Schema) hasBodyValue(values Values) bool {
	for _, field := range s.Fields {
		if field.In != InBody {
			continue
		}
		if _, ok := values[field.Name]; ok {
			return true
		}
	}
	return false
}

func violation(field Field, msg string) models.FieldViolation {
	return models.FieldViolation{Field: field.Name, In: string(field.In), Message: msg}
}

// lookup returns the raw value of field. Empty strings count as absent.
func lookup(in Input, field Field) (any, bool) {
	switch field.In {
	case InPath:
		v, ok := in.Path[field.Name]
		return v, ok && v != ""
	case InQuery:
		vs, ok := in.Query[field.Name]
		if !ok || len(vs) == 0 {
			return nil, false
		}
		if field.Type == TypeStrings {
			return vs, true
		}
		return vs[0], vs[0] != ""
	case InBody:
		v, ok := in.Body[field.Name]
		if !ok || v == nil {
			return nil, false
		}
		if s, isString := v.(string); isString && s == "" && field.Type != TypeString {
			return nil, false
		}
		return v, true
	}
	return nil, false
}

func (f Field) normalize(raw any) (any, string) {
	switch f.Type {
	case TypeString:
		return f.normalizeString(raw)
	case TypeInt:
		return f.normalizeInt(raw)
	case TypeNumber:
		return f.normalizeNumber(raw)
	case TypeBool:
		return normalizeBool(raw)
	case TypeStrings:
		return f.normalizeStrings(raw)
	}
	return nil, msgNotString
}

func (f Field) normalizeString(raw any) (any, string) {
	s, ok := raw.(string)
	if !ok {
		return nil, msgNotString
	}
	if !f.KeepSpace {
		s = strings.TrimSpace(s)
	}
	if s == "" && f.Required {
		return nil, msgRequired
	}
	n := utf8.RuneCountInString(s)
	if f.MinLen > 0 && n < f.MinLen {
		return nil, fmt.Sprintf(msgTooShort, f.MinLen)
	}
	if f.MaxLen > 0 && n > f.MaxLen {
		return nil, fmt.Sprintf(msgTooLong, f.MaxLen)
	}
	if len(f.Enum) > 0 && !slices.Contains(f.Enum, s) {
		return nil, msgNotInEnum + strings.Join(f.Enum, ", ")
	}
	return s, ""
}

func (f Field) normalizeInt(raw any) (any, string) {
	var n float64
	switch v := raw.(type) {
	case float64:
		n = v
	case string:
		i, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return nil, msgNotInteger
		}
		n = float64(i)
	default:
		return nil, msgNotInteger
	}
	if n != math.Trunc(n) || math.IsInf(n, 0) || math.Abs(n) > 1<<53 {
		return nil, msgNotInteger
	}
	if msg := f.checkRange(n); msg != "" {
		return nil, msg
	}
	return int64(n), ""
}

func (f Field) normalizeNumber(raw any) (any, string) {
	var n float64
	switch v := raw.(type) {
	case float64:
		n = v
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return nil, msgNotNumber
		}
		n = parsed
	default:
		return nil, msgNotNumber
	}
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return nil, msgNotNumber
	}
	if msg := f.checkRange(n); msg != "" {
		return nil, msg
	}
	return n, ""
}

func (f Field) checkRange(n float64) string {
	if f.Min != nil && n < *f.Min {
		return msgTooSmall + strconv.FormatFloat(*f.Min, 'f', -1, 64)
	}
	if f.Max != nil && n > *f.Max {
		return msgTooLarge + strconv.FormatFloat(*f.Max, 'f', -1, 64)
	}
	return ""
}

func normalizeBool(raw any) (any, string) {
	switch v := raw.(type) {
	case bool:
		return v, ""
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "true", "1":
			return true, ""
		case "false", "0":
			return false, ""
		}
	}
	return nil, msgNotBool
}

func (f Field) normalizeStrings(raw any) (any, string) {
	var items []string
	switch v := raw.(type) {
	case []string:
		for _, s := range v {
			items = append(items, strings.Split(s, ",")...)
		}
	case string:
		items = strings.Split(v, ",")
	case []any:
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, msgNotStringList
			}
			items = append(items, s)
		}
	default:
		return nil, msgNotStringList
	}

	out := make([]string, 0, len(items))
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		if f.MaxLen > 0 && utf8.RuneCountInString(item) > f.MaxLen {
			return nil, fmt.Sprintf(msgItemTooLong, f.MaxLen)
		}
		if !slices.Contains(out, item) {
			out = append(out, item)
		}
	}

	if f.MinItems > 0 && len(out) < f.MinItems {
		return nil, fmt.Sprintf(msgTooFewItems, f.MinItems)
	}
	if f.MaxItems > 0 && len(out) > f.MaxItems {
		return nil, fmt.Sprintf(msgTooManyItems, f.MaxItems)
	}
	return out, ""
}
