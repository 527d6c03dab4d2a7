package validators

// Values are the normalized parameters of a request that passed its schema.
// Only fields declared by the schema are present.
type Values map[string]any

// Has reports whether name was supplied.
func (v Values) Has(name string) bool {
	_, ok := v[name]
	return ok
}

func (v Values) String(name string) (string, bool) {
	s, ok := v[name].(string)
	return s, ok
}

func (v Values) Int(name string) (int64, bool) {
	n, ok := v[name].(int64)
	return n, ok
}

func (v Values) Float(name string) (float64, bool) {
	n, ok := v[name].(float64)
	return n, ok
}

func (v Values) Bool(name string) (bool, bool) {
	b, ok := v[name].(bool)
	return b, ok
}

func (v Values) Strings(name string) ([]string, bool) {
	s, ok := v[name].([]string)
	return s, ok
}

// StringPtr returns a pointer to the string value, or nil when absent.
func (v Values) StringPtr(name string) *string {
	if s, ok := v.String(name); ok {
		return &s
	}
	return nil
}

// FloatPtr returns a pointer to the number value, or nil when absent.
func (v Values) FloatPtr(name string) *float64 {
	if n, ok := v.Float(name); ok {
		return &n
	}
	return nil
}

// BoolPtr returns a pointer to the boolean value, or nil when absent.
func (v Values) BoolPtr(name string) *bool {
	if b, ok := v.Bool(name); ok {
		return &b
	}
	return nil
}
