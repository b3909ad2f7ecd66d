package document

// Raw is the untyped form of a decoded YAML document. It is the only
// place where field absence (as opposed to emptiness) and runtime type
// mismatches are observable, so the validators and the import
// reconciler consume Raw rather than the typed Document.
type Raw map[string]any

// Has reports whether the field is present with a non-nil value.
// A field explicitly set to null counts as absent, matching the
// validation rules' treatment of null and undefined.
func (r Raw) Has(field string) bool {
	v, ok := r[field]
	return ok && v != nil
}

// List returns the field's value as a generic slice. The second result
// is false when the field is absent, null, or not a sequence.
func (r Raw) List(field string) ([]any, bool) {
	v, ok := r[field]
	if !ok || v == nil {
		return nil, false
	}
	list, ok := v.([]any)
	return list, ok
}

// EmptyOrAbsent reports whether the field is missing, null, or an
// empty sequence.
func (r Raw) EmptyOrAbsent(field string) bool {
	v, ok := r[field]
	if !ok || v == nil {
		return true
	}
	if list, ok := v.([]any); ok {
		return len(list) == 0
	}
	return false
}

// Section decodes one top-level field into target, typically a slice
// of the typed record for that section. Returns false when the field
// is absent or its shape does not match.
func (r Raw) Section(field string, target any) bool {
	v, ok := r[field]
	if !ok || v == nil {
		return false
	}
	return Coerce(v, target) == nil
}
