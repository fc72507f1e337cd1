package form

import "net/url"

// FieldTypes maps field names to their input types for Bind. Fields missing
// from the map are treated as text.
type FieldTypes map[string]InputType

// Bind feeds posted form values through the change handlers, one per known
// field (the union of initial values and ruled fields). Checkboxes need
// special handling because browsers omit unchecked boxes from the post body:
// presence of the key means checked.
func (f *Form) Bind(src url.Values, types FieldTypes) {
	for _, field := range f.Fields() {
		typ := types[field]
		if typ == InputCheckbox {
			f.HandleChange(field, boolString(src.Has(field)), InputCheckbox)
			continue
		}
		f.HandleChange(field, src.Get(field), typ)
	}
}

func boolString(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
