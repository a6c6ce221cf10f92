package batch

import "fmt"

// Template kinds.
const (
	TemplateLongitude = "longitude"
	TemplateTimezone  = "timezone"
)

// Template returns a small example table for one of the two input schemas.
func Template(kind string) (*Table, error) {
	switch kind {
	case TemplateLongitude:
		return NewTable(
			[]string{"direction", "degrees", "minutes", "seconds"},
			[][]string{
				{"E", "30", "15", "30.0"},
				{"W", "45", "0", "0.0"},
			},
		), nil
	case TemplateTimezone:
		return NewTable(
			[]string{"sign", "hours", "minutes", "seconds"},
			[][]string{
				{"+", "2", "30", "0.0"},
				{"-", "5", "0", "30.0"},
			},
		), nil
	}
	return nil, fmt.Errorf("batch: unknown template %q", kind)
}
