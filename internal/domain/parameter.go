package domain

// ParamType is the declared type of a query parameter row.
// It is shown in the table only and never changes how the row is encoded.
type ParamType string

const (
	ParamString  ParamType = "string"
	ParamArray   ParamType = "array"
	ParamNumber  ParamType = "number"
	ParamBoolean ParamType = "boolean"
)

// ParamTypes lists the type options in display order.
var ParamTypes = []ParamType{ParamString, ParamArray, ParamNumber, ParamBoolean}

// ParamTypeNames returns ParamTypes as plain strings for select widgets.
func ParamTypeNames() []string {
	names := make([]string, len(ParamTypes))
	for i, t := range ParamTypes {
		names[i] = string(t)
	}
	return names
}

// ParseParamType maps s onto a known ParamType, falling back to ParamString.
func ParseParamType(s string) ParamType {
	switch ParamType(s) {
	case ParamString, ParamArray, ParamNumber, ParamBoolean:
		return ParamType(s)
	default:
		return ParamString
	}
}

// Parameter is one row of the query parameter table.
type Parameter struct {
	Name        string    `json:"name"`
	Value       string    `json:"value"`
	Type        ParamType `json:"type"`
	Required    bool      `json:"required"`
	Description string    `json:"description"`
}

// NewParameter returns a row with the given name and value and default
// cosmetic fields.
func NewParameter(name, value string) Parameter {
	return Parameter{
		Name:  name,
		Value: value,
		Type:  ParamString,
	}
}
