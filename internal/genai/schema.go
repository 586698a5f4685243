package genai

// SchemaType enumerates the structured-output field types the provider
// accepts.
type SchemaType string

// Schema field types.
const (
	TypeObject  SchemaType = "OBJECT"
	TypeArray   SchemaType = "ARRAY"
	TypeString  SchemaType = "STRING"
	TypeInteger SchemaType = "INTEGER"
	TypeNumber  SchemaType = "NUMBER"
	TypeBoolean SchemaType = "BOOLEAN"
)

// Schema declares the shape a structured response must satisfy. It
// serializes directly into the provider's responseSchema field.
type Schema struct {
	Type        SchemaType         `json:"type"`
	Description string             `json:"description,omitempty"`
	Properties  map[string]*Schema `json:"properties,omitempty"`
	Items       *Schema            `json:"items,omitempty"`
	Enum        []string           `json:"enum,omitempty"`
}

// Object declares an object schema with the given properties.
func Object(props map[string]*Schema) *Schema {
	return &Schema{Type: TypeObject, Properties: props}
}

// Array declares an array schema with the given item shape.
func Array(items *Schema) *Schema {
	return &Schema{Type: TypeArray, Items: items}
}

// String declares a string field.
func String() *Schema { return &Schema{Type: TypeString} }

// StringDesc declares a string field with a description hint.
func StringDesc(desc string) *Schema {
	return &Schema{Type: TypeString, Description: desc}
}

// Integer declares an integer field.
func Integer() *Schema { return &Schema{Type: TypeInteger} }

// Boolean declares a boolean field.
func Boolean() *Schema { return &Schema{Type: TypeBoolean} }

// StringEnum declares a string field restricted to the given values.
func StringEnum(values ...string) *Schema {
	return &Schema{Type: TypeString, Enum: values}
}
