package openapi

// Info is the OpenAPI info object.
type Info struct {
	Title       string `json:"title"`
	Version     string `json:"version"`
	Description string `json:"description,omitempty"`
}

// Server is an OpenAPI server object.
type Server struct {
	URL string `json:"url"`
}

// PathItem holds the operations on one path.
type PathItem struct {
	Get  *Operation `json:"get,omitempty"`
	Post *Operation `json:"post,omitempty"`
}

// Operation describes one method on one path.
type Operation struct {
	Summary     string            `json:"summary,omitempty"`
	Description string            `json:"description,omitempty"`
	Tags        []string          `json:"tags,omitempty"`
	Parameters  []*Parameter      `json:"parameters,omitempty"`
	RequestBody *RequestBody      `json:"requestBody,omitempty"`
	Responses   map[int]*Response `json:"responses"`
}

// Parameter describes one path or query parameter.
type Parameter struct {
	Name        string  `json:"name"`
	In          string  `json:"in"`
	Required    bool    `json:"required,omitempty"`
	Description string  `json:"description,omitempty"`
	Schema      *Schema `json:"schema"`
}

// RequestBody describes a request body.
type RequestBody struct {
	Required bool                  `json:"required,omitempty"`
	Content  map[string]*MediaType `json:"content"`
}

// Response describes one response, inline or by reference.
type Response struct {
	Description string                `json:"description,omitempty"`
	Content     map[string]*MediaType `json:"content,omitempty"`
	Ref         string                `json:"$ref,omitempty"`
}

// MediaType pairs a media type with its schema.
type MediaType struct {
	Schema *Schema `json:"schema,omitempty"`
}

// Schema is the subset of JSON Schema the API documents use.
type Schema struct {
	Type                 string             `json:"type,omitempty"`
	Format               string             `json:"format,omitempty"`
	Description          string             `json:"description,omitempty"`
	Properties           map[string]*Schema `json:"properties,omitempty"`
	AdditionalProperties *Schema            `json:"additionalProperties,omitempty"`
	Required             []string           `json:"required,omitempty"`
	Items                *Schema            `json:"items,omitempty"`
	Ref                  string             `json:"$ref,omitempty"`
	Enum                 []any              `json:"enum,omitempty"`
	Example              any                `json:"example,omitempty"`
}

// Components holds reusable schemas and responses.
type Components struct {
	Schemas   map[string]*Schema   `json:"schemas,omitempty"`
	Responses map[string]*Response `json:"responses,omitempty"`
}

// SchemaRef references the named component schema.
func SchemaRef(name string) *Schema {
	return &Schema{Ref: "#/components/schemas/" + name}
}

// ResponseRef references the named component response.
func ResponseRef(name string) *Response {
	return &Response{Ref: "#/components/responses/" + name}
}

// ArrayOf is an array schema of item.
func ArrayOf(item *Schema) *Schema {
	return &Schema{Type: "array", Items: item}
}

// Strings is an array-of-strings schema.
func Strings() *Schema {
	return ArrayOf(&Schema{Type: "string"})
}

// RequestBodyJSON is a required JSON body of the named schema.
func RequestBodyJSON(schemaName string) *RequestBody {
	return &RequestBody{
		Required: true,
		Content: map[string]*MediaType{
			"application/json": {Schema: SchemaRef(schemaName)},
		},
	}
}

// ResponseJSON is a JSON response of schema.
func ResponseJSON(description string, schema *Schema) *Response {
	return &Response{
		Description: description,
		Content: map[string]*MediaType{
			"application/json": {Schema: schema},
		},
	}
}

// PathParam is a required string path parameter. format may be empty.
func PathParam(name, format, description string) *Parameter {
	return &Parameter{
		Name:        name,
		In:          "path",
		Required:    true,
		Description: description,
		Schema:      &Schema{Type: "string", Format: format},
	}
}

// QueryParam is an optional query parameter of typ.
func QueryParam(name, typ, description string) *Parameter {
	return &Parameter{
		Name:        name,
		In:          "query",
		Description: description,
		Schema:      &Schema{Type: typ},
	}
}

// PageParams are the query parameters every paged listing accepts.
func PageParams() []*Parameter {
	return []*Parameter{
		QueryParam("page", "integer", "Page number, starting at 1"),
		QueryParam("page_size", "integer", "Results per page"),
		QueryParam("search", "string", "Case-insensitive search term"),
		QueryParam("sort", "string", "Comma-separated fields; prefix with - for descending"),
	}
}
