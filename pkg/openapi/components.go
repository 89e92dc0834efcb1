package openapi

import "maps"

// Shared response names.
const (
	BadRequest          = "BadRequest"
	NotFound            = "NotFound"
	UnprocessableEntity = "UnprocessableEntity"
	TooManyRequests     = "TooManyRequests"
	BadGateway          = "BadGateway"
)

// NewComponents creates Components holding the Error schema and the
// error responses that reference it.
func NewComponents() *Components {
	errorResponse := func(description string) *Response {
		return &Response{
			Description: description,
			Content: map[string]*MediaType{
				"application/json": {Schema: SchemaRef("Error")},
			},
		}
	}

	return &Components{
		Schemas: map[string]*Schema{
			"Error": {
				Type:     "object",
				Required: []string{"error"},
				Properties: map[string]*Schema{
					"error": {Type: "string"},
				},
			},
		},
		Responses: map[string]*Response{
			BadRequest:          errorResponse("Invalid request"),
			NotFound:            errorResponse("Resource not found"),
			UnprocessableEntity: errorResponse("Student data unavailable or malformed"),
			TooManyRequests:     errorResponse("Rate limit exceeded"),
			BadGateway:          errorResponse("Text generation failed"),
		},
	}
}

// AddSchemas merges schemas into the component schemas.
func (c *Components) AddSchemas(schemas map[string]*Schema) {
	maps.Copy(c.Schemas, schemas)
}
