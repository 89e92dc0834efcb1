package prompts

import "github.com/JaimeStill/studize/pkg/openapi"

var spec = struct {
	Modes    *openapi.Operation
	Template *openapi.Operation
}{
	Modes: &openapi.Operation{
		Summary: "List template modes",
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Template modes", openapi.ArrayOf(openapi.SchemaRef("Mode"))),
		},
	},
	Template: &openapi.Operation{
		Summary:    "Get the raw template for a mode",
		Parameters: []*openapi.Parameter{openapi.PathParam("mode", "", "single or multi")},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Template text with its placeholder", openapi.SchemaRef("ModeTemplate")),
			400: openapi.ResponseRef(openapi.BadRequest),
		},
	},
}

// Schemas returns the component schemas the prompt endpoints reference.
func Schemas() map[string]*openapi.Schema {
	enum := make([]any, 0, len(modes))
	for _, m := range modes {
		enum = append(enum, string(m))
	}

	return map[string]*openapi.Schema{
		"Mode": {Type: "string", Enum: enum},
		"ModeTemplate": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"mode":     openapi.SchemaRef("Mode"),
				"template": {Type: "string", Description: "Contains " + Placeholder + " exactly once"},
			},
		},
	}
}
