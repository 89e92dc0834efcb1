package roster

import "github.com/JaimeStill/studize/pkg/openapi"

var spec = struct {
	Info     *openapi.Operation
	Reload   *openapi.Operation
	Students *openapi.Operation
	Rows     *openapi.Operation
}{
	Info: &openapi.Operation{
		Summary: "Describe the loaded roster",
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Roster metadata", openapi.SchemaRef("RosterInfo")),
			422: openapi.ResponseRef(openapi.UnprocessableEntity),
		},
	},
	Reload: &openapi.Operation{
		Summary:     "Re-read the workbook",
		Description: "On failure the previously loaded roster stays in use.",
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Roster metadata", openapi.SchemaRef("RosterInfo")),
			422: openapi.ResponseRef(openapi.UnprocessableEntity),
		},
	},
	Students: &openapi.Operation{
		Summary: "List student names",
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Distinct names in first-appearance order", openapi.Strings()),
			422: openapi.ResponseRef(openapi.UnprocessableEntity),
		},
	},
	Rows: &openapi.Operation{
		Summary:    "Rows recorded for one student",
		Parameters: []*openapi.Parameter{openapi.PathParam("name", "", "Exact, case-sensitive student name")},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Matching rows in table order", openapi.SchemaRef("RowSet")),
			404: openapi.ResponseRef(openapi.NotFound),
			422: openapi.ResponseRef(openapi.UnprocessableEntity),
		},
	},
}

// Schemas returns the component schemas the roster endpoints reference.
func Schemas() map[string]*openapi.Schema {
	return map[string]*openapi.Schema{
		"RosterInfo": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"source":      {Type: "string", Example: "file:studize_test_student_data.xlsx"},
				"identity":    {Type: "string"},
				"loaded_at":   {Type: "string", Format: "date-time"},
				"name_column": {Type: "string", Example: "Name"},
				"columns":     openapi.Strings(),
				"rows":        {Type: "integer"},
				"students":    {Type: "integer"},
			},
		},
		"RowSet": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"columns": openapi.Strings(),
				"rows": openapi.ArrayOf(&openapi.Schema{
					Type: "object",
					Properties: map[string]*openapi.Schema{
						"position": {Type: "integer"},
						"values": {
							Type:                 "object",
							AdditionalProperties: &openapi.Schema{Type: "string"},
						},
					},
				}),
			},
		},
	}
}
