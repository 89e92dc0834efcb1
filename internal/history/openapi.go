package history

import "github.com/JaimeStill/studize/pkg/openapi"

var spec = struct {
	List *openapi.Operation
	Find *openapi.Operation
}{
	List: &openapi.Operation{
		Summary:     "List recorded analyses",
		Description: "Newest first by default. Empty when no database is configured.",
		Parameters: append(openapi.PageParams(),
			openapi.QueryParam("mode", "string", "Exact mode: single or multi"),
			openapi.QueryParam("student", "string", "Requested name contains this value"),
		),
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("One page of records", openapi.SchemaRef("RecordPage")),
		},
	},
	Find: &openapi.Operation{
		Summary:    "Get one recorded analysis",
		Parameters: []*openapi.Parameter{openapi.PathParam("id", "uuid", "Record ID")},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("The record", openapi.SchemaRef("Record")),
			400: openapi.ResponseRef(openapi.BadRequest),
			404: openapi.ResponseRef(openapi.NotFound),
		},
	},
}

// Schemas returns the component schemas the history endpoints reference.
func Schemas() map[string]*openapi.Schema {
	return map[string]*openapi.Schema{
		"Record": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"id":          {Type: "string", Format: "uuid"},
				"mode":        openapi.SchemaRef("Mode"),
				"requested":   openapi.Strings(),
				"matched":     openapi.Strings(),
				"missing":     openapi.Strings(),
				"row_count":   {Type: "integer"},
				"model":       {Type: "string"},
				"summary":     {Type: "string"},
				"duration_ms": {Type: "integer"},
				"created_at":  {Type: "string", Format: "date-time"},
			},
		},
		"RecordPage": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"data":        openapi.ArrayOf(openapi.SchemaRef("Record")),
				"total":       {Type: "integer"},
				"page":        {Type: "integer"},
				"page_size":   {Type: "integer"},
				"total_pages": {Type: "integer"},
			},
		},
	}
}
