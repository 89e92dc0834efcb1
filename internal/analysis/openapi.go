package analysis

import "github.com/JaimeStill/studize/pkg/openapi"

var spec = struct {
	Analyze *openapi.Operation
}{
	Analyze: &openapi.Operation{
		Summary: "Summarize one or more students",
		Description: "Send name for a single-student summary or names for a group summary. " +
			"Requested names with no rows are reported in missing; when nothing matches " +
			"the outcome is not_found and no summary is generated.",
		RequestBody: openapi.RequestBodyJSON("AnalyzeRequest"),
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Summary or not-found result", openapi.SchemaRef("AnalysisResult")),
			400: openapi.ResponseRef(openapi.BadRequest),
			422: openapi.ResponseRef(openapi.UnprocessableEntity),
			429: openapi.ResponseRef(openapi.TooManyRequests),
			502: openapi.ResponseRef(openapi.BadGateway),
		},
	},
}

// Schemas returns the component schemas the analyze endpoint references.
func Schemas() map[string]*openapi.Schema {
	return map[string]*openapi.Schema{
		"AnalyzeRequest": {
			Type:        "object",
			Description: "Exactly one of name or names.",
			Properties: map[string]*openapi.Schema{
				"name":  {Type: "string", Example: "Alice"},
				"names": openapi.Strings(),
			},
		},
		"AnalysisResult": {
			Type:     "object",
			Required: []string{"outcome", "mode", "requested", "matched", "missing", "rows"},
			Properties: map[string]*openapi.Schema{
				"outcome":     {Type: "string", Enum: []any{string(OutcomeSummary), string(OutcomeNotFound)}},
				"mode":        openapi.SchemaRef("Mode"),
				"requested":   openapi.Strings(),
				"matched":     openapi.Strings(),
				"missing":     openapi.Strings(),
				"rows":        {Type: "integer"},
				"summary":     {Type: "string"},
				"message":     {Type: "string", Example: "No data found for the given students."},
				"model":       {Type: "string"},
				"duration_ns": {Type: "integer"},
				"record_id":   {Type: "string", Format: "uuid"},
			},
		},
	}
}
