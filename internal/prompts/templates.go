// Package prompts holds the fixed summary templates and fills them with
// student context.
package prompts

import "strings"

// Placeholder marks where the formatted student rows are inserted.
const Placeholder = "{context}"

const singleTemplate = `
Here is the data for the student:

{context}

Based on this data, generate a descriptive summary of the student's strengths, opportunities, and challenges.
Also provide some specific suggestions on how the student can improve. Avoid generic statements.
`

const multiTemplate = `
Here is the data for the students:

{context}

Generate a detailed summary of the strengths, opportunities, and challenges for these students. Provide specific insights for each student, and compare their strengths and areas for improvement. Suggest ways they can learn from each other and address their challenges collaboratively where applicable.
`

var templates = map[Mode]string{
	ModeSingle: singleTemplate,
	ModeMulti:  multiTemplate,
}

// Template returns the raw template for mode, placeholder included.
func Template(mode Mode) (string, error) {
	text, ok := templates[mode]
	if !ok {
		return "", ErrInvalidMode
	}
	return text, nil
}

// Assemble substitutes context for the placeholder in mode's template.
// The context is inserted verbatim, once; placeholder-like text inside it
// is not expanded.
func Assemble(mode Mode, context string) (string, error) {
	text, err := Template(mode)
	if err != nil {
		return "", err
	}
	return strings.Replace(text, Placeholder, context, 1), nil
}
