// Package render produces the HTML fragments shown in place of OpenVeo
// videos, which are never downloaded.
package render

import (
	"bytes"
	"fmt"
	"html/template"
)

var fileReferenceTemplate = template.Must(template.New("file_reference").Parse(
	`<a href="{{.URL}}">{{.FileName}}</a>`,
))

// FileReference is a link to a video page.
type FileReference struct {
	URL      string
	FileName string
}

// Render returns the link-only fragment of the reference. Both fields are
// escaped.
func (r FileReference) Render() (template.HTML, error) {
	var buf bytes.Buffer
	if err := fileReferenceTemplate.Execute(&buf, r); err != nil {
		return "", fmt.Errorf("render file reference: %w", err)
	}
	return template.HTML(buf.String()), nil
}
