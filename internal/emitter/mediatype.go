package emitter

import "github.com/quillgen/quill/internal/model"

// mediaTypePriority is the fixed tie-break order for content selection.
// JSON-like media types win over multipart ones regardless of how the
// source document orders its content entries.
var mediaTypePriority = []string{
	"application/json-patch+json",
	"application/json",
	"application/x-www-form-urlencoded",
	"text/json",
	"text/plain",
	"multipart/form-data",
	"multipart/mixed",
	"multipart/related",
}

// SelectContent picks exactly one schema-bearing content entry: the
// first priority media type that has a schema, then the first declared
// entry with a schema, then nil. A nil result means "no usable content
// here", not an error.
func SelectContent(contents []model.Content) *model.Content {
	for _, want := range mediaTypePriority {
		for i := range contents {
			if contents[i].MediaType == want && contents[i].Schema != nil {
				return &contents[i]
			}
		}
	}
	for i := range contents {
		if contents[i].Schema != nil {
			return &contents[i]
		}
	}
	return nil
}
