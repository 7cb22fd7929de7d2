package models

import "go.mongodb.org/mongo-driver/bson"

// Document is a loosely typed stored entity. Clients define the listing,
// booking and profile fields; the server only relies on the few named in
// this package.
type Document = bson.M

// FieldID is the storage-assigned primary key of every document.
const FieldID = "_id"

// StringAt walks a dotted path ("host.email") through nested documents and
// returns the string stored there. Missing or non-string values yield "".
func StringAt(doc Document, path ...string) string {
	var cur any = doc
	for _, key := range path {
		m, ok := asMap(cur)
		if !ok {
			return ""
		}
		cur = m[key]
	}
	s, _ := cur.(string)
	return s
}

func asMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case bson.M:
		return m, true
	case map[string]any:
		return m, true
	default:
		return nil, false
	}
}
