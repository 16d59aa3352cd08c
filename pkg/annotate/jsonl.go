package annotate

import (
	"encoding/json"
	"io"
)

// WriteJSONL writes one JSON record per annotation to w. Non-ASCII text is
// written as-is, not escaped.
func WriteJSONL(w io.Writer, anns []Annotation) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	for _, a := range anns {
		if err := enc.Encode(a); err != nil {
			return err
		}
	}
	return nil
}
