package sink

import (
	"encoding/json"
	"io"

	"github.com/boxforge/boxforge/pkg/drawing"
	"github.com/boxforge/boxforge/pkg/errors"
)

// WriteJSON writes the drawing as indented JSON, geometry and all, for
// downstream tooling that wants the raw paths instead of a vector format.
func WriteJSON(w io.Writer, d *drawing.Drawing) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(d); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "writing json")
	}
	return nil
}
