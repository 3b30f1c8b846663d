package export

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/Mr-Dark-debug/agenda/internal/agenda"
)

// WriteJSON writes the plan as indented JSON.
func WriteJSON(w io.Writer, plan agenda.Plan) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(plan); err != nil {
		return fmt.Errorf("encoding plan: %w", err)
	}
	return nil
}
