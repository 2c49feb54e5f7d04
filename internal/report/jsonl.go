package report

import (
	"encoding/json"
	"io"
)

// writeJSONL emits one JSON object per formatted row, machine-pipe
// friendly. The surrounding report is not carried.
func writeJSONL(w io.Writer, r *Report) error {
	enc := json.NewEncoder(w)
	for _, row := range r.Rows {
		if err := enc.Encode(row); err != nil {
			return err
		}
	}
	return nil
}
