// internal/document/json.go
package document

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Marshal encodes the document as indented JSON, the format used for
// backups, the project's document.json and the JSON export.
func Marshal(d Document) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(d); err != nil {
		return nil, fmt.Errorf("encode document: %w", err)
	}
	return buf.Bytes(), nil
}

// Decode overlays JSON onto an existing document. Keys absent from data
// keep whatever into already holds; callers wanting defaults pass a
// Default() value. Unknown keys are ignored so older exports still load.
func Decode(data []byte, into *Document) error {
	return json.Unmarshal(data, into)
}
