package manifest

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/starford/listposts/internal/models"
)

// Marshal renders m as a JSON array with one post object per line.
func Marshal(m Manifest) []byte {
	var buf bytes.Buffer
	buf.WriteString("[\n")
	for i := range m {
		appendPost(&buf, &m[i])
		if i < len(m)-1 {
			buf.WriteByte(',')
		}
		buf.WriteByte('\n')
	}
	buf.WriteString("]\n")
	return buf.Bytes()
}

// Encode writes the rendered manifest to w in a single write.
func Encode(w io.Writer, m Manifest) error {
	_, err := w.Write(Marshal(m))
	return err
}

// appendPost writes {"path": ..., "<key>": "<value>", ...} keeping header
// order.
func appendPost(buf *bytes.Buffer, p *models.Post) {
	buf.WriteString(`{"path": `)
	appendString(buf, p.Path)
	for _, f := range p.Fields {
		buf.WriteString(", ")
		appendString(buf, f.Key)
		buf.WriteString(": ")
		appendString(buf, f.Value)
	}
	buf.WriteByte('}')
}

func appendString(buf *bytes.Buffer, s string) {
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(s) // strings always encode
	buf.Truncate(buf.Len() - 1)
}
