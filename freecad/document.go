// Package freecad models the serialized FreeCAD document blob that the
// construction step attaches to a 3D geometry.
//
// The document content is produced and consumed outside this module; here it
// is an opaque payload carried in its transport form (gzip-compressed,
// base64-encoded) so pipeline stages can pass it around as a plain string.
// Decode recovers the exact raw bytes of the .fcstd file.
package freecad

import (
	"bytes"
	"compress/gzip"
	"encoding/base64"
	"fmt"
	"io"

	"github.com/qubit-modeling/geodata/geoerr"
)

// Document is an opaque serialized FreeCAD document.
type Document struct {
	encoded string
}

// Encode wraps raw .fcstd bytes into their transport form.
func Encode(raw []byte) *Document {
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	// Writes to a bytes.Buffer cannot fail.
	_, _ = zw.Write(raw)
	_ = zw.Close()
	return &Document{encoded: base64.StdEncoding.EncodeToString(buf.Bytes())}
}

// FromEncoded wraps an already-encoded payload, as delivered by another
// pipeline stage. The payload is not validated until Decode.
func FromEncoded(encoded string) *Document {
	return &Document{encoded: encoded}
}

// Encoded returns the transport form of the document.
func (d *Document) Encoded() string {
	return d.encoded
}

// Decode recovers the raw .fcstd bytes from the transport form.
func (d *Document) Decode() ([]byte, error) {
	const op = "Document.Decode"

	compressed, err := base64.StdEncoding.DecodeString(d.encoded)
	if err != nil {
		return nil, geoerr.NewDocument(op, fmt.Errorf("decoding payload: %w", err))
	}

	zr, err := gzip.NewReader(bytes.NewReader(compressed))
	if err != nil {
		return nil, geoerr.NewDocument(op, fmt.Errorf("decompressing payload: %w", err))
	}
	defer zr.Close()

	raw, err := io.ReadAll(zr)
	if err != nil {
		return nil, geoerr.NewDocument(op, fmt.Errorf("decompressing payload: %w", err))
	}
	return raw, nil
}
