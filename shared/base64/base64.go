// Package base64 works with data-URI encoded files, the wire format the
// floor-plan map is uploaded and persisted in.
package base64

import (
	enc "encoding/base64"
	"errors"
	"strings"
)

const payloadMarker = ";base64,"

var ErrNotDataURI = errors.New("not a base64 data URI")

// GetContentType extracts the MIME type from a data URI, or "" when the
// string is not one.
func GetContentType(file string) string {
	start := len("data:")
	end := strings.Index(file, payloadMarker)

	if end == -1 || end < start {
		return ""
	}

	return file[start:end]
}

// DecodePayload returns the decoded bytes of a data URI payload.
func DecodePayload(file string) ([]byte, error) {
	idx := strings.Index(file, payloadMarker)
	if idx == -1 || !strings.HasPrefix(file, "data:") {
		return nil, ErrNotDataURI
	}

	raw, err := enc.StdEncoding.DecodeString(file[idx+len(payloadMarker):])
	if err != nil {
		return nil, errors.Join(ErrNotDataURI, err)
	}

	return raw, nil
}
