package base64_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"fairhall/shared/base64"
)

func TestGetContentType(t *testing.T) {
	tests := []struct {
		name string
		file string
		want string
	}{
		{
			name: "png data uri",
			file: "data:image/png;base64,iVBORw0KGgo=",
			want: "image/png",
		},
		{
			name: "jpeg data uri",
			file: "data:image/jpeg;base64,/9j/4AAQ",
			want: "image/jpeg",
		},
		{
			name: "plain string",
			file: "not a data uri",
			want: "",
		},
		{
			name: "empty string",
			file: "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, base64.GetContentType(tt.file))
		})
	}
}

func TestDecodePayload(t *testing.T) {
	raw, err := base64.DecodePayload("data:image/png;base64,aGVsbG8=")
	assert.NoError(t, err)
	assert.Equal(t, []byte("hello"), raw)

	_, err = base64.DecodePayload("image/png;aGVsbG8=")
	assert.ErrorIs(t, err, base64.ErrNotDataURI)

	_, err = base64.DecodePayload("data:image/png;base64,!!!")
	assert.ErrorIs(t, err, base64.ErrNotDataURI)
}
