package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMediaFileListRoundTrip(t *testing.T) {
	original := MediaFileList{"/uploads/1700000000000-a.wav", "/uploads/1700000000001-b.ogg"}

	value, err := original.Value()
	require.NoError(t, err)

	var decoded MediaFileList
	require.NoError(t, decoded.Scan(value))
	assert.Equal(t, original, decoded)
}

func TestMediaFileListEmptyRoundTrip(t *testing.T) {
	value, err := MediaFileList{}.Value()
	require.NoError(t, err)
	assert.Equal(t, "[]", value)

	var decoded MediaFileList
	require.NoError(t, decoded.Scan(value))
	assert.Equal(t, MediaFileList{}, decoded)
}

func TestMediaFileListNilValueSerializesAsEmptyArray(t *testing.T) {
	var list MediaFileList
	value, err := list.Value()
	require.NoError(t, err)
	assert.Equal(t, "[]", value)
}

func TestMediaFileListScanNil(t *testing.T) {
	var decoded MediaFileList
	require.NoError(t, decoded.Scan(nil))
	assert.Equal(t, MediaFileList{}, decoded)
}

func TestMediaFileListScanBytes(t *testing.T) {
	var decoded MediaFileList
	require.NoError(t, decoded.Scan([]byte(`["/uploads/x.mp3"]`)))
	assert.Equal(t, MediaFileList{"/uploads/x.mp3"}, decoded)
}

func TestMediaFileListScanUnsupportedType(t *testing.T) {
	var decoded MediaFileList
	assert.Error(t, decoded.Scan(42))
}
