package endian

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUint32FromBytesLittle(t *testing.T) {
	buf := []byte{0x01, 0x02, 0x03, 0x04}
	v, err := Little.Uint32FromBytes(buf)
	require.NoError(t, err)
	require.Equal(t, uint32(0x04030201), v)
}

func TestUint32FromBytesBig(t *testing.T) {
	buf := []byte{0x01, 0x02, 0x03, 0x04}
	v, err := Big.Uint32FromBytes(buf)
	require.NoError(t, err)
	require.Equal(t, uint32(0x01020304), v)
}

func TestUint32FromBytesShort(t *testing.T) {
	_, err := Little.Uint32FromBytes([]byte{0x01, 0x02})
	require.Error(t, err)
}

func TestReadUint16(t *testing.T) {
	r := bytes.NewReader([]byte{0xEB, 0x9F})
	v, err := Little.ReadUint16(r)
	require.NoError(t, err)
	require.Equal(t, uint16(0x9FEB), v)
}

func TestReadInt32Big(t *testing.T) {
	r := bytes.NewReader([]byte{0xFF, 0xFF, 0xFF, 0xFF})
	v, err := Big.ReadInt32(r)
	require.NoError(t, err)
	require.Equal(t, int32(-1), v)
}
