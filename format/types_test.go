package format

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCompressionType_String(t *testing.T) {
	require.Equal(t, "None", CompressionNone.String())
	require.Equal(t, "Zstd", CompressionZstd.String())
	require.Equal(t, "S2", CompressionS2.String())
	require.Equal(t, "LZ4", CompressionLZ4.String())
	require.Equal(t, "Unknown", CompressionType(0x7F).String())
}

func TestCompressionType_IsValid(t *testing.T) {
	require.True(t, CompressionNone.IsValid())
	require.True(t, CompressionLZ4.IsValid())
	require.False(t, CompressionType(0).IsValid())
	require.False(t, CompressionType(0x5).IsValid())
}

func TestRoutineKind_String(t *testing.T) {
	require.Equal(t, "Encode", RoutineEncode.String())
	require.Equal(t, "Decode", RoutineDecode.String())
	require.Equal(t, "Unknown", RoutineKind(0).String())
}
