package endian

import (
	"encoding/binary"
	"testing"

	"github.com/arloliu/gca/format"
	"github.com/stretchr/testify/require"
)

func TestGetLittleEndianEngine(t *testing.T) {
	engine := GetLittleEndianEngine()
	require.Equal(t, binary.LittleEndian, engine)

	buf := engine.AppendUint16(nil, 0x0102)
	require.Equal(t, []byte{0x02, 0x01}, buf)
	require.Equal(t, uint16(0x0102), engine.Uint16(buf))
}

func TestGetBigEndianEngine(t *testing.T) {
	engine := GetBigEndianEngine()
	require.Equal(t, binary.BigEndian, engine)

	buf := engine.AppendUint16(nil, 0x0102)
	require.Equal(t, []byte{0x01, 0x02}, buf)
	require.Equal(t, uint16(0x0102), engine.Uint16(buf))
}

func TestFor(t *testing.T) {
	require.Equal(t, GetLittleEndianEngine(), For(format.LittleEndian))
	require.Equal(t, GetBigEndianEngine(), For(format.BigEndian))
	require.Equal(t, GetLittleEndianEngine(), For(format.ByteOrder(7)))
}

func TestEngines_RoundTrip(t *testing.T) {
	for _, order := range []format.ByteOrder{format.LittleEndian, format.BigEndian} {
		t.Run(order.String(), func(t *testing.T) {
			engine := For(order)

			buf := engine.AppendUint32(nil, 0x01020304)
			buf = engine.AppendUint64(buf, 0x0102030405060708)

			require.Len(t, buf, 12)
			require.Equal(t, uint32(0x01020304), engine.Uint32(buf[:4]))
			require.Equal(t, uint64(0x0102030405060708), engine.Uint64(buf[4:]))
		})
	}
}
