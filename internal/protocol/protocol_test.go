package protocol

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seamusw/cubesolver/pkg/types"
)

// buildFrame assembles a valid wire frame around a payload.
func buildFrame(msgType byte, payload []byte) []byte {
	length := byte(len(payload) + 4) // type + payload + checksum + CRLF
	frame := []byte{FramePrefix, length, msgType}
	frame = append(frame, payload...)

	var checksum byte
	for _, b := range frame {
		checksum += b
	}
	return append(frame, checksum, FrameSuffix1, FrameSuffix2)
}

func TestParseMessageRoundTrip(t *testing.T) {
	frame := buildFrame(MsgTypeRotation, []byte{0x08, 0x00})

	msg, err := ParseMessage(frame)
	require.NoError(t, err)
	assert.Equal(t, MsgTypeRotation, msg.Type)
	assert.Equal(t, []byte{0x08, 0x00}, msg.Payload)
}

func TestBuildCommandParses(t *testing.T) {
	msg, err := ParseMessage(BuildCommand(CmdResetSolved))
	require.NoError(t, err)
	assert.Equal(t, CmdResetSolved, msg.Type)
	assert.Empty(t, msg.Payload)
}

func TestParseMessageErrors(t *testing.T) {
	valid := buildFrame(MsgTypeBattery, []byte{0x55})

	_, err := ParseMessage(valid[:4])
	assert.ErrorIs(t, err, ErrMessageTooShort)

	badPrefix := append([]byte{}, valid...)
	badPrefix[0] = 0x2B
	_, err = ParseMessage(badPrefix)
	assert.ErrorIs(t, err, ErrInvalidPrefix)

	badSuffix := append([]byte{}, valid...)
	badSuffix[len(badSuffix)-1] = 0x00
	_, err = ParseMessage(badSuffix)
	assert.ErrorIs(t, err, ErrInvalidSuffix)

	badChecksum := append([]byte{}, valid...)
	badChecksum[3] = 0x56
	_, err = ParseMessage(badChecksum)
	assert.ErrorIs(t, err, ErrInvalidChecksum)

	truncated := append([]byte{}, valid...)
	truncated[1] = byte(len(valid)) // length claims more than present
	_, err = ParseMessage(truncated)
	assert.ErrorIs(t, err, ErrInvalidLength)
}

func TestDecodeRotation(t *testing.T) {
	events, err := DecodeRotation([]byte{0x08, 0x00, 0x07, 0x01})
	require.NoError(t, err)
	require.Len(t, events, 2)

	// 0x08: color index 4 (red), even = clockwise.
	assert.Equal(t, types.FaceR, events[0].Face)
	assert.True(t, events[0].Clockwise)

	// 0x07: color index 3 (yellow), odd = counter-clockwise.
	assert.Equal(t, types.FaceD, events[1].Face)
	assert.False(t, events[1].Clockwise)
}

func TestDecodeRotationErrors(t *testing.T) {
	_, err := DecodeRotation([]byte{0x08})
	assert.Error(t, err, "odd payload length")

	_, err = DecodeRotation([]byte{0x0C, 0x00})
	assert.Error(t, err, "color index out of range")
}

func TestRotationToMove(t *testing.T) {
	events, err := DecodeRotation([]byte{0x04, 0x00})
	require.NoError(t, err)

	m := RotationToMove(events[0], 1234)
	assert.Equal(t, types.FaceU, m.Face)
	assert.Equal(t, types.TurnCW, m.Turn)
	assert.Equal(t, int64(1234), m.Timestamp)
	assert.Equal(t, "U", m.Notation())
}

func TestRotationsToMovesMerges(t *testing.T) {
	// Two R clockwise in one notification merge to R2.
	events, err := DecodeRotation([]byte{0x08, 0x00, 0x08, 0x00})
	require.NoError(t, err)

	moves := RotationsToMoves(events, 0)
	require.Len(t, moves, 1)
	assert.Equal(t, "R2", moves[0].Notation())

	// R then R' cancels out.
	events, err = DecodeRotation([]byte{0x08, 0x00, 0x09, 0x00})
	require.NoError(t, err)
	assert.Empty(t, RotationsToMoves(events, 0))
}

func TestDecodeBattery(t *testing.T) {
	ev, err := DecodeBattery([]byte{0x55})
	require.NoError(t, err)
	assert.Equal(t, 85, ev.Level)

	_, err = DecodeBattery(nil)
	assert.Error(t, err)
}

func TestDecodeCubeType(t *testing.T) {
	ev, err := DecodeCubeType([]byte{0x00})
	require.NoError(t, err)
	assert.Equal(t, "standard", ev.TypeName)

	ev, err = DecodeCubeType([]byte{0x01})
	require.NoError(t, err)
	assert.Equal(t, "edge", ev.TypeName)
}

func TestDecodeOrientation(t *testing.T) {
	ev, err := DecodeOrientation([]byte("0#0#0#1"))
	require.NoError(t, err)
	assert.Equal(t, types.FaceU, ev.UpFace)
	assert.Equal(t, types.FaceF, ev.FrontFace)

	// Half turn around the z axis points the up face down.
	ev, err = DecodeOrientation([]byte("0#0#1#0"))
	require.NoError(t, err)
	assert.Equal(t, types.FaceD, ev.UpFace)
	assert.Equal(t, types.FaceF, ev.FrontFace)

	// Trailing non-numeric bytes on the last component are stripped.
	ev, err = DecodeOrientation([]byte("0#0#0#1\x03\r"))
	require.NoError(t, err)
	assert.Equal(t, 1.0, ev.W)

	_, err = DecodeOrientation([]byte("1#2#3"))
	assert.Error(t, err)
}

func TestMessageTypeName(t *testing.T) {
	assert.Equal(t, "battery", MessageTypeName(MsgTypeBattery))
	assert.Equal(t, "rotation", MessageTypeName(MsgTypeRotation))
	assert.Equal(t, "unknown_0xEE", MessageTypeName(0xEE))
}
