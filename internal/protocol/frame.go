// Package protocol implements the GoCube BLE wire protocol: message
// framing, command construction, and payload decoding into canonical
// moves.
package protocol

import (
	"errors"
	"fmt"
)

// GoCube BLE service and characteristic UUIDs.
const (
	ServiceUUID = "6e400001-b5a3-f393-e0a9-e50e24dcca9e"
	TxCharUUID  = "6e400003-b5a3-f393-e0a9-e50e24dcca9e" // Notify
	RxCharUUID  = "6e400002-b5a3-f393-e0a9-e50e24dcca9e" // Write
)

// Message type identifiers.
const (
	MsgTypeRotation     byte = 0x01
	MsgTypeState        byte = 0x02
	MsgTypeOrientation  byte = 0x03
	MsgTypeBattery      byte = 0x05
	MsgTypeOfflineStats byte = 0x07
	MsgTypeCubeType     byte = 0x08
)

// Command codes for writing to the RX characteristic.
const (
	CmdRequestBattery       byte = 0x32
	CmdRequestState         byte = 0x33
	CmdReboot               byte = 0x34
	CmdResetSolved          byte = 0x35
	CmdDisableOrientation   byte = 0x37
	CmdEnableOrientation    byte = 0x38
	CmdRequestOfflineStats  byte = 0x39
	CmdFlashBacklight       byte = 0x41
	CmdToggleAnimatedBL     byte = 0x42
	CmdSlowFlashBacklight   byte = 0x43
	CmdToggleBacklight      byte = 0x44
	CmdRequestCubeType      byte = 0x56
	CmdCalibrateOrientation byte = 0x57
)

// Message frame constants.
const (
	FramePrefix  byte = 0x2A // '*'
	FrameSuffix1 byte = 0x0D // CR
	FrameSuffix2 byte = 0x0A // LF
)

var (
	ErrInvalidPrefix   = errors.New("protocol: invalid message prefix")
	ErrInvalidSuffix   = errors.New("protocol: invalid message suffix")
	ErrInvalidChecksum = errors.New("protocol: invalid checksum")
	ErrMessageTooShort = errors.New("protocol: message too short")
	ErrInvalidLength   = errors.New("protocol: invalid message length")
)

// Message is a parsed GoCube BLE notification.
type Message struct {
	Type    byte   // Message type identifier
	Payload []byte // Payload without frame overhead
}

// ParseMessage parses a raw BLE notification into a Message.
// Frame format: [0x2A] [length] [type] [payload...] [checksum] [0x0D 0x0A]
// The length byte counts everything after the length byte itself
// (type + payload + checksum + suffix), so the checksum sits at index
// length-1 and the whole frame spans length+2 bytes.
func ParseMessage(data []byte) (*Message, error) {
	if len(data) < 6 {
		return nil, ErrMessageTooShort
	}

	if data[0] != FramePrefix {
		return nil, ErrInvalidPrefix
	}

	length := int(data[1])
	expectedLen := 2 + length
	if len(data) < expectedLen {
		return nil, fmt.Errorf("%w: expected %d, got %d", ErrInvalidLength, expectedLen, len(data))
	}

	checksumIdx := length - 1
	if checksumIdx < 3 {
		return nil, ErrMessageTooShort
	}

	if data[checksumIdx+1] != FrameSuffix1 || data[checksumIdx+2] != FrameSuffix2 {
		return nil, ErrInvalidSuffix
	}

	// Checksum is the byte sum of everything before it.
	var checksum byte
	for i := 0; i < checksumIdx; i++ {
		checksum += data[i]
	}
	if checksum != data[checksumIdx] {
		return nil, fmt.Errorf("%w: expected 0x%02X, got 0x%02X", ErrInvalidChecksum, data[checksumIdx], checksum)
	}

	return &Message{
		Type:    data[2],
		Payload: data[3:checksumIdx],
	}, nil
}

// BuildCommand creates a no-payload command frame to send to the cube.
func BuildCommand(cmdCode byte) []byte {
	// [0x2A] [0x04] [cmd] [checksum] [0x0D] [0x0A]
	length := byte(0x04)
	checksum := FramePrefix + length + cmdCode

	return []byte{FramePrefix, length, cmdCode, checksum, FrameSuffix1, FrameSuffix2}
}

// MessageTypeName returns a human-readable name for the message type.
func MessageTypeName(msgType byte) string {
	switch msgType {
	case MsgTypeRotation:
		return "rotation"
	case MsgTypeState:
		return "state"
	case MsgTypeOrientation:
		return "orientation"
	case MsgTypeBattery:
		return "battery"
	case MsgTypeOfflineStats:
		return "offline_stats"
	case MsgTypeCubeType:
		return "cube_type"
	default:
		return fmt.Sprintf("unknown_0x%02X", msgType)
	}
}
