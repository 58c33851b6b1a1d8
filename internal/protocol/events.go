package protocol

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/seamusw/cubesolver/pkg/types"
)

// RotationEvent represents a single face rotation reported by the cube.
type RotationEvent struct {
	FaceCode          byte       // Raw face+direction code (0x00-0x0B)
	CenterOrientation byte       // Center piece orientation
	Clockwise         bool       // Direction of rotation
	Face              types.Face // Face in standard notation
}

// BatteryEvent represents a battery level notification.
type BatteryEvent struct {
	Level int // 0-100 percentage
}

// CubeTypeEvent represents a cube type notification.
type CubeTypeEvent struct {
	TypeCode byte
	TypeName string
}

// OrientationEvent represents a cube orientation notification.
type OrientationEvent struct {
	X float64
	Y float64
	Z float64
	W float64

	// Derived discrete orientation
	UpFace    types.Face // Face pointing up
	FrontFace types.Face // Face toward the solver
}

// faceByColorIndex maps the wire color index to the face showing that
// color in standard orientation: White up, Green front.
var faceByColorIndex = [6]types.Face{
	types.FaceB, // 0: blue
	types.FaceF, // 1: green
	types.FaceU, // 2: white
	types.FaceD, // 3: yellow
	types.FaceR, // 4: red
	types.FaceL, // 5: orange
}

// DecodeRotation decodes a rotation payload into rotation events.
// Rotation payloads contain pairs of bytes: [face_dir] [center_orientation].
func DecodeRotation(payload []byte) ([]RotationEvent, error) {
	if len(payload)%2 != 0 {
		return nil, fmt.Errorf("protocol: rotation payload must have even length, got %d", len(payload))
	}

	var events []RotationEvent
	for i := 0; i < len(payload); i += 2 {
		faceCode := payload[i]

		// Even codes turn clockwise, odd counter-clockwise; the color
		// index is the code halved.
		colorIdx := faceCode / 2
		if int(colorIdx) >= len(faceByColorIndex) {
			return nil, fmt.Errorf("protocol: unknown color index %d from face code 0x%02X", colorIdx, faceCode)
		}

		events = append(events, RotationEvent{
			FaceCode:          faceCode,
			CenterOrientation: payload[i+1],
			Clockwise:         faceCode%2 == 0,
			Face:              faceByColorIndex[colorIdx],
		})
	}

	return events, nil
}

// DecodeBattery decodes a battery payload.
func DecodeBattery(payload []byte) (*BatteryEvent, error) {
	if len(payload) < 1 {
		return nil, fmt.Errorf("protocol: battery payload too short")
	}
	return &BatteryEvent{
		Level: int(payload[0]),
	}, nil
}

// DecodeCubeType decodes a cube type payload.
func DecodeCubeType(payload []byte) (*CubeTypeEvent, error) {
	if len(payload) < 1 {
		return nil, fmt.Errorf("protocol: cube type payload too short")
	}

	typeName := "standard"
	if payload[0] == 0x01 {
		typeName = "edge"
	}

	return &CubeTypeEvent{
		TypeCode: payload[0],
		TypeName: typeName,
	}, nil
}

// DecodeOrientation decodes an orientation payload.
// Format: ASCII quaternion "x#y#z#w"; the last part may carry trailing
// non-numeric bytes that are stripped before parsing.
func DecodeOrientation(payload []byte) (*OrientationEvent, error) {
	parts := strings.Split(string(payload), "#")
	if len(parts) != 4 {
		return nil, fmt.Errorf("protocol: orientation payload must have 4 parts, got %d", len(parts))
	}

	x, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return nil, fmt.Errorf("protocol: invalid x value: %w", err)
	}
	y, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return nil, fmt.Errorf("protocol: invalid y value: %w", err)
	}
	z, err := strconv.ParseFloat(parts[2], 64)
	if err != nil {
		return nil, fmt.Errorf("protocol: invalid z value: %w", err)
	}
	w, err := strconv.ParseFloat(extractNumeric(parts[3]), 64)
	if err != nil {
		return nil, fmt.Errorf("protocol: invalid w value: %w", err)
	}

	event := &OrientationEvent{X: x, Y: y, Z: z, W: w}
	event.UpFace, event.FrontFace = quaternionToFaces(x, y, z, w)
	return event, nil
}

// extractNumeric extracts the leading numeric portion (including an
// optional minus sign) from a string.
func extractNumeric(s string) string {
	var result strings.Builder
	for i, r := range s {
		if r == '-' && i == 0 {
			result.WriteRune(r)
		} else if r >= '0' && r <= '9' {
			result.WriteRune(r)
		} else if r == '.' {
			result.WriteRune(r)
		} else {
			break
		}
	}
	return result.String()
}

// quaternionToFaces converts a quaternion to discrete face
// orientations: which face points up and which faces the solver.
func quaternionToFaces(x, y, z, w float64) (upFace, frontFace types.Face) {
	// The cube sends raw integer components, so normalize first.
	mag := math.Sqrt(x*x + y*y + z*z + w*w)
	if mag > 0 {
		x /= mag
		y /= mag
		z /= mag
		w /= mag
	}

	// Rotate the up vector (0, 1, 0) by the quaternion
	upX := 2 * (x*y - w*z)
	upY := 1 - 2*(x*x+z*z)
	upZ := 2 * (y*z + w*x)

	// Rotate the front vector (0, 0, 1) by the quaternion
	frontX := 2 * (x*z + w*y)
	frontY := 2 * (y*z - w*x)
	frontZ := 1 - 2*(x*x+y*y)

	return vectorToFace(upX, upY, upZ), vectorToFace(frontX, frontY, frontZ)
}

// vectorToFace determines which cube face a vector points to.
func vectorToFace(x, y, z float64) types.Face {
	absX := math.Abs(x)
	absY := math.Abs(y)
	absZ := math.Abs(z)

	if absY >= absX && absY >= absZ {
		if y > 0 {
			return types.FaceU
		}
		return types.FaceD
	}
	if absZ >= absX && absZ >= absY {
		if z > 0 {
			return types.FaceF
		}
		return types.FaceB
	}
	if x > 0 {
		return types.FaceR
	}
	return types.FaceL
}
