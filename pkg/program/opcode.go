// Package program defines the compiled bytecode wire format: a stable
// numeric Opcode table and a Program (opcode stream + flat constant pool)
// that pkg/interpreter evaluates and pkg/compiler produces/consumes.
package program

// Opcode is the stable numeric wire representation of a single
// instruction. The numbering is part of the external interface and must
// not change: it is what ProgramFromRaw/AsRaw round-trip.
type Opcode uint32

const (
	OpPlane  Opcode = 0 // vec4
	OpSphere Opcode = 1 // center: vec3, radius: f32
	OpCapsule Opcode = 2 // p0: vec3, p1: vec3, radius: f32
	OpTaperedCapsule Opcode = 3 // p0: vec3, r0: f32, p1: vec3, r1: f32

	OpMaterial Opcode = 4 // rgb: vec3

	OpUnion           Opcode = 5
	OpUnionSmooth     Opcode = 6
	OpSubtract        Opcode = 7
	OpSubtractSmooth  Opcode = 8
	OpIntersect       Opcode = 9
	OpIntersectSmooth Opcode = 10

	OpPushTranslation Opcode = 11
	OpPushRotation    Opcode = 12
	OpPopTransform    Opcode = 13
	OpPushScale       Opcode = 14
	OpPopScale        Opcode = 15

	OpEnd Opcode = 16

	OpRoundedBox      Opcode = 17 // half_size: vec3, radius: f32
	OpBiconvexLens    Opcode = 18 // lower_sagitta, upper_sagitta, chord
	OpRoundedCylinder Opcode = 19 // cylinder_radius, half_height, rounding_radius
	OpTorus           Opcode = 20 // big_r, small_r
	OpTorusSector     Opcode = 21 // big_r, small_r, sin_half_angle, cos_half_angle
	OpCone            Opcode = 22 // radius, height
)

// maxOpcode is the largest valid Opcode value, used to validate raw u32s.
const maxOpcode = uint32(OpCone)

// Valid reports whether op is a recognized opcode.
func (op Opcode) Valid() bool {
	return uint32(op) <= maxOpcode
}

var opcodeNames = map[Opcode]string{
	OpPlane:           "Plane",
	OpSphere:          "Sphere",
	OpCapsule:         "Capsule",
	OpTaperedCapsule:  "TaperedCapsule",
	OpMaterial:        "Material",
	OpUnion:           "Union",
	OpUnionSmooth:     "UnionSmooth",
	OpSubtract:        "Subtract",
	OpSubtractSmooth:  "SubtractSmooth",
	OpIntersect:       "Intersect",
	OpIntersectSmooth: "IntersectSmooth",
	OpPushTranslation: "PushTranslation",
	OpPushRotation:    "PushRotation",
	OpPopTransform:    "PopTransform",
	OpPushScale:       "PushScale",
	OpPopScale:        "PopScale",
	OpEnd:             "End",
	OpRoundedBox:      "RoundedBox",
	OpBiconvexLens:    "BiconvexLens",
	OpRoundedCylinder: "RoundedCylinder",
	OpTorus:           "Torus",
	OpTorusSector:     "TorusSector",
	OpCone:            "Cone",
}

// String implements fmt.Stringer for disassembly and error messages.
func (op Opcode) String() string {
	if name, ok := opcodeNames[op]; ok {
		return name
	}
	return "Unknown"
}
