package compiler

import (
	"fmt"
	"strings"

	"github.com/taigrr/opensaft/pkg/program"
)

// Disassemble renders p as one instruction per line, each opcode name
// followed by the constants it consumes. It never fails on a
// structurally valid Program; a Program whose constant pool runs out
// mid-instruction reports a BadConstants error instead of panicking.
func Disassemble(p program.Program) (string, error) {
	var b strings.Builder
	reader := constantReader{constants: p.Constants}

	writeF32 := func(label string) error {
		v, err := reader.readF32()
		if err != nil {
			return err
		}
		fmt.Fprintf(&b, " %s=%g", label, v)
		return nil
	}
	writeVec2 := func(label string) error {
		v, err := reader.readVec2()
		if err != nil {
			return err
		}
		fmt.Fprintf(&b, " %s=(%g, %g)", label, v.X, v.Y)
		return nil
	}
	writeVec3 := func(label string) error {
		v, err := reader.readVec3()
		if err != nil {
			return err
		}
		fmt.Fprintf(&b, " %s=(%g, %g, %g)", label, v.X, v.Y, v.Z)
		return nil
	}
	writeVec4 := func(label string) error {
		v, err := reader.readVec4()
		if err != nil {
			return err
		}
		fmt.Fprintf(&b, " %s=(%g, %g, %g, %g)", label, v.X, v.Y, v.Z, v.W)
		return nil
	}

	for i, op := range p.Opcodes {
		fmt.Fprintf(&b, "%4d  %s", i, op)

		var err error
		switch op {
		case program.OpPlane:
			err = writeVec4("plane")
		case program.OpSphere:
			if err = writeVec3("center"); err == nil {
				err = writeF32("radius")
			}
		case program.OpCapsule:
			if err = writeVec3("p0"); err == nil {
				if err = writeVec3("p1"); err == nil {
					err = writeF32("radius")
				}
			}
		case program.OpRoundedCylinder:
			if err = writeF32("cylinder_radius"); err == nil {
				if err = writeF32("half_height"); err == nil {
					err = writeF32("rounding_radius")
				}
			}
		case program.OpTaperedCapsule:
			if err = writeVec3("p0"); err == nil {
				if err = writeF32("r0"); err == nil {
					if err = writeVec3("p1"); err == nil {
						err = writeF32("r1")
					}
				}
			}
		case program.OpCone:
			if err = writeF32("radius"); err == nil {
				err = writeF32("height")
			}
		case program.OpRoundedBox:
			if err = writeVec3("half_size"); err == nil {
				err = writeF32("radius")
			}
		case program.OpTorus:
			if err = writeF32("big_r"); err == nil {
				err = writeF32("small_r")
			}
		case program.OpTorusSector:
			if err = writeF32("big_r"); err == nil {
				if err = writeF32("small_r"); err == nil {
					err = writeVec2("sin_cos_half_angle")
				}
			}
		case program.OpBiconvexLens:
			if err = writeF32("lower_sagitta"); err == nil {
				if err = writeF32("upper_sagitta"); err == nil {
					err = writeF32("chord")
				}
			}
		case program.OpMaterial:
			err = writeVec3("rgb")
		case program.OpUnionSmooth, program.OpSubtractSmooth, program.OpIntersectSmooth:
			err = writeF32("size")
		case program.OpPushTranslation:
			err = writeVec3("translation")
		case program.OpPushRotation:
			err = writeVec4("rotation")
		case program.OpPopScale:
			err = writeF32("scale")
		case program.OpPushScale:
			err = writeF32("inv_scale")
		}
		if err != nil {
			return "", err
		}
		b.WriteByte('\n')
	}

	if !reader.atEnd() {
		return "", errBadProgram("unused constants")
	}
	return b.String(), nil
}
