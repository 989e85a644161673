// Package interpreter evaluates a compiled pkg/program.Program against
// a sample position, generic over pkg/sdf.SignedDistance so the same
// opcode dispatch serves both distance-only and color-gathering
// evaluation.
package interpreter

import (
	"github.com/taigrr/opensaft/pkg/program"
	"github.com/taigrr/opensaft/pkg/sdf"
	"github.com/taigrr/opensaft/pkg/vecf"
)

// defaultStackDepth is a capacity hint, not a hard limit: the value and
// position stacks grow past it for unusually deep graphs.
const defaultStackDepth = 64

// Context holds the mutable state of one evaluation: the value stack,
// the transform-undo position stack, and a cursor into the program's
// constant pool. Reuse a single Context across many Interpret calls via
// Reset to avoid reallocating the stacks per sample.
type Context[SD sdf.SignedDistance] struct {
	opcodes   []program.Opcode
	constants []float32

	// defaultSD supplies the material every primitive starts from
	// before an explicit Material node overrides it.
	defaultSD SD

	stack       []SD
	constantIdx int

	positionStack []vecf.Vec3
}

// NewContext returns a Context ready to evaluate p. defaultSD is
// whatever material a primitive should carry before any Material node
// overrides it; for ScalarDistance this is irrelevant (pass the zero
// value), for RGBDistance it should carry DefaultMaterial's color.
func NewContext[SD sdf.SignedDistance](p program.Program, defaultSD SD) *Context[SD] {
	return &Context[SD]{
		opcodes:       p.Opcodes,
		constants:     p.Constants,
		defaultSD:     defaultSD,
		stack:         make([]SD, 0, defaultStackDepth),
		positionStack: make([]vecf.Vec3, 0, defaultStackDepth),
	}
}

// Reset rewinds the context so it can evaluate a new position.
func (c *Context[SD]) Reset() {
	c.stack = c.stack[:0]
	c.positionStack = c.positionStack[:0]
	c.constantIdx = 0
}

func (c *Context[SD]) f32() float32 {
	v := c.constants[c.constantIdx]
	c.constantIdx++
	return v
}

func (c *Context[SD]) vec2() vecf.Vec2 { return vecf.V2(c.f32(), c.f32()) }
func (c *Context[SD]) vec3() vecf.Vec3 { return vecf.V3(c.f32(), c.f32(), c.f32()) }
func (c *Context[SD]) vec4() vecf.Vec4 { return vecf.V4(c.f32(), c.f32(), c.f32(), c.f32()) }

func (c *Context[SD]) quat() vecf.Quat {
	v := c.vec4()
	return vecf.Quat{X: v.X, Y: v.Y, Z: v.Z, W: v.W}
}

func (c *Context[SD]) material() sdf.Material { return sdf.NewMaterial(c.vec3()) }

func (c *Context[SD]) pushSD(v SD) { c.stack = append(c.stack, v) }

func (c *Context[SD]) popSD() (SD, bool) {
	if len(c.stack) == 0 {
		var zero SD
		return zero, false
	}
	return c.popSDUnchecked(), true
}

func (c *Context[SD]) popSDUnchecked() SD {
	v := c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
	return v
}

func (c *Context[SD]) pushPosition(pos vecf.Vec3) {
	c.positionStack = append(c.positionStack, pos)
}

func (c *Context[SD]) popPositionUnchecked() vecf.Vec3 {
	v := c.positionStack[len(c.positionStack)-1]
	c.positionStack = c.positionStack[:len(c.positionStack)-1]
	return v
}

func (c *Context[SD]) withDistance(d float32) SD {
	return c.defaultSD.WithDistance(d).(SD)
}

// Interpret evaluates the program at position, returning false if the
// program left the value stack empty (a malformed program).
func Interpret[SD sdf.SignedDistance](ctx *Context[SD], position vecf.Vec3) (SD, bool) {
	interpretInternal(ctx, position)
	return ctx.popSD()
}

// InterpretUnchecked is Interpret without the empty-stack check, for
// hot loops over a program already known to be well-formed.
func InterpretUnchecked[SD sdf.SignedDistance](ctx *Context[SD], position vecf.Vec3) SD {
	interpretInternal(ctx, position)
	return ctx.popSDUnchecked()
}

func interpretInternal[SD sdf.SignedDistance](ctx *Context[SD], position vecf.Vec3) {
	ctx.Reset()
	currentPosition := position

	pc := 0
	for {
		op := ctx.opcodes[pc]
		pc++

		switch op {
		case program.OpPlane:
			ctx.pushSD(ctx.withDistance(sdf.SDPlane(currentPosition, ctx.vec4())))

		case program.OpSphere:
			center := ctx.vec3()
			radius := ctx.f32()
			ctx.pushSD(ctx.withDistance(sdf.SDSphere(currentPosition, center, radius)))

		case program.OpCapsule:
			p0 := ctx.vec3()
			p1 := ctx.vec3()
			radius := ctx.f32()
			ctx.pushSD(ctx.withDistance(sdf.SDCapsule(currentPosition, [2]vecf.Vec3{p0, p1}, radius)))

		case program.OpRoundedCylinder:
			cr := ctx.f32()
			hh := ctx.f32()
			rr := ctx.f32()
			ctx.pushSD(ctx.withDistance(sdf.SDRoundedCylinder(currentPosition, cr, hh, rr)))

		case program.OpTaperedCapsule:
			p0 := ctx.vec3()
			r0 := ctx.f32()
			p1 := ctx.vec3()
			r1 := ctx.f32()
			ctx.pushSD(ctx.withDistance(sdf.SDTaperedCapsule(currentPosition, [2]vecf.Vec3{p0, p1}, [2]float32{r0, r1})))

		case program.OpCone:
			r := ctx.f32()
			h := ctx.f32()
			ctx.pushSD(ctx.withDistance(sdf.SDCone(currentPosition, r, h)))

		case program.OpRoundedBox:
			halfSize := ctx.vec3()
			radius := ctx.f32()
			ctx.pushSD(ctx.withDistance(sdf.SDRoundedBox(currentPosition, halfSize, radius)))

		case program.OpTorus:
			bigR := ctx.f32()
			smallR := ctx.f32()
			ctx.pushSD(ctx.withDistance(sdf.SDTorus(currentPosition, bigR, smallR)))

		case program.OpTorusSector:
			bigR := ctx.f32()
			smallR := ctx.f32()
			sinCos := ctx.vec2()
			ctx.pushSD(ctx.withDistance(sdf.SDTorusSector(currentPosition, bigR, smallR, sinCos)))

		case program.OpBiconvexLens:
			lower := ctx.f32()
			upper := ctx.f32()
			chord := ctx.f32()
			ctx.pushSD(ctx.withDistance(sdf.SDBiconvexLens(currentPosition, lower, upper, chord)))

		case program.OpMaterial:
			sd := ctx.popSDUnchecked()
			mat := ctx.material()
			ctx.pushSD(sdf.WithMaterial(sd, mat))

		case program.OpUnion:
			sd1 := ctx.popSDUnchecked()
			sd2 := ctx.popSDUnchecked()
			ctx.pushSD(sdf.SDOpUnion(sd1, sd2))

		case program.OpUnionSmooth:
			sd1 := ctx.popSDUnchecked()
			sd2 := ctx.popSDUnchecked()
			width := ctx.f32()
			ctx.pushSD(sdf.SDOpUnionSmooth(sd1, sd2, width))

		case program.OpSubtract:
			sd1 := ctx.popSDUnchecked()
			sd2 := ctx.popSDUnchecked()
			ctx.pushSD(sdf.SDOpSubtract(sd1, sd2))

		case program.OpSubtractSmooth:
			sd1 := ctx.popSDUnchecked()
			sd2 := ctx.popSDUnchecked()
			width := ctx.f32()
			ctx.pushSD(sdf.SDOpSubtractSmooth(sd1, sd2, width))

		case program.OpIntersect:
			sd1 := ctx.popSDUnchecked()
			sd2 := ctx.popSDUnchecked()
			ctx.pushSD(sdf.SDOpIntersect(sd1, sd2))

		case program.OpIntersectSmooth:
			sd1 := ctx.popSDUnchecked()
			sd2 := ctx.popSDUnchecked()
			width := ctx.f32()
			ctx.pushSD(sdf.SDOpIntersectSmooth(sd1, sd2, width))

		case program.OpPushTranslation:
			translation := ctx.vec3()
			ctx.pushPosition(currentPosition)
			currentPosition = currentPosition.Add(translation)

		case program.OpPopTransform:
			currentPosition = ctx.popPositionUnchecked()

		case program.OpPushRotation:
			rotation := ctx.quat()
			ctx.pushPosition(currentPosition)
			currentPosition = rotation.RotateVec3(currentPosition)

		case program.OpPushScale:
			invScale := ctx.f32()
			ctx.pushPosition(currentPosition)
			currentPosition = currentPosition.Scale(invScale)

		case program.OpPopScale:
			currentPosition = ctx.popPositionUnchecked()
			scale := ctx.f32()
			sd := ctx.popSDUnchecked()
			ctx.pushSD(sd.MultiplyDistanceBy(scale).(SD))

		case program.OpEnd:
			return

		default:
			// An unrecognized opcode here means the program was not
			// validated before being handed to the interpreter; the hot
			// path trusts its input rather than checking every opcode.
			return
		}
	}
}
