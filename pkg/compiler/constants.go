package compiler

import "github.com/taigrr/opensaft/pkg/vecf"

// constantWriter appends to a program's constant pool during Compile.
type constantWriter struct {
	constants *[]float32
}

func (w constantWriter) pushF32(v float32) {
	*w.constants = append(*w.constants, v)
}

func (w constantWriter) pushVec2(v vecf.Vec2) {
	w.pushF32(v.X)
	w.pushF32(v.Y)
}

func (w constantWriter) pushVec3(v vecf.Vec3) {
	w.pushF32(v.X)
	w.pushF32(v.Y)
	w.pushF32(v.Z)
}

func (w constantWriter) pushVec4(v vecf.Vec4) {
	w.pushF32(v.X)
	w.pushF32(v.Y)
	w.pushF32(v.Z)
	w.pushF32(v.W)
}

// constantReader reads sequentially from a program's constant pool
// during Decompile, erroring with BadConstants on underflow.
type constantReader struct {
	constants []float32
	offset    int
}

func (r *constantReader) atEnd() bool {
	return r.offset >= len(r.constants)
}

func (r *constantReader) skip(n int) error {
	if r.offset+n > len(r.constants) {
		return errBadConstants()
	}
	r.offset += n
	return nil
}

func (r *constantReader) readF32() (float32, error) {
	if r.offset >= len(r.constants) {
		return 0, errBadConstants()
	}
	v := r.constants[r.offset]
	r.offset++
	return v, nil
}

func (r *constantReader) readVec2() (vecf.Vec2, error) {
	x, err := r.readF32()
	if err != nil {
		return vecf.Vec2{}, err
	}
	y, err := r.readF32()
	if err != nil {
		return vecf.Vec2{}, err
	}
	return vecf.V2(x, y), nil
}

func (r *constantReader) readVec3() (vecf.Vec3, error) {
	x, err := r.readF32()
	if err != nil {
		return vecf.Vec3{}, err
	}
	y, err := r.readF32()
	if err != nil {
		return vecf.Vec3{}, err
	}
	z, err := r.readF32()
	if err != nil {
		return vecf.Vec3{}, err
	}
	return vecf.V3(x, y, z), nil
}

func (r *constantReader) readVec4() (vecf.Vec4, error) {
	x, err := r.readF32()
	if err != nil {
		return vecf.Vec4{}, err
	}
	y, err := r.readF32()
	if err != nil {
		return vecf.Vec4{}, err
	}
	z, err := r.readF32()
	if err != nil {
		return vecf.Vec4{}, err
	}
	w, err := r.readF32()
	if err != nil {
		return vecf.Vec4{}, err
	}
	return vecf.V4(x, y, z, w), nil
}

func (r *constantReader) readQuat() (vecf.Quat, error) {
	v, err := r.readVec4()
	if err != nil {
		return vecf.Quat{}, err
	}
	return vecf.Quat{X: v.X, Y: v.Y, Z: v.Z, W: v.W}, nil
}
