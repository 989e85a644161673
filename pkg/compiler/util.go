package compiler

import "github.com/taigrr/opensaft/pkg/vecf"

func quatToVec4(q vecf.Quat) vecf.Vec4 {
	return vecf.V4(q.X, q.Y, q.Z, q.W)
}
