package interpreter

import (
	"testing"

	"github.com/taigrr/opensaft/pkg/compiler"
	"github.com/taigrr/opensaft/pkg/graph"
	"github.com/taigrr/opensaft/pkg/sdf"
	"github.com/taigrr/opensaft/pkg/vecf"
)

func approxEq(a, b, eps float32) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= eps
}

func TestInterpretSphereMatchesAnalyticSDF(t *testing.T) {
	g := graph.NewGraph()
	center := vecf.V3(1, 2, 3)
	s := g.Sphere(center, 4)
	p := compiler.Compile(g, s)

	ctx := NewScalarContext(p)
	for _, pos := range []vecf.Vec3{
		vecf.Zero3(),
		vecf.V3(5, 2, 3),
		vecf.V3(1, 2, 10),
		vecf.V3(-4, -4, -4),
	} {
		got, ok := Interpret(ctx, pos)
		if !ok {
			t.Fatalf("Interpret: empty stack for %v", pos)
		}
		want := sdf.SDSphere(pos, center, 4)
		if !approxEq(float32(got), want, 1e-4) {
			t.Errorf("Interpret(%v) = %v, want %v", pos, got, want)
		}
	}
}

func TestInterpretSubtractPopOrderMatchesLHSMinusRHS(t *testing.T) {
	g := graph.NewGraph()
	a := g.Sphere(vecf.Zero3(), 2)
	b := g.Sphere(vecf.V3(1, 0, 0), 1)
	sub := g.OpSubtract(a, b)
	p := compiler.Compile(g, sub)

	ctx := NewScalarContext(p)
	for _, pos := range []vecf.Vec3{vecf.Zero3(), vecf.V3(1, 0, 0), vecf.V3(-2, 0, 0)} {
		got, ok := Interpret(ctx, pos)
		if !ok {
			t.Fatalf("Interpret: empty stack for %v", pos)
		}
		da := sdf.SDSphere(pos, vecf.Zero3(), 2)
		db := sdf.SDSphere(pos, vecf.V3(1, 0, 0), 1)
		// SDOpSubtract(d1, d2) carves d1's shape out of d2's, so LHS minus
		// RHS is SDOpSubtract(RHS, LHS).
		want := sdf.SDOpSubtract(sdf.ScalarDistance(db), sdf.ScalarDistance(da))
		if !approxEq(float32(got), float32(want), 1e-4) {
			t.Errorf("Interpret(%v) = %v, want %v (LHS-RHS)", pos, got, want)
		}
	}
}

func TestInterpretUnionMatchesMinOfBothSpheres(t *testing.T) {
	g := graph.NewGraph()
	a := g.Sphere(vecf.Zero3(), 1)
	b := g.Sphere(vecf.V3(3, 0, 0), 1)
	u := g.OpUnion(a, b)
	p := compiler.Compile(g, u)

	ctx := NewScalarContext(p)
	pos := vecf.V3(1.4, 0, 0)
	got, ok := Interpret(ctx, pos)
	if !ok {
		t.Fatal("Interpret: empty stack")
	}
	da := sdf.SDSphere(pos, vecf.Zero3(), 1)
	db := sdf.SDSphere(pos, vecf.V3(3, 0, 0), 1)
	want := da
	if db < want {
		want = db
	}
	if !approxEq(float32(got), want, 1e-4) {
		t.Errorf("Interpret(union) = %v, want min(%v, %v) = %v", got, da, db, want)
	}
}

func TestInterpretTranslateScaleMatchesTransformedSamplePoint(t *testing.T) {
	g := graph.NewGraph()
	s := g.Sphere(vecf.Zero3(), 1)
	translated := g.OpTranslate(s, vecf.V3(2, 0, 0))
	scaled := g.OpScale(translated, 3)
	p := compiler.Compile(g, scaled)

	ctx := NewScalarContext(p)
	pos := vecf.V3(5, 0, 0)
	got, ok := Interpret(ctx, pos)
	if !ok {
		t.Fatal("Interpret: empty stack")
	}
	// Scaling by 3 first maps the sample point into the pre-scale frame,
	// then the translation is undone, then the distance is scaled back up.
	local := pos.Scale(1.0 / 3.0).Sub(vecf.V3(2, 0, 0))
	want := sdf.SDSphere(local, vecf.Zero3(), 1) * 3
	if !approxEq(float32(got), want, 1e-3) {
		t.Errorf("Interpret(transformed) = %v, want %v", got, want)
	}
}

func TestInterpretUncheckedSkipsEmptyStackCheck(t *testing.T) {
	g := graph.NewGraph()
	s := g.Sphere(vecf.Zero3(), 1)
	p := compiler.Compile(g, s)

	ctx := NewScalarContext(p)
	got := InterpretUnchecked(ctx, vecf.V3(2, 0, 0))
	want := sdf.SDSphere(vecf.V3(2, 0, 0), vecf.Zero3(), 1)
	if !approxEq(float32(got), want, 1e-4) {
		t.Errorf("InterpretUnchecked = %v, want %v", got, want)
	}
}

func TestNewScalarContextDefaultsToInfinity(t *testing.T) {
	g := graph.NewGraph()
	s := g.Sphere(vecf.Zero3(), 1)
	ctx := NewScalarContext(compiler.Compile(g, s))
	if ctx.defaultSD.IsFinite() {
		t.Error("ScalarContext's default distance should be infinite before any primitive runs")
	}
}

func TestNewRGBContextCarriesDefaultMaterial(t *testing.T) {
	g := graph.NewGraph()
	s := g.Sphere(vecf.Zero3(), 1)
	ctx := NewRGBContext(compiler.Compile(g, s))

	got, ok := Interpret(ctx, vecf.V3(2, 0, 0))
	if !ok {
		t.Fatal("Interpret: empty stack")
	}
	want := sdf.DefaultMaterial().RGB
	if got.RGB != want {
		t.Errorf("RGB context default material = %v, want %v", got.RGB, want)
	}
}

func TestInterpretMaterialOverridesDefaultColor(t *testing.T) {
	g := graph.NewGraph()
	s := g.Sphere(vecf.Zero3(), 1)
	colored := g.OpRGB(s, vecf.V3(0.2, 0.4, 0.6))
	ctx := NewRGBContext(compiler.Compile(g, colored))

	got, ok := Interpret(ctx, vecf.V3(2, 0, 0))
	if !ok {
		t.Fatal("Interpret: empty stack")
	}
	want := vecf.V3(0.2, 0.4, 0.6)
	if got.RGB != want {
		t.Errorf("RGB = %v, want %v", got.RGB, want)
	}
}
