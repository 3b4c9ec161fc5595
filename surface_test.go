package torus

import (
	"errors"
	"math"
	"testing"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

func TestSurfaceHalf(Te *testing.T) {
	c := Config{5, 2}
	M, err := Surface(c, 4, 3, true)
	if err != nil {
		Te.Fatal(err)
	}
	rows, cols := M.Dims()
	if rows != 3 || cols != 4 {
		Te.Fatalf("Dims: got %d x %d, want 3 x 4", rows, cols)
	}
	for _, g := range []*mat.Dense{M.X, M.Y, M.Z} {
		if r, c := g.Dims(); r != rows || c != cols {
			Te.Fatalf("grid of shape %d x %d", r, c)
		}
	}
	if !floats.EqualApprox(M.V, []float64{0, math.Pi / 2, math.Pi}, 1e-15) {
		Te.Errorf("V samples: %v", M.V)
	}
	if M.U[0] != 0 || M.U[3] != 2*math.Pi {
		Te.Errorf("U samples should include both endpoints: %v", M.U)
	}
	for j := 0; j < cols; j++ {
		//v=0 and v=π are the boundaries of the upper half.
		if z := M.Z.At(0, j); math.Abs(z) > 1e-12 {
			Te.Errorf("Z at v=0, u=%v: %v", M.U[j], z)
		}
		if z := M.Z.At(2, j); math.Abs(z) > 1e-12 {
			Te.Errorf("Z at v=π, u=%v: %v", M.U[j], z)
		}
		if z := M.Z.At(1, j); !(z > 0) || math.Abs(z-c.Minor) > 1e-12 {
			Te.Errorf("Z at v=π/2, u=%v: %v, want %v", M.U[j], z, c.Minor)
		}
	}
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if M.Z.At(i, j) < 0 {
				Te.Errorf("negative Z in the upper half at %d, %d: %v", i, j, M.Z.At(i, j))
			}
		}
	}
	//v=0, u=0 is the outer equator: (R+r, 0, 0)
	p := M.At(0, 0)
	if math.Abs(p.X-7) > 1e-12 || math.Abs(p.Y) > 1e-12 || math.Abs(p.Z) > 1e-12 {
		Te.Errorf("At(0,0): %v", p)
	}
	//v=π, u=0 is the inner equator: (R-r, 0, 0)
	if p := M.At(2, 0); math.Abs(p.X-3) > 1e-12 {
		Te.Errorf("At(2,0): %v", p)
	}
}

func TestSurfaceDefault(Te *testing.T) {
	M, err := DefaultSurface(Config{5, 2})
	if err != nil {
		Te.Fatal(err)
	}
	if r, c := M.Dims(); r != DefaultVSamples || c != DefaultUSamples || !M.Half {
		Te.Errorf("default surface: %d x %d, half: %v", r, c, M.Half)
	}
	if min := mat.Min(M.Z); min < 0 {
		Te.Errorf("default surface has negative Z: %v", min)
	}
}

func TestSurfaceFull(Te *testing.T) {
	M, err := Surface(Config{5, 2}, 10, 9, false)
	if err != nil {
		Te.Fatal(err)
	}
	if M.V[len(M.V)-1] != 2*math.Pi {
		Te.Errorf("the full torus should sample V up to 2π: %v", M.V)
	}
	if min, max := mat.Min(M.Z), mat.Max(M.Z); math.Abs(min+2) > 1e-12 || math.Abs(max-2) > 1e-12 {
		Te.Errorf("Z range of the full torus: [%v, %v]", min, max)
	}
	//every point of the mesh is on the surface.
	c := Config{5, 2}
	r, cols := M.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < cols; j++ {
			p := M.At(i, j)
			d := math.Hypot(math.Hypot(p.X, p.Y)-c.Major, p.Z)
			if math.Abs(d-c.Minor) > 1e-12 {
				Te.Errorf("point %v is at %v from the tube center", p, d)
			}
		}
	}
}

func TestSurfacePure(Te *testing.T) {
	c := Config{3.3, 0.7}
	A, err := Surface(c, 50, 25, true)
	if err != nil {
		Te.Fatal(err)
	}
	B, err := Surface(c, 50, 25, true)
	if err != nil {
		Te.Fatal(err)
	}
	if !mat.Equal(A.X, B.X) || !mat.Equal(A.Y, B.Y) || !mat.Equal(A.Z, B.Z) {
		Te.Error("two identical calls gave different meshes")
	}
	if !floats.Equal(A.U, B.U) || !floats.Equal(A.V, B.V) {
		Te.Error("two identical calls gave different angles")
	}
}

func TestSurfaceBadSampling(Te *testing.T) {
	for _, s := range [][2]int{{1, 25}, {50, 1}, {0, 0}, {-3, 4}} {
		if _, err := Surface(Config{5, 2}, s[0], s[1], true); !errors.Is(err, ErrBadSampling) {
			Te.Errorf("%v samples: expected ErrBadSampling, got %v", s, err)
		}
	}
}
