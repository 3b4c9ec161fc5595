package histo

import (
	"testing"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"
)

func TestHistoCounts(Te *testing.T) {
	dividers := []float64{0, 1, 2, 3, 4, 8}
	rawdata := []float64{1, 6, 3, 2, 4, 5, 7, 6, 3.5, 3, 5, 1, 1, 0, 0, 5, 8, 1, 2, 3, 44, 3, 7, 3, 1, 3, 5, 32, 1}
	orig := make([]float64, len(rawdata))
	copy(orig, rawdata)
	h := NewData(dividers, rawdata, 3)
	Te.Log(h.String())
	if !floats.Equal(rawdata, orig) {
		Te.Error("NewData should not modify the raw data")
	}
	want := []float64{2, 6, 2, 7, 9}
	if !floats.Equal(h.View(), want) {
		Te.Errorf("Histogram: got %v, want %v", h.View(), want)
	}
	//8, 44 and 32 are off limits.
	if h.Total() != len(rawdata)-3 {
		Te.Errorf("Total: got %d, want %d", h.Total(), len(rawdata)-3)
	}
	if h.ID() != 3 {
		Te.Errorf("ID: got %d", h.ID())
	}
}

func TestHistoAddAndNormalize(Te *testing.T) {
	h := NewData(Uniform(0, 2, 4), nil)
	if h.ID() != -1 {
		Te.Errorf("default ID should be -1, got %d", h.ID())
	}
	h.AddData(0.1, 0.6, 0.7, 1.9, 2, -1)
	if !floats.Equal(h.View(), []float64{1, 2, 0, 1}) {
		Te.Errorf("AddData: got %v", h.View())
	}
	h.Normalize()
	if !h.Normalized() || !scalar.EqualWithinAbs(h.Sum(), 1, 1e-12) {
		Te.Errorf("normalized histogram should sum to 1, got %v", h.Sum())
	}
	h.AddData(1.2)
	if !h.Normalized() || !floats.EqualApprox(h.Copy(), []float64{0.2, 0.4, 0.2, 0.2}, 1e-12) {
		Te.Errorf("AddData on a normalized histogram: got %v", h.View())
	}
	h.UnNormalize()
	if !floats.EqualApprox(h.View(), []float64{1, 2, 1, 1}, 1e-12) {
		Te.Errorf("UnNormalize: got %v", h.View())
	}
}

func TestHistoEmpty(Te *testing.T) {
	h := NewData([]float64{0, 1, 2}, []float64{})
	if h.Total() != 0 || h.Sum() != 0 {
		Te.Errorf("empty histogram: total %d sum %v", h.Total(), h.Sum())
	}
	if d := h.CopyDividers(); !floats.Equal(d, []float64{0, 1, 2}) {
		Te.Errorf("CopyDividers: got %v", d)
	}
}
