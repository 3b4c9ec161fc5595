/*
 * histo.go, part of gotorus.
 *
 * Copyright 2026 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */
/***Dedicated to the long life of the Ven. Khenpo Phuntzok Tenzin Rinpoche***/

//Package histo provides simple histograms with fixed dividers, used
//to summarize the distribution of one coordinate of a point set.
package histo

import (
	"fmt"
	"sort"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

type Data struct {
	id         int
	normalized bool
	total      int
	dividers   []float64
	histo      []float64
}

//Uniform returns bins+1 evenly spaced dividers from min to max, both included.
//It panics if bins < 1 or max <= min.
func Uniform(min, max float64, bins int) []float64 {
	if bins < 1 || max <= min {
		panic(fmt.Sprintf("gotorus/histo.Uniform: Ill-formed range [%g, %g] with %d bins", min, max, bins))
	}
	return floats.Span(make([]float64, bins+1), min, max)
}

//Returns a new histogram from the dividers and rawdata given
//rawdata can be nil. In that case, an empty histogram is created.
//if an ID for the histogram is given, it will be set. If not, the ID will
//be set to -1. Neither dividers nor rawdata are modified.
func NewData(dividers []float64, rawdata []float64, ID ...int) *Data {
	if len(dividers) < 2 {
		panic("gotorus/histo.NewData: At least 2 dividers are needed")
	}
	d := new(Data)
	//I prefer to copy the slice to avoid somebody changing it from outside
	d.dividers = make([]float64, len(dividers))
	copy(d.dividers, dividers)
	d.histo = make([]float64, len(dividers)-1)
	if rawdata != nil {
		d.ReHisto(d.dividers, rawdata)
	}
	d.id = -1
	if len(ID) > 0 {
		d.id = ID[0]
	}
	return d
}

//ID returns the ID of the histogram
func (D *Data) ID() int {
	return D.id
}

//Total returns the number of data points that fell within the dividers.
func (D *Data) Total() int {
	return D.total
}

//String prints a -hopefully- pretty string representation of
//the histogram. The representation uses 3 lines of text
func (D *Data) String() string {
	ret := fmt.Sprintf("ID: %d, Normalized: %v, TotalData: %d\n", D.id, D.normalized, D.total)
	d := make([]string, 0, len(D.dividers)-1)
	h := make([]string, 0, len(D.dividers)-1)
	for i, v := range D.histo {
		d = append(d, fmt.Sprintf("%4.2f-%4.2f", D.dividers[i], D.dividers[i+1]))
		h = append(h, fmt.Sprintf("%9.3f", v))
	}
	return ret + fmt.Sprintf("%s\n%s", strings.Join(d, " "), strings.Join(h, " "))
}

//Adds the given data point(s) to the histogram. Values outside
//the dividers are omitted. As in stat.Histogram, values equal to the
//last divider are outside.
func (D *Data) AddData(point ...float64) {
	var norma bool
	if D.normalized {
		norma = true
		D.UnNormalize()
	}
	last := len(D.dividers) - 1
	for _, v := range point {
		for j, w := range D.dividers {
			if j == last {
				break
			}
			if w <= v && v < D.dividers[j+1] {
				D.histo[j]++
				D.total++
				break
			}
		}
	}
	//if it was normalized, we should return it to that state
	if norma {
		D.Normalize()
	}
}

//Normalized Returns true if the histogram is normalized
func (D *Data) Normalized() bool {
	return D.normalized
}

//Normalize normalizes the histogram
func (D *Data) Normalize() {
	D.normaunnorma(true)
}

//UnNormalize un-normalizes the histogram
func (D *Data) UnNormalize() {
	D.normaunnorma(false)
}

//normalizes or un-normalizes the histogram depending
//on whether normalize is true
func (D *Data) normaunnorma(normalize bool) {
	if D.total <= 0 || D.normalized == normalize {
		return
	}
	n := float64(D.total)
	D.normalized = false
	if normalize {
		n = 1 / float64(D.total)
		D.normalized = true
	}
	floats.Scale(n, D.histo)
}

//Copies the dividers of the histogram
func (D *Data) CopyDividers(dest ...[]float64) []float64 {
	d := getCopySlice(len(D.dividers), dest...)
	copy(d, D.dividers)
	return d
}

//Copy copies the bin values of the histogram
func (D *Data) Copy(dest ...[]float64) []float64 {
	d := getCopySlice(len(D.histo), dest...)
	copy(d, D.histo)
	return d
}

//View returns the bin values. Changes to the slice affect the histogram.
func (D *Data) View() []float64 {
	return D.histo
}

func (D *Data) Sum() float64 {
	return floats.Sum(D.histo)
}

//ReHisto recomputes the histogram from scratch with the given dividers and rawdata.
func (D *Data) ReHisto(dividers, rawdata []float64) {
	//stat.Histogram wants sorted data and just panics instead of omitting the
	//values that are off limits, so we work on a sorted, trimmed copy.
	data := make([]float64, len(rawdata))
	copy(data, rawdata)
	sort.Float64s(data)
	maxi := sort.SearchFloat64s(data, dividers[len(dividers)-1])
	data = data[:maxi]
	mini := sort.SearchFloat64s(data, dividers[0])
	data = data[mini:]
	D.total = len(data)
	D.normalized = false
	if len(D.dividers) != len(dividers) {
		D.dividers = make([]float64, len(dividers))
	}
	copy(D.dividers, dividers)
	if len(data) == 0 {
		D.histo = make([]float64, len(D.dividers)-1)
		return
	}
	D.histo = stat.Histogram(nil, D.dividers, data, nil)
}

func getCopySlice(N int, dest ...[]float64) []float64 {
	var d []float64
	if len(dest) > 0 && len(dest[0]) >= N {
		d = dest[0][:N]
	} else {
		d = make([]float64, N)
	}
	return d
}
