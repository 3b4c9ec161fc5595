/*
 * files.go, part of gotorus.
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

package torus

import (
	"bufio"
	"errors"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/klauspost/compress/zstd"
)

//CompressedSuffix marks point and settings files that are zstd-compressed.
const CompressedSuffix = ".zst"

//Why couldn't *zstd.Decoder implement io.ReadCloser? :-(
type zstdReadCloser struct {
	*zstd.Decoder
	f *os.File
}

func (z zstdReadCloser) Close() error {
	z.Decoder.Close()
	return z.f.Close()
}

type zstdWriteCloser struct {
	*zstd.Encoder
	f *os.File
}

func (z zstdWriteCloser) Close() error {
	err := z.Encoder.Close()
	if err2 := z.f.Close(); err == nil {
		err = err2
	}
	return err
}

//openRead opens name for reading, decompressing it on the fly if
//it has the CompressedSuffix. missing is the Kind returned if the file
//does not exist.
func openRead(name string, missing Kind, critical bool) (io.ReadCloser, error) {
	f, err := os.Open(name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, newError(missing, name, "", err, critical, "openRead")
		}
		return nil, newError(ErrIO, name, "unable to open file", err, true, "openRead")
	}
	if !strings.HasSuffix(name, CompressedSuffix) {
		return f, nil
	}
	d, err := zstd.NewReader(f)
	if err != nil {
		f.Close()
		return nil, newError(ErrIO, name, "unable to start zstd decoder", err, true, "openRead")
	}
	return zstdReadCloser{d, f}, nil
}

//openWrite creates (or truncates) name for writing, compressing the
//output if it has the CompressedSuffix.
func openWrite(name string) (io.WriteCloser, error) {
	f, err := os.Create(name)
	if err != nil {
		return nil, newError(ErrIO, name, "unable to create file", err, true, "openWrite")
	}
	if !strings.HasSuffix(name, CompressedSuffix) {
		return f, nil
	}
	e, err := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
	if err != nil {
		f.Close()
		return nil, newError(ErrIO, name, "unable to start zstd encoder", err, true, "openWrite")
	}
	return zstdWriteCloser{e, f}, nil
}

//ReadPoints reads a points file, with one point per line given as 3 whitespace-separated
//numbers. Lines that can't be parsed as a point are skipped. If the file doesn't exist, the
//error returned has the kind ErrMissingInputFile. Files ending in .zst are decompressed.
func ReadPoints(name string) (PointSet, error) {
	r, err := openRead(name, ErrMissingInputFile, true)
	if err != nil {
		return nil, errDecorate(err, "ReadPoints")
	}
	defer r.Close()
	ps, err := PointsRead(r)
	if err != nil {
		if e, ok := err.(*CError); ok {
			e.filename = name
		}
		return nil, errDecorate(err, "ReadPoints")
	}
	return ps, nil
}

//PointsRead reads points from r until EOF. See ReadPoints.
//The returned set is never nil when the error is nil.
func PointsRead(r io.Reader) (PointSet, error) {
	ps := make(PointSet, 0)
	err := readLines(r, func(line string) error {
		if p, ok := parsePointLine(line); ok {
			ps = append(ps, p)
		}
		return nil
	})
	if err != nil {
		return nil, newError(ErrIO, "", "reading points", err, true, "PointsRead")
	}
	return ps, nil
}

//readLines calls fn with each line of r, without the line ending, until EOF or
//until fn returns an error, which is then returned. Lines can have any length.
func readLines(r io.Reader, fn func(line string) error) error {
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if len(line) > 0 {
			if err2 := fn(strings.TrimRight(line, "\r\n")); err2 != nil {
				return err2
			}
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

//parsePointLine returns false for blank or malformed lines, and for lines
//with non-finite values.
func parsePointLine(line string) (Point3D, bool) {
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return Point3D{}, false
	}
	var c [3]float64
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return Point3D{}, false
		}
		c[i] = v
	}
	p := Point3D{c[0], c[1], c[2]}
	return p, p.Finite()
}

//WritePoints writes the points in ps to the file name, one per line, truncating the file if
//it exists. Files ending in .zst are compressed.
func WritePoints(name string, ps PointSet) error {
	w, err := openWrite(name)
	if err != nil {
		return errDecorate(err, "WritePoints")
	}
	if err := PointsWrite(w, ps); err != nil {
		w.Close()
		return errDecorate(err, "WritePoints")
	}
	if err := w.Close(); err != nil {
		return newError(ErrIO, name, "closing file", err, true, "WritePoints")
	}
	return nil
}

//PointsWrite writes ps to w in the format read by PointsRead.
func PointsWrite(w io.Writer, ps PointSet) error {
	bw := bufio.NewWriter(w)
	buf := make([]byte, 0, 64)
	for _, p := range ps {
		buf = buf[:0]
		buf = strconv.AppendFloat(buf, p.X, 'g', -1, 64)
		buf = append(buf, ' ')
		buf = strconv.AppendFloat(buf, p.Y, 'g', -1, 64)
		buf = append(buf, ' ')
		buf = strconv.AppendFloat(buf, p.Z, 'g', -1, 64)
		buf = append(buf, '\n')
		if _, err := bw.Write(buf); err != nil {
			return newError(ErrIO, "", "writing points", err, true, "PointsWrite")
		}
	}
	if err := bw.Flush(); err != nil {
		return newError(ErrIO, "", "writing points", err, true, "PointsWrite")
	}
	return nil
}

//AppendPoints adds the given points at the end of the points file name, creating
//it if needed. The file is rewritten, so lines that ReadPoints would skip are lost.
//It returns the total number of points in the file.
func AppendPoints(name string, points ...Point3D) (int, error) {
	for _, p := range points {
		if !p.Finite() {
			return 0, newError(ErrNonFinitePoint, name, p.String(), nil, true, "AppendPoints")
		}
	}
	ps, err := ReadPoints(name)
	if err != nil {
		if !errors.Is(err, ErrMissingInputFile) {
			return 0, errDecorate(err, "AppendPoints")
		}
		ps = make(PointSet, 0, len(points))
	}
	ps = append(ps, points...)
	if err := WritePoints(name, ps); err != nil {
		return 0, errDecorate(err, "AppendPoints")
	}
	return len(ps), nil
}
