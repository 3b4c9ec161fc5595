/*
 * main.go, part of gotorus
 *
 * Copyright 2026 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
    This program is free software: you can redistribute it and/or modify
    it under the terms of the GNU Lesser General Public License as published by
    the Free Software Foundation, either version 2.1 of the License, or
    (at your option) any later version.

    This program is distributed in the hope that it will be useful,
    but WITHOUT ANY WARRANTY; without even the implied warranty of
    MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
    GNU General Public License for more details.

    You should have received a copy of the GNU Lesser General Public License
    along with this program.  If not, see <http://www.gnu.org/licenses/>.
 *
 *
*/

//torusviz reads a set of points and the parameters of a torus, prints some
//statistics and plots the points against the upper half of the torus.
//It can also generate and edit data sets.
package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	torus "github.com/rmera/gotorus"
	"github.com/rmera/gotorus/torusplot"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

const (
	flagPoints   = "points"
	flagSettings = "settings"
	flagPolicy   = "policy"
	flagOut      = "out"
	flagPanels   = "panels"
	flagUSamples = "u-samples"
	flagVSamples = "v-samples"
	flagFull     = "full"
	flagHist     = "hist"
	flagMajor    = "R"
	flagMinor    = "r"
	flagN        = "n"
	flagSeed     = "seed"
	flagIndex    = "index"
	flagCoord    = "coord"

	defaultPoints   = "points.txt"
	defaultSettings = "setting.dat"
)

//newLogger returns a console logger, at debug level if debug is true.
func newLogger(debug bool) (*zap.SugaredLogger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.OutputPaths = []string{"stderr"}
	cfg.DisableStacktrace = true
	if !debug {
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
		cfg.DisableCaller = true
	}
	l, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return l.Sugar(), nil
}

func pointsFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    flagPoints,
		Aliases: []string{"p"},
		Value:   defaultPoints,
		Usage:   "read the points from `FILE` (.zst for compressed files)",
	}
}

func settingsFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    flagSettings,
		Aliases: []string{"s"},
		Value:   defaultSettings,
		Usage:   "read the torus radii from `FILE`",
	}
}

//newApp builds the torusviz application. Reports are written to out.
func newApp(out io.Writer) *cli.App {
	log := zap.NewNop().Sugar()
	app := &cli.App{
		Name:   "torusviz",
		Usage:  "check and plot points in the upper half of a torus",
		Writer: out,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "enable debug logging",
			},
		},
		Before: func(c *cli.Context) error {
			l, err := newLogger(c.Bool("debug"))
			if err != nil {
				return err
			}
			log = l
			return nil
		},
		After: func(c *cli.Context) error {
			//syncing stderr fails on some systems, that is not a problem.
			_ = log.Sync()
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:  "show",
				Usage: "print statistics of the points and plot them with the torus surface",
				Flags: []cli.Flag{
					pointsFlag(),
					settingsFlag(),
					&cli.StringFlag{
						Name:  flagPolicy,
						Value: torus.Strict.String(),
						Usage: "`POLICY` for bad or missing settings: strict or defaulting",
					},
					&cli.StringFlag{
						Name:    flagOut,
						Aliases: []string{"o"},
						Value:   "torus.png",
						Usage:   "save the plot to `FILE`, the format is given by the extension",
					},
					&cli.BoolFlag{
						Name:  flagPanels,
						Usage: "also draw the XY, XZ and YZ projections",
					},
					&cli.IntFlag{
						Name:  flagUSamples,
						Value: torus.DefaultUSamples,
						Usage: "samples around the symmetry axis",
					},
					&cli.IntFlag{
						Name:  flagVSamples,
						Value: torus.DefaultVSamples,
						Usage: "samples around the tube",
					},
					&cli.BoolFlag{
						Name:  flagFull,
						Usage: "draw the whole torus, not only the upper half",
					},
					&cli.StringFlag{
						Name:  flagHist,
						Usage: "save a histogram of the Z coordinates to `FILE`",
					},
				},
				Action: func(c *cli.Context) error {
					return show(c, log)
				},
			},
			{
				Name:  "generate",
				Usage: "write random points in the upper half of a torus, and the torus settings",
				Flags: []cli.Flag{
					pointsFlag(),
					settingsFlag(),
					&cli.Float64Flag{
						Name:     flagMajor,
						Usage:    "major radius",
						Required: true,
					},
					&cli.Float64Flag{
						Name:     flagMinor,
						Usage:    "minor radius",
						Required: true,
					},
					&cli.IntFlag{
						Name:  flagN,
						Value: 1000,
						Usage: "number of points",
					},
					&cli.Uint64Flag{
						Name:  flagSeed,
						Usage: "seed for the random numbers (default: from the clock)",
					},
				},
				Action: func(c *cli.Context) error {
					return generate(c, log)
				},
			},
			{
				Name:  "point",
				Usage: "print one point, or one of its coordinates",
				Flags: []cli.Flag{
					pointsFlag(),
					&cli.IntFlag{
						Name:     flagIndex,
						Aliases:  []string{"i"},
						Usage:    "0-based `INDEX` of the point",
						Required: true,
					},
					&cli.StringFlag{
						Name:  flagCoord,
						Usage: "print only the coordinate x, y or z",
					},
				},
				Action: func(c *cli.Context) error {
					return point(c, log)
				},
			},
			{
				Name:      "add",
				Usage:     "append a point to the points file",
				ArgsUsage: "X Y Z",
				Flags:     []cli.Flag{pointsFlag()},
				Action: func(c *cli.Context) error {
					return add(c, log)
				},
			},
		},
	}
	return app
}

//fail logs err and returns an error that makes torusviz exit with status 1.
func fail(log *zap.SugaredLogger, err error) error {
	if e, ok := err.(torus.Error); ok {
		log.Debugw("error trace", "calls", e.Decorate(""))
	}
	log.Error(err)
	return cli.Exit("", 1)
}

func show(c *cli.Context, log *zap.SugaredLogger) error {
	policy, err := torus.ParsePolicy(c.String(flagPolicy))
	if err != nil {
		return fail(log, err)
	}
	ps, err := torus.ReadPoints(c.String(flagPoints))
	if err != nil {
		return fail(log, err)
	}
	log.Debugw("read points", "file", c.String(flagPoints), "n", ps.Len())
	cfg, err := torus.ReadSettings(c.String(flagSettings), policy)
	if err != nil {
		if e, ok := err.(torus.Error); !ok || e.Critical() {
			return fail(log, err)
		}
		log.Warnf("%s, using the default parameters %v", err, cfg)
	}
	log.Infof("torus parameters: %v", cfg)
	mesh, err := torus.Surface(cfg, c.Int(flagUSamples), c.Int(flagVSamples), !c.Bool(flagFull))
	if err != nil {
		return fail(log, err)
	}
	opts := torusplot.DefaultOptions()
	opts.Panels = c.Bool(flagPanels)
	if err := torusplot.Render(ps, cfg, mesh, c.String(flagOut), opts); err != nil {
		return fail(log, err)
	}
	log.Infof("plot saved to %s", c.String(flagOut))
	s := torus.Stats(ps, cfg)
	fmt.Fprint(c.App.Writer, s.String())
	if name := c.String(flagHist); name != "" {
		if s.ZHisto == nil {
			log.Warn("no points, the Z histogram is not drawn")
			return nil
		}
		p, err := torusplot.ZHistogram(s.ZHisto, "Z distribution")
		if err != nil {
			return fail(log, err)
		}
		if err := p.Save(opts.Width, opts.Height, name); err != nil {
			return fail(log, err)
		}
		log.Infof("Z histogram saved to %s", name)
	}
	return nil
}

func generate(c *cli.Context, log *zap.SugaredLogger) error {
	cfg := torus.Config{Major: c.Float64(flagMajor), Minor: c.Float64(flagMinor)}
	seed := c.Uint64(flagSeed)
	if !c.IsSet(flagSeed) {
		seed = uint64(time.Now().UnixNano())
	}
	log.Debugw("generator", "seed", seed)
	G, err := torus.NewGenerator(cfg, seed)
	if err != nil {
		return fail(log, err)
	}
	ps, err := G.Points(c.Int(flagN))
	if err != nil {
		return fail(log, err)
	}
	if err := torus.WritePoints(c.String(flagPoints), ps); err != nil {
		return fail(log, err)
	}
	if err := torus.WriteSettings(c.String(flagSettings), cfg); err != nil {
		return fail(log, err)
	}
	log.Infof("%d points written to %s, parameters (%v) to %s", ps.Len(), c.String(flagPoints), cfg, c.String(flagSettings))
	return nil
}

func point(c *cli.Context, log *zap.SugaredLogger) error {
	ps, err := torus.ReadPoints(c.String(flagPoints))
	if err != nil {
		return fail(log, err)
	}
	p, err := ps.At(c.Int(flagIndex))
	if err != nil {
		return fail(log, err)
	}
	coord := c.String(flagCoord)
	if coord == "" {
		fmt.Fprintln(c.App.Writer, p)
		return nil
	}
	if len(coord) != 1 {
		return fail(log, fmt.Errorf("bad coordinate %q, use x, y or z", coord))
	}
	v, err := p.Coord(coord[0])
	if err != nil {
		return fail(log, err)
	}
	fmt.Fprintln(c.App.Writer, strconv.FormatFloat(v, 'g', -1, 64))
	return nil
}

func add(c *cli.Context, log *zap.SugaredLogger) error {
	if c.NArg() != 3 {
		return fail(log, fmt.Errorf("add needs exactly 3 coordinates, got %d", c.NArg()))
	}
	var xyz [3]float64
	for i := range xyz {
		v, err := strconv.ParseFloat(c.Args().Get(i), 64)
		if err != nil {
			return fail(log, fmt.Errorf("coordinate %d: %w", i+1, err))
		}
		xyz[i] = v
	}
	p := torus.Point3D{X: xyz[0], Y: xyz[1], Z: xyz[2]}
	n, err := torus.AppendPoints(c.String(flagPoints), p)
	if err != nil {
		return fail(log, err)
	}
	log.Infof("%v added to %s, which now has %d points", p, c.String(flagPoints), n)
	return nil
}

func main() {
	if err := newApp(os.Stdout).Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
