package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	torus "github.com/rmera/gotorus"
	"github.com/urfave/cli/v2"
)

//run executes torusviz with the given arguments and returns what it
//printed and the error, without exiting.
func run(Te *testing.T, args ...string) (string, error) {
	Te.Helper()
	var out bytes.Buffer
	app := newApp(&out)
	app.ExitErrHandler = func(*cli.Context, error) {}
	err := app.Run(append([]string{"torusviz"}, args...))
	return out.String(), err
}

func exitCode(err error) int {
	var e cli.ExitCoder
	if errors.As(err, &e) {
		return e.ExitCode()
	}
	if err != nil {
		return -1
	}
	return 0
}

func TestGenerateShow(Te *testing.T) {
	dir := Te.TempDir()
	points := filepath.Join(dir, "points.txt.zst")
	settings := filepath.Join(dir, "setting.dat")
	if _, err := run(Te, "generate", "--R", "5", "--r", "2", "--n", "300", "--seed", "11", "--points", points, "--settings", settings); err != nil {
		Te.Fatal(err)
	}
	ps, err := torus.ReadPoints(points)
	if err != nil || ps.Len() != 300 {
		Te.Fatalf("generated points: %d %v", ps.Len(), err)
	}
	plot := filepath.Join(dir, "torus.png")
	hist := filepath.Join(dir, "zhist.png")
	out, err := run(Te, "show", "--points", points, "--settings", settings, "--out", plot, "--panels", "--hist", hist)
	if err != nil {
		Te.Fatal(err)
	}
	for _, want := range []string{"STATISTICS:", "Torus parameters: R = 5, r = 2", "Total points: 300"} {
		if !strings.Contains(out, want) {
			Te.Errorf("the report does not contain %q:\n%s", want, out)
		}
	}
	for _, name := range []string{plot, hist} {
		if info, err := os.Stat(name); err != nil || info.Size() == 0 {
			Te.Errorf("%s was not written: %v", name, err)
		}
	}
}

func TestShowMissing(Te *testing.T) {
	dir := Te.TempDir()
	points := filepath.Join(dir, "points.txt")
	settings := filepath.Join(dir, "setting.dat")
	plot := filepath.Join(dir, "torus.png")
	_, err := run(Te, "show", "--points", points, "--settings", settings, "--out", plot)
	if exitCode(err) != 1 {
		Te.Errorf("missing points: expected exit status 1, got %v", err)
	}
	if err := os.WriteFile(points, []byte("5 0 0\n0 5 0\nbad line\n3 4 0\n"), 0644); err != nil {
		Te.Fatal(err)
	}
	_, err = run(Te, "show", "--points", points, "--settings", settings, "--out", plot)
	if exitCode(err) != 1 {
		Te.Errorf("strict, missing settings: expected exit status 1, got %v", err)
	}
	out, err := run(Te, "show", "--points", points, "--settings", settings, "--out", plot, "--policy", "defaulting")
	if err != nil {
		Te.Fatalf("defaulting, missing settings: %v", err)
	}
	if !strings.Contains(out, "R = 5, r = 2") || !strings.Contains(out, "Total points: 3") {
		Te.Errorf("unexpected report:\n%s", out)
	}
}

func TestPointAdd(Te *testing.T) {
	points := filepath.Join(Te.TempDir(), "points.txt")
	if _, err := run(Te, "add", "--points", points, "1", "2.5", "-3"); err != nil {
		Te.Fatal(err)
	}
	if _, err := run(Te, "add", "--points", points, "4", "5", "6"); err != nil {
		Te.Fatal(err)
	}
	out, err := run(Te, "point", "--points", points, "--index", "0", "--coord", "y")
	if err != nil {
		Te.Fatal(err)
	}
	if strings.TrimSpace(out) != "2.5" {
		Te.Errorf("point 0, y: got %q", out)
	}
	out, err = run(Te, "point", "--points", points, "--index", "1")
	if err != nil {
		Te.Fatal(err)
	}
	if strings.TrimSpace(out) != "(4, 5, 6)" {
		Te.Errorf("point 1: got %q", out)
	}
	if _, err := run(Te, "point", "--points", points, "--index", "2"); exitCode(err) != 1 {
		Te.Errorf("out of range: expected exit status 1, got %v", err)
	}
	if _, err := run(Te, "add", "--points", points, "1", "2"); exitCode(err) != 1 {
		Te.Errorf("two coordinates: expected exit status 1, got %v", err)
	}
}
