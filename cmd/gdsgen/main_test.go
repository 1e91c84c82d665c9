package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qchiplab/gds"
)

func TestLoadConfig_Defaults(t *testing.T) {
	require.NoError(t, loadConfig(""))
	assert.Equal(t, gds.DefaultResizeLayer, cfg.GetInt(cfgKeyResizeLayer))
	assert.Equal(t, 128, cfg.GetInt(cfgKeyThreshold))
	assert.Equal(t, "library", cfg.GetString(cfgKeyLibName))
}

func TestLoadConfig_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gdsgen.yaml")
	require.NoError(t, os.WriteFile(path, []byte("resize_layer: 7\nlibrary_name: mychip\n"), 0o644))

	require.NoError(t, loadConfig(path))
	assert.Equal(t, 7, cfg.GetInt(cfgKeyResizeLayer))
	assert.Equal(t, "mychip", cfg.GetString(cfgKeyLibName))
	// Untouched keys keep their defaults.
	assert.Equal(t, 128, cfg.GetInt(cfgKeyThreshold))
}

func TestLoadConfig_MissingExplicitFile(t *testing.T) {
	err := loadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestBuildDemoLibrary(t *testing.T) {
	lib, err := buildDemoLibrary("demo")
	require.NoError(t, err)
	assert.Equal(t, "demo", lib.Name)

	cells := lib.Cells()
	require.Len(t, cells, 3)
	assert.Equal(t, []string{"ONE", "TWO", "THREE"},
		[]string{cells[0].Name, cells[1].Name, cells[2].Name})

	one, err := lib.Cell("ONE")
	require.NoError(t, err)
	assert.NotEmpty(t, one.Polygons())
	assert.Equal(t, []int{1}, one.Layers())

	two, err := lib.Cell("TWO")
	require.NoError(t, err)
	assert.Len(t, two.Polygons(), 40, "four SQUIDs of ten polygons each")
	assert.Equal(t, []int{1, 2}, two.Layers())

	three, err := lib.Cell("THREE")
	require.NoError(t, err)
	assert.Greater(t, len(three.Polygons()), 19, "ground plane pieces plus component parts")
}

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestDemoCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "demo.gds")
	out, err := runCommand(t, "demo", path)
	require.NoError(t, err)
	assert.Contains(t, out, "3 cells")

	lib, err := gds.OpenGDS(path)
	require.NoError(t, err)
	assert.Len(t, lib.Cells(), 3)
}

func TestResizeCommand(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.gds")
	outPath := filepath.Join(dir, "out.gds")

	lib := gds.NewLibrary("mask")
	c, err := lib.NewCell("TOP")
	require.NoError(t, err)
	c.Add(gds.Rectangle(gds.Pt(0, 0), gds.Pt(10, 10), 1))
	require.NoError(t, lib.SaveGDS(in))

	_, err = runCommand(t, "resize", "-i", in, "-o", outPath, "-m", "1.5")
	require.NoError(t, err)

	got, err := gds.OpenGDS(outPath)
	require.NoError(t, err)
	top, err := got.TopLevel()
	require.NoError(t, err)
	require.Len(t, top.Polygons(), 1)
	assert.Equal(t, gds.DefaultResizeLayer, top.Polygons()[0].Layer)
	assert.InDelta(t, 13.0, top.Polygons()[0].Bounds().Width(), 1e-9)
}

func TestImg2GDSCommand_BadThreshold(t *testing.T) {
	_, err := runCommand(t, "img2gds", "-i", "in.png", "-o", "out.gds", "-t", "300")
	assert.Error(t, err)
}

func TestSVGCommand(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.gds")
	outPath := filepath.Join(dir, "out.svg")

	lib := gds.NewLibrary("chip")
	c, err := lib.NewCell("TOP")
	require.NoError(t, err)
	c.Add(gds.Rectangle(gds.Pt(0, 0), gds.Pt(4, 4), 1))
	require.NoError(t, lib.SaveGDS(in))

	_, err = runCommand(t, "svg", "-i", in, "-o", outPath)
	require.NoError(t, err)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<svg ")
}
