package app_test

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/iconsync/internal/adapters/fs"
	"go.trai.ch/iconsync/internal/adapters/svg"
	"go.trai.ch/iconsync/internal/adapters/telemetry"
	"go.trai.ch/iconsync/internal/adapters/telemetry/progrock"
	"go.trai.ch/iconsync/internal/adapters/webp"
	"go.trai.ch/iconsync/internal/app"
	"go.trai.ch/iconsync/internal/core/domain"
	"go.trai.ch/iconsync/internal/core/ports/mocks"
	"go.trai.ch/iconsync/internal/engine/synchronizer"
	"go.uber.org/mock/gomock"
)

const icon = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24">
  <circle cx="12" cy="12" r="10" fill="#336699"/>
</svg>`

type harness struct {
	root      string
	loader    *mocks.MockConfigLoader
	logger    *mocks.MockLogger
	telemetry *mocks.MockTelemetry
	out       *bytes.Buffer
	app       *app.App
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	ctrl := gomock.NewController(t)
	h := &harness{
		root:      t.TempDir(),
		loader:    mocks.NewMockConfigLoader(ctrl),
		logger:    mocks.NewMockLogger(ctrl),
		telemetry: mocks.NewMockTelemetry(ctrl),
		out:       new(bytes.Buffer),
	}

	engine := synchronizer.New(
		fs.NewWorkspace(fs.NewWalker(), fs.NewVerifier(), fs.NewRenamer(), fs.NewHasher()),
		svg.NewRasterizer(),
		webp.NewTranscoder(),
		telemetry.NewNoOpRecorder(),
	)
	h.app = app.New(h.loader, engine, h.logger, h.telemetry).WithOutput(h.out)
	return h
}

func (h *harness) write(t *testing.T, data []byte, parts ...string) {
	t.Helper()
	p := filepath.Join(append([]string{h.root}, parts...)...)
	require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o750))
	require.NoError(t, os.WriteFile(p, data, 0o600))
}

func (h *harness) run(t *testing.T) error {
	t.Helper()
	h.out.Reset()
	return h.app.Run(context.Background(), app.RunOptions{Root: h.root})
}

func pngBytes(t *testing.T) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	img.Set(1, 1, color.NRGBA{R: 255, A: 255})
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestApp_Run(t *testing.T) {
	h := newHarness(t)
	h.write(t, []byte(icon), "svg", "My Icon.svg")
	h.write(t, []byte("stale"), "webp", "leftover-icon.webp")
	h.write(t, pngBytes(t), "png", "legacy.png")

	h.loader.EXPECT().Load(h.root, "").Return(domain.DefaultSettings(), nil).Times(2)
	h.telemetry.EXPECT().Close().Return(nil).Times(2)

	require.NoError(t, h.run(t))

	assert.FileExists(t, filepath.Join(h.root, "svg", "my-icon.svg"))
	assert.FileExists(t, filepath.Join(h.root, "png", "my-icon.png"))
	assert.FileExists(t, filepath.Join(h.root, "webp", "my-icon.webp"))
	assert.FileExists(t, filepath.Join(h.root, "png", "legacy.png"))
	assert.FileExists(t, filepath.Join(h.root, "webp", "legacy.webp"))
	assert.NoFileExists(t, filepath.Join(h.root, "webp", "leftover-icon.webp"))

	out := h.out.String()
	assert.Contains(t, out, "Renamed: ")
	assert.Contains(t, out, "Converted 1 PNGs and 2 WEBPs out of 1 icons.")
	assert.Contains(t, out, "Removed 0 PNGs and 1 WEBPs.")
	assert.Contains(t, out, "PNG-only icons (no SVG available):\n- legacy\n")

	// Nothing changed since the first run.
	require.NoError(t, h.run(t))
	assert.Contains(t, h.out.String(), "All icons are already up-to-date.")
}

func TestApp_Run_FailuresAreNotFatal(t *testing.T) {
	h := newHarness(t)
	h.write(t, []byte("<svg"), "svg", "broken.svg")

	h.loader.EXPECT().Load(h.root, "").Return(domain.DefaultSettings(), nil)
	h.telemetry.EXPECT().Close().Return(nil)
	h.logger.EXPECT().Warn("1 files failed to convert")

	require.NoError(t, h.run(t))
	assert.Contains(t, h.out.String(), "The following files failed to convert:\n"+
		filepath.Join(h.root, "svg", "broken.svg")+"\n")
}

func TestApp_Run_CustomSettings(t *testing.T) {
	h := newHarness(t)
	h.write(t, []byte(icon), "vectors", "star.svg")

	settings := domain.DefaultSettings()
	settings.VectorDir = "vectors"
	settings.Height = 32

	h.loader.EXPECT().Load(h.root, "custom.yaml").Return(settings, nil)
	h.telemetry.EXPECT().Close().Return(nil)

	err := h.app.Run(context.Background(), app.RunOptions{Root: h.root, ConfigPath: "custom.yaml"})
	require.NoError(t, err)

	f, err := os.Open(filepath.Join(h.root, "png", "star.png"))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	cfg, err := png.DecodeConfig(f)
	require.NoError(t, err)
	assert.Equal(t, 32, cfg.Height)
	assert.Equal(t, 32, cfg.Width)
}

func TestApp_Run_ConfigError(t *testing.T) {
	h := newHarness(t)

	h.loader.EXPECT().Load(h.root, "").Return(domain.Settings{}, errors.New("yaml: line 1"))
	h.telemetry.EXPECT().Close().Return(nil)

	err := h.run(t)
	require.ErrorContains(t, err, "failed to load configuration")
	require.ErrorContains(t, err, "yaml: line 1")
	assert.Empty(t, h.out.String())
}

func TestApp_Run_FatalEngineError(t *testing.T) {
	h := newHarness(t)
	// A file where a directory is expected cannot be prepared.
	h.write(t, []byte("not a directory"), "png")

	h.loader.EXPECT().Load(h.root, "").Return(domain.DefaultSettings(), nil)
	h.telemetry.EXPECT().Close().Return(nil)

	err := h.run(t)
	require.ErrorContains(t, err, "synchronization failed")
}

func TestApp_Run_TelemetryCloseError(t *testing.T) {
	h := newHarness(t)

	h.loader.EXPECT().Load(h.root, "").Return(domain.DefaultSettings(), nil)
	h.telemetry.EXPECT().Close().Return(errors.New("tape closed"))

	err := h.run(t)
	require.ErrorContains(t, err, "failed to close telemetry")
}

func TestApp_Run_VerboseListsSteps(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	ctrl := gomock.NewController(t)

	root := t.TempDir()
	loader := mocks.NewMockConfigLoader(ctrl)
	logger := mocks.NewMockLogger(ctrl)
	recorder := progrock.New()

	engine := synchronizer.New(
		fs.NewWorkspace(fs.NewWalker(), fs.NewVerifier(), fs.NewRenamer(), fs.NewHasher()),
		svg.NewRasterizer(),
		webp.NewTranscoder(),
		recorder,
	)
	out := new(bytes.Buffer)
	a := app.New(loader, engine, logger, recorder).WithOutput(out)

	h := &harness{root: root}
	h.write(t, []byte("<svg"), "svg", "broken.svg")
	h.write(t, pngBytes(t), "png", "legacy.png")
	h.write(t, pngBytes(t), "png", "kept.png")
	h.write(t, []byte("existing"), "webp", "kept.webp")

	loader.EXPECT().Load(root, "").Return(domain.DefaultSettings(), nil)
	logger.EXPECT().Warn("1 files failed to convert")

	require.NoError(t, a.Run(context.Background(), app.RunOptions{Root: root, Verbose: true}))

	got := out.String()
	assert.Contains(t, got, "Conversion steps:\n")
	assert.Regexp(t, `failed  png:broken: .+\n`, got)
	assert.Contains(t, got, "cached  webp:kept\n")
	assert.Contains(t, got, "done    webp:legacy\n")
}

func TestApp_Run_StepsHiddenByDefault(t *testing.T) {
	h := newHarness(t)

	h.loader.EXPECT().Load(h.root, "").Return(domain.DefaultSettings(), nil)
	h.telemetry.EXPECT().Close().Return(nil)

	require.NoError(t, h.run(t))
	assert.NotContains(t, h.out.String(), "Conversion steps")
}
