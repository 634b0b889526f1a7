// Package synchronizer implements the icon synchronization run.
package synchronizer

import (
	"context"
	"path/filepath"
	"strings"

	"go.trai.ch/iconsync/internal/core/domain"
	"go.trai.ch/iconsync/internal/core/ports"
	"go.trai.ch/zerr"
)

// Options tunes a single run.
type Options struct {
	// Height is the pixel height of rasterized vectors.
	Height int
	// FinalPolicy decides when an existing final raster is kept.
	FinalPolicy domain.CachePolicy
}

// OptionsFrom extracts the run options from settings.
func OptionsFrom(s domain.Settings) Options {
	return Options{Height: s.Height, FinalPolicy: s.FinalPolicy}
}

// Synchronizer keeps the raster directories consistent with the vector sources.
type Synchronizer struct {
	workspace  ports.Workspace
	rasterizer ports.Rasterizer
	transcoder ports.Transcoder
	telemetry  ports.Telemetry
}

// New creates a new Synchronizer.
func New(
	workspace ports.Workspace,
	rasterizer ports.Rasterizer,
	transcoder ports.Transcoder,
	telemetry ports.Telemetry,
) *Synchronizer {
	return &Synchronizer{
		workspace:  workspace,
		rasterizer: rasterizer,
		transcoder: transcoder,
		telemetry:  telemetry,
	}
}

// Run processes every vector source and vector-less intermediate raster in
// layout, prunes orphans and returns the accumulated report.
//
// Per-file failures are recorded in the report and never stop the run. The
// returned error is non-nil only for directory-level failures or when ctx is
// cancelled; the partial report is returned alongside it.
func (s *Synchronizer) Run(
	ctx context.Context,
	layout domain.Layout,
	opts Options,
	renderer ports.Renderer,
) (*domain.Report, error) {
	if opts.Height <= 0 {
		return nil, zerr.With(domain.ErrInvalidHeight, "height", opts.Height)
	}
	if !opts.FinalPolicy.Valid() {
		return nil, zerr.With(domain.ErrInvalidPolicy, "policy", string(opts.FinalPolicy))
	}

	if err := s.workspace.Prepare(layout.Dirs()); err != nil {
		return nil, err
	}

	state := &runState{
		Synchronizer: s,
		ctx:          ctx,
		layout:       layout,
		opts:         opts,
		renderer:     renderer,
		report:       &domain.Report{},
		valid:        domain.NewIdentitySet(),
	}

	for _, phase := range []func() error{
		state.processVectors,
		state.processVectorLess,
		state.pruneOrphans,
	} {
		if err := phase(); err != nil {
			return state.report, err
		}
	}

	return state.report, nil
}

// runState holds the mutable state of a single run.
type runState struct {
	*Synchronizer

	ctx      context.Context
	layout   domain.Layout
	opts     Options
	renderer ports.Renderer
	report   *domain.Report
	valid    domain.IdentitySet
}

// processVectors normalizes each vector source and derives both rasters from it.
func (r *runState) processVectors() error {
	sources, err := r.workspace.List(r.layout.VectorDir, domain.VectorExt)
	if err != nil {
		return zerr.Wrap(err, "failed to list vector sources")
	}

	for _, src := range sources {
		if err := r.ctx.Err(); err != nil {
			return err
		}
		r.report.TotalIcons++

		path, ok := r.normalize(src)
		if !ok {
			continue
		}

		id := domain.NewIdentity(stem(path))
		r.valid.Add(id)

		if r.toIntermediate(path, id) {
			r.toFinal(r.layout.IntermediatePath(id), id)
		}
	}
	return nil
}

// processVectorLess handles intermediate rasters that have no vector source.
func (r *runState) processVectorLess() error {
	rasters, err := r.workspace.List(r.layout.IntermediateDir, domain.IntermediateExt)
	if err != nil {
		return zerr.Wrap(err, "failed to list intermediate rasters")
	}

	for _, src := range rasters {
		if r.valid.Has(stem(src)) {
			continue
		}
		if err := r.ctx.Err(); err != nil {
			return err
		}

		path, ok := r.normalize(src)
		if !ok {
			continue
		}

		id := domain.NewIdentity(stem(path))
		r.valid.Add(id)
		r.report.VectorLess = append(r.report.VectorLess, id.String())

		r.toFinal(path, id)
	}
	return nil
}

// pruneOrphans deletes outputs whose identity is no longer live.
// Intermediate rasters also survive while a vector source of the same name
// exists, even if it could not be processed in this run.
func (r *runState) pruneOrphans() error {
	sources, err := r.workspace.List(r.layout.VectorDir, domain.VectorExt)
	if err != nil {
		return zerr.Wrap(err, "failed to list vector sources")
	}

	intermediateValid := r.valid.Union(domain.NewIdentitySet(stems(sources)...))
	removed, err := r.workspace.Prune(r.layout.IntermediateDir, intermediateValid)
	r.report.RemovedPNGs = append(r.report.RemovedPNGs, removed...)
	r.announceRemoved(removed)
	if err != nil {
		return err
	}

	removed, err = r.workspace.Prune(r.layout.FinalDir, r.valid)
	r.report.RemovedWEBPs = append(r.report.RemovedWEBPs, removed...)
	r.announceRemoved(removed)
	return err
}

// normalize renames src to its kebab-case name.
// On failure the source is recorded as failed and ok is false.
func (r *runState) normalize(src string) (string, bool) {
	path, err := r.workspace.Normalize(src)
	if err != nil {
		r.record(domain.Outcome{
			Stage:  domain.StageRename,
			Source: src,
			Status: domain.StatusFailed,
			Err:    err,
		})
		return "", false
	}

	if path != src {
		r.record(domain.Outcome{
			Stage:  domain.StageRename,
			ID:     domain.NewIdentity(stem(path)),
			Source: src,
			Target: path,
			Status: domain.StatusConverted,
		})
	}
	return path, true
}

// toIntermediate rasterizes src and writes the result when its digest differs
// from the existing output. It reports whether an up-to-date output exists.
func (r *runState) toIntermediate(src string, id domain.Identity) bool {
	target := r.layout.IntermediatePath(id)
	ctx, vertex := r.telemetry.Record(r.ctx, string(domain.StageIntermediate)+":"+id.String())

	data, err := r.rasterizer.Rasterize(ctx, src, r.opts.Height)
	if err != nil {
		r.fail(vertex, domain.StageIntermediate, id, src, target, err)
		return false
	}

	return r.write(vertex, domain.StageIntermediate, id, src, target, data)
}

// toFinal converts the intermediate raster src to the final format.
// Under CachePolicyExists an existing target is kept without comparing content.
func (r *runState) toFinal(src string, id domain.Identity) {
	target := r.layout.FinalPath(id)
	ctx, vertex := r.telemetry.Record(r.ctx, string(domain.StageFinal)+":"+id.String())

	img, err := r.transcoder.Decode(ctx, src)
	if err != nil {
		r.fail(vertex, domain.StageFinal, id, src, target, err)
		return
	}

	if r.opts.FinalPolicy == domain.CachePolicyExists {
		exists, err := r.workspace.Exists(target)
		if err != nil {
			r.fail(vertex, domain.StageFinal, id, src, target, err)
			return
		}
		if exists {
			r.upToDate(vertex, domain.StageFinal, id, src, target)
			return
		}
	}

	data, err := r.transcoder.Encode(ctx, img)
	if err != nil {
		r.fail(vertex, domain.StageFinal, id, src, target, err)
		return
	}

	r.write(vertex, domain.StageFinal, id, src, target, data)
}

// write stores data at target unless it is unchanged and reports whether the
// target now holds the expected content.
func (r *runState) write(
	vertex ports.Vertex,
	stage domain.Stage,
	id domain.Identity,
	src, target string,
	data []byte,
) bool {
	written, err := r.workspace.WriteIfChanged(target, data)
	if err != nil {
		r.fail(vertex, stage, id, src, target, err)
		return false
	}

	if !written {
		r.upToDate(vertex, stage, id, src, target)
		return true
	}

	size, err := r.workspace.Size(target)
	if err != nil {
		size = int64(len(data))
	}

	vertex.Complete(nil)
	r.record(domain.Outcome{
		Stage:  stage,
		ID:     id,
		Source: src,
		Target: target,
		Status: domain.StatusConverted,
		Size:   size,
	})
	return true
}

func (r *runState) upToDate(vertex ports.Vertex, stage domain.Stage, id domain.Identity, src, target string) {
	vertex.Cached()
	r.record(domain.Outcome{
		Stage:  stage,
		ID:     id,
		Source: src,
		Target: target,
		Status: domain.StatusUpToDate,
	})
}

func (r *runState) fail(vertex ports.Vertex, stage domain.Stage, id domain.Identity, src, target string, err error) {
	vertex.Log(domain.LogLevelError, err.Error())
	vertex.Complete(err)
	r.record(domain.Outcome{
		Stage:  stage,
		ID:     id,
		Source: src,
		Target: target,
		Status: domain.StatusFailed,
		Err:    err,
	})
}

func (r *runState) record(o domain.Outcome) {
	r.report.Record(o)
	r.renderer.Outcome(o)
}

func (r *runState) announceRemoved(paths []string) {
	for _, p := range paths {
		r.renderer.Removed(p)
	}
}

func stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func stems(paths []string) []string {
	out := make([]string, len(paths))
	for i, p := range paths {
		out[i] = stem(p)
	}
	return out
}
