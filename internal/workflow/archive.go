package workflow

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

const (
	contentTypeCSV = "text/csv"
	contentTypePDF = "application/pdf"
)

type artifact struct {
	path        string
	key         []string
	contentType string
}

// archive uploads the report and acknowledgments under the run ID with
// bounded concurrency. Upload failures are logged and counted; they never
// fail the run. Returns the number of artifacts uploaded.
func archive(ctx context.Context, rt *Runtime, result *Result) int {
	if rt.Storage == nil {
		return 0
	}

	if err := rt.Storage.EnsureContainer(ctx); err != nil {
		rt.Logger.ErrorContext(ctx, "archive skipped", "error", err)
		return 0
	}

	run := rt.RunID.String()
	artifacts := make([]artifact, 0, len(result.Documents)+1)
	if result.Report != "" {
		artifacts = append(artifacts, artifact{
			path:        result.Report,
			key:         []string{run, filepath.Base(result.Report)},
			contentType: contentTypeCSV,
		})
	}
	for _, doc := range result.Documents {
		artifacts = append(artifacts, artifact{
			path:        doc,
			key:         []string{run, "acknowledgments", filepath.Base(doc)},
			contentType: contentTypePDF,
		})
	}

	var uploaded atomic.Int64

	var g errgroup.Group
	g.SetLimit(max(rt.Config.Storage.MaxUploads, 1))

	for _, a := range artifacts {
		g.Go(func() error {
			err := upload(ctx, rt, a)
			rt.Metrics.Upload(err == nil)
			if err != nil {
				rt.Logger.ErrorContext(ctx, "archive upload failed", "path", a.path, "error", err)
				return nil
			}
			uploaded.Add(1)
			return nil
		})
	}
	g.Wait()

	n := int(uploaded.Load())
	rt.Logger.InfoContext(ctx, "archive complete", "uploaded", n, "total", len(artifacts))
	rt.emit(Event{Kind: EventArchived, Index: n, Total: len(artifacts)})
	return n
}

func upload(ctx context.Context, rt *Runtime, a artifact) error {
	key, err := rt.Storage.Key(a.key...)
	if err != nil {
		return err
	}

	f, err := os.Open(a.path)
	if err != nil {
		return err
	}
	defer f.Close()

	return rt.Storage.Upload(ctx, key, f, a.contentType)
}
