// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package ocp2aks

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/Azure/ocp2aks/assets"
	"github.com/Azure/ocp2aks/convert"
	"github.com/Azure/ocp2aks/internal/processor"
	"github.com/Azure/ocp2aks/internal/report"
	mapset "github.com/deckarep/golang-set/v2"
	"github.com/google/uuid"
	"github.com/phuslu/log"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

const (
	// directoryPermissions is the permission to use when creating directories.
	directoryPermissions = 0o755
	// filePermissions is the permission to use when writing files.
	filePermissions = 0o644
	// yamlIndent is the indent used when encoding output documents.
	yamlIndent = 2
)

// Converter is the structure that gets built from the source manifests.
// Do not create this directly, use NewConverter instead.
type Converter struct {
	Options *ConverterOptions

	runID            string
	logger           *log.Logger
	outputs          []*OutputFile
	warnings         []string
	summary          report.Summary
	passthroughKinds mapset.Set[string]
	mu               sync.RWMutex // mu protects outputs, warnings and summary during parallel conversion
}

// OutputFile is the converted form of one source manifest file.
type OutputFile struct {
	SourcePath string // path of the source file within its fs.FS
	Name       string // mapped output file name, e.g. deployment.yaml
	Documents  []any  // converted documents in source order
}

// NewConverter returns a new instance of the ocp2aks converter.
// Passing nil options uses the defaults with environment overrides.
func NewConverter(opts *ConverterOptions) *Converter {
	if opts == nil {
		opts = NewConverterOptions()
	}
	return &Converter{
		Options:          opts,
		runID:            uuid.NewString(),
		logger:           &log.DefaultLogger,
		outputs:          make([]*OutputFile, 0),
		warnings:         make([]string, 0),
		passthroughKinds: mapset.NewSet[string](),
	}
}

// SetLogger replaces the converter's logger. A nil logger is ignored.
func (c *Converter) SetLogger(l *log.Logger) {
	if l != nil {
		c.logger = l
	}
}

// RunID returns the unique identifier of this conversion run, as recorded in
// the transformation report.
func (c *Converter) RunID() string {
	return c.runID
}

// Summary returns a copy of the conversion counters.
func (c *Converter) Summary() report.Summary {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.summary
}

// Warnings returns a copy of the warnings collected so far.
func (c *Converter) Warnings() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.warnings)
}

// Outputs returns the converted files in source walk order.
func (c *Converter) Outputs() []*OutputFile {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.outputs)
}

// Convert processes source manifest trees, supplied as fs.FS interfaces.
// These are typically os.DirFS values or the result of SourceReference.Fetch.
// It populates the converter with the converted documents, counters and
// warnings; WriteOutputs and Report expose the results.
func (c *Converter) Convert(ctx context.Context, libs ...fs.FS) error {
	if c.Options == nil || c.Options.Parallelism == 0 {
		return errors.New("ocp2aks: converter options not set or parallelism is 0")
	}
	if err := c.Options.Validate(); err != nil {
		return err
	}

	for _, lib := range libs {
		res := processor.NewResult()
		pc := processor.NewClient(lib)
		if err := pc.Process(res); err != nil {
			return fmt.Errorf("ocp2aks: error processing source %v: %w", lib, err)
		}

		c.mu.Lock()
		c.warnings = append(c.warnings, res.Warnings...)
		c.mu.Unlock()

		if err := c.convertResult(ctx, res); err != nil {
			return err
		}
	}
	return nil
}

// convertResult converts the files of one processed source tree, fanning out
// per file while keeping the output in walk order.
func (c *Converter) convertResult(ctx context.Context, res *processor.Result) error {
	grp, _ := errgroup.WithContext(ctx)
	grp.SetLimit(c.Options.Parallelism)

	outputs := make([]*OutputFile, len(res.Files))
	for i, file := range res.Files {
		i, file := i, file
		grp.Go(func() error {
			out, err := c.convertFile(file)
			if err != nil {
				return err
			}
			outputs[i] = out
			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	for _, out := range outputs {
		if out == nil {
			continue
		}
		c.outputs = append(c.outputs, out)
	}
	return nil
}

// convertFile converts the documents of one source file.
// Files whose documents all get skipped produce no output file.
func (c *Converter) convertFile(file *processor.SourceFile) (*OutputFile, error) {
	copts := c.Options.convertOptions()
	docs := make([]any, 0, len(file.Documents))

	for _, doc := range file.Documents {
		switch doc.Kind {
		case assets.DeploymentConfigKind:
			d, err := convert.Deployment(doc.DeploymentConfig, copts)
			if err != nil {
				return nil, fmt.Errorf("ocp2aks: error converting %s: %w", file.Path, err)
			}
			docs = append(docs, d)
			c.count(func(s *report.Summary) {
				s.DeploymentConfigsConverted++
				s.TotalConverted++
			})

		case assets.RouteKind:
			ing, err := convert.Ingress(doc.Route, copts)
			if err != nil {
				return nil, fmt.Errorf("ocp2aks: error converting %s: %w", file.Path, err)
			}
			docs = append(docs, ing)
			c.count(func(s *report.Summary) {
				s.RoutesConverted++
				s.TotalConverted++
			})

		case assets.BuildConfigKind:
			warning := convert.BuildConfigWarning(doc.Manifest, c.Options.ImageRegistry)
			c.mu.Lock()
			c.summary.BuildConfigsSkipped++
			c.warnings = append(c.warnings, warning)
			c.mu.Unlock()
			c.logger.Warn().
				Str("source", file.Path).
				Str("name", doc.Name()).
				Msg("buildconfig skipped")

		default:
			docs = append(docs, convert.Passthrough(doc.Manifest))
			c.passthroughKinds.Add(doc.Kind)
			c.count(func(s *report.Summary) {
				s.OtherPassedThrough++
			})
		}
	}

	if len(docs) == 0 {
		return nil, nil
	}
	c.logger.Debug().
		Str("source", file.Path).
		Int("documents", len(docs)).
		Msg("converted file")
	return &OutputFile{
		SourcePath: file.Path,
		Name:       mapOutputFilename(file.Path, docs),
		Documents:  docs,
	}, nil
}

func (c *Converter) count(fn func(*report.Summary)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fn(&c.summary)
}

// mapOutputFilename maps source filenames to their AKS equivalents based on
// the converted resource kinds: a file that produced a Deployment becomes
// deployment.yaml, an Ingress becomes ingress.yaml, everything else keeps its
// name with a .yaml suffix.
func mapOutputFilename(path string, docs []any) string {
	kinds := mapset.NewThreadUnsafeSet[string]()
	for _, d := range docs {
		switch d.(type) {
		case *assets.Deployment:
			kinds.Add(assets.DeploymentKind)
		case *assets.Ingress:
			kinds.Add(assets.IngressKind)
		}
	}

	base := filepath.Base(path)
	lower := strings.ToLower(base)
	switch {
	case kinds.Contains(assets.DeploymentKind) || strings.Contains(lower, "deploymentconfig"):
		return "deployment.yaml"
	case kinds.Contains(assets.IngressKind) || strings.Contains(lower, "route"):
		return "ingress.yaml"
	}
	return strings.TrimSuffix(base, filepath.Ext(base)) + ".yaml"
}

// WriteOutputs writes the converted manifests below dir, preserving each
// source file's relative directory. An empty dir uses Options.OutputDir.
// Existing destination files are an error unless Options.Overwrite is set.
func (c *Converter) WriteOutputs(dir string) error {
	if dir == "" {
		dir = c.Options.OutputDir
	}
	if err := os.MkdirAll(dir, directoryPermissions); err != nil {
		return fmt.Errorf("ocp2aks: error creating output directory: %w", err)
	}

	for _, out := range c.Outputs() {
		destDir := filepath.Join(dir, filepath.Dir(filepath.FromSlash(out.SourcePath)))
		if err := os.MkdirAll(destDir, directoryPermissions); err != nil {
			return fmt.Errorf("ocp2aks: error creating output directory: %w", err)
		}
		dest := filepath.Join(destDir, out.Name)
		if _, err := os.Stat(dest); err == nil && !c.Options.Overwrite {
			return fmt.Errorf("ocp2aks: destination file already exists and overwrite not set: `%s`", dest)
		}

		data, err := encodeDocuments(out.Documents)
		if err != nil {
			return fmt.Errorf("ocp2aks: error encoding %s: %w", out.SourcePath, err)
		}
		if err := os.WriteFile(dest, data, filePermissions); err != nil {
			return fmt.Errorf("ocp2aks: error writing %s: %w", dest, err)
		}
		c.logger.Info().
			Str("source", out.SourcePath).
			Str("dest", dest).
			Msg("wrote converted manifests")
	}
	return nil
}

// encodeDocuments encodes the documents as a multi-document YAML stream.
func encodeDocuments(docs []any) ([]byte, error) {
	var buf strings.Builder
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(yamlIndent)
	for _, d := range docs {
		if err := enc.Encode(d); err != nil {
			enc.Close() // nolint: errcheck
			return nil, err
		}
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return []byte(buf.String()), nil
}

// Report renders the Markdown transformation report to w.
func (c *Converter) Report(w io.Writer) error {
	return report.Render(w, c.reportData())
}

// WriteReport writes the transformation report next to the output directory.
func (c *Converter) WriteReport() error {
	path := report.PathFor(c.Options.OutputDir)
	if err := os.MkdirAll(filepath.Dir(path), directoryPermissions); err != nil {
		return fmt.Errorf("ocp2aks: error creating report directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("ocp2aks: error creating report file: %w", err)
	}
	defer f.Close() // nolint: errcheck
	c.logger.Info().Str("path", path).Msg("writing report")
	return c.Report(f)
}

func (c *Converter) reportData() *report.Data {
	c.mu.RLock()
	defer c.mu.RUnlock()

	warnings := slices.Clone(c.warnings)
	if kinds := c.passthroughKinds.ToSlice(); len(kinds) > 0 {
		slices.Sort(kinds)
		warnings = append(warnings, "Passed through kinds: "+strings.Join(kinds, ", "))
	}

	return &report.Data{
		RunID:         c.runID,
		SourceDir:     c.Options.SourceDir,
		OutputDir:     c.Options.OutputDir,
		IngressClass:  c.Options.IngressClass,
		TLSSecret:     c.Options.TLSSecret,
		ImageRegistry: c.Options.ImageRegistry,
		RepoPrefix:    c.Options.RepoPrefix,
		Summary:       c.summary,
		Warnings:      warnings,
	}
}
