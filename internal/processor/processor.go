// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package processor scans a source tree of Kubernetes/OpenShift manifests,
// splits multi-document YAML files and classifies each document by kind so
// that the converter can transform them.
package processor

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"slices"
	"strings"

	"github.com/Azure/ocp2aks/assets"
)

var supportedFileTypes = []string{".json", ".yaml", ".yml"}

var (
	// ErrUnmarshaling is returned when converting data from YAML/JSON fails.
	ErrUnmarshaling = errors.New("error converting data from YAML/JSON, please check the file format and content")

	// ErrProcessingFile is returned when there is an error processing the file.
	ErrProcessingFile = errors.New("error processing file, please check the file format and content")

	// ErrUnsupportedExtension is returned when a file extension is not one of json, yaml or yml.
	ErrUnsupportedExtension = errors.New("unsupported file extension")
)

// NewErrorUnmarshaling creates a new error indicating that unmarshaling failed.
func NewErrorUnmarshaling(detail string) error {
	return fmt.Errorf("%w: %s", ErrUnmarshaling, detail)
}

// NewErrProcessingFile creates a new error indicating that processing a file failed.
func NewErrProcessingFile(path string, err error) error {
	return fmt.Errorf("%w: %s: %s", ErrProcessingFile, path, err)
}

// Document is a single classified document from a source file.
// Exactly one of the typed fields is set, selected by Kind.
type Document struct {
	Kind             string
	DeploymentConfig *assets.DeploymentConfig // set when Kind is DeploymentConfig
	Route            *assets.Route            // set when Kind is Route
	Manifest         *assets.Manifest         // set for BuildConfig and passthrough kinds
}

// Name returns the metadata name of the document, whichever typed field is set.
func (d *Document) Name() string {
	switch {
	case d.DeploymentConfig != nil:
		return d.DeploymentConfig.Name()
	case d.Route != nil:
		return d.Route.Name()
	case d.Manifest != nil:
		return d.Manifest.Name()
	}
	return ""
}

// Namespace returns the metadata namespace of the document, or an empty string.
func (d *Document) Namespace() string {
	switch {
	case d.DeploymentConfig != nil && d.DeploymentConfig.Metadata != nil:
		return d.DeploymentConfig.Metadata.Namespace
	case d.Route != nil && d.Route.Metadata != nil:
		return d.Route.Metadata.Namespace
	case d.Manifest != nil:
		return d.Manifest.Namespace()
	}
	return ""
}

// SourceFile is an ordered list of classified documents from one manifest file.
type SourceFile struct {
	Path      string
	Documents []*Document
}

// Result is the structure that gets built by scanning the source files.
// Files are in walk order, documents in file order. Parse failures do not
// abort the scan, they are recorded as warnings.
type Result struct {
	Files    []*SourceFile
	Warnings []string
}

// NewResult creates a new empty Result.
func NewResult() *Result {
	return &Result{
		Files:    make([]*SourceFile, 0),
		Warnings: make([]string, 0),
	}
}

// Client is the client that is used to process the source files.
type Client struct {
	fs fs.FS
}

// NewClient creates a new processor client over the supplied file system.
func NewClient(fs fs.FS) *Client {
	return &Client{
		fs: fs,
	}
}

// Process walks the source file system and populates the result with the
// classified documents of every manifest file.
func (c *Client) Process(res *Result) error {
	return fs.WalkDir(c.fs, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("processor.Client.Process: error walking directory %s: %w", path, err)
		}
		if d.IsDir() {
			return nil
		}
		if !slices.Contains(supportedFileTypes, strings.ToLower(filepath.Ext(path))) {
			return nil
		}
		data, err := fs.ReadFile(c.fs, path)
		if err != nil {
			return fmt.Errorf("processor.Client.Process: error reading file %s: %w", path, err)
		}
		return c.processFile(res, path, data)
	})
}

// processFile splits the file into documents and classifies each one.
// A file that cannot be parsed is recorded as a warning and skipped.
func (c *Client) processFile(res *Result, path string, data []byte) error {
	unmar := newUnmarshaler(data, filepath.Ext(path))
	nodes, err := unmar.documents()
	if err != nil {
		if errors.Is(err, ErrUnsupportedExtension) {
			return err
		}
		res.Warnings = append(res.Warnings, fmt.Sprintf("Failed to parse %s: %v", path, err))
		return nil
	}

	sf := &SourceFile{
		Path:      path,
		Documents: make([]*Document, 0, len(nodes)),
	}
	for _, node := range nodes {
		doc, err := classifyDocument(node)
		if err != nil {
			res.Warnings = append(res.Warnings, fmt.Sprintf("Failed to parse %s: %v", path, err))
			continue
		}
		if doc == nil {
			continue
		}
		sf.Documents = append(sf.Documents, doc)
	}
	if len(sf.Documents) > 0 {
		res.Files = append(res.Files, sf)
	}
	return nil
}

// classifyDocument decodes the document into the typed asset matching its
// kind. Documents that are not mappings, or that have no kind, return nil.
func classifyDocument(node documentNode) (*Document, error) {
	if !node.isMapping() {
		return nil, nil
	}

	tm := new(assets.TypeMeta)
	if err := node.decode(tm); err != nil {
		return nil, NewErrorUnmarshaling(err.Error())
	}
	if tm.Kind == "" {
		return nil, nil
	}

	doc := &Document{Kind: tm.Kind}
	switch tm.Kind {
	case assets.DeploymentConfigKind:
		dc := new(assets.DeploymentConfig)
		if err := node.decode(dc); err != nil {
			return nil, NewErrorUnmarshaling(err.Error())
		}
		doc.DeploymentConfig = dc
	case assets.RouteKind:
		r := new(assets.Route)
		if err := node.decode(r); err != nil {
			return nil, NewErrorUnmarshaling(err.Error())
		}
		doc.Route = r
	default:
		m := new(assets.Manifest)
		if err := node.decode(m); err != nil {
			return nil, NewErrorUnmarshaling(err.Error())
		}
		doc.Manifest = m
	}
	return doc, nil
}
