// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package ocp2aks

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/Azure/ocp2aks/internal/environment"
	"github.com/hashicorp/go-getter/v2"
)

// SourceReference is a source tree of OpenShift manifests.
// It can be a local directory or any go-getter URL (git, http, s3, ...).
type SourceReference interface {
	// Fetch makes the source available locally and returns it as an fs.FS.
	// destinationDirectory is relative to the ocp2aks base dir and is only
	// used by remote sources.
	Fetch(ctx context.Context, destinationDirectory string) (fs.FS, error)

	// String returns the path or URL of the source.
	String() string
}

var _ SourceReference = (*LocalSource)(nil)
var _ SourceReference = (*RemoteSource)(nil)

// LocalSource is a source tree in a local directory.
type LocalSource struct {
	path string
}

// NewLocalSource returns a SourceReference for a local directory.
func NewLocalSource(path string) *LocalSource {
	return &LocalSource{
		path: path,
	}
}

// Fetch verifies the directory exists and returns it as an fs.FS.
func (s *LocalSource) Fetch(_ context.Context, _ string) (fs.FS, error) {
	info, err := os.Stat(s.path)
	if err != nil {
		return nil, fmt.Errorf("ocp2aks: could not fetch source `%s`: %w", s.path, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("ocp2aks: could not fetch source `%s`: not a directory", s.path)
	}
	return os.DirFS(s.path), nil
}

// String returns the directory path.
func (s *LocalSource) String() string {
	return s.path
}

// RemoteSource is a source tree addressed by a go-getter URL.
type RemoteSource struct {
	url string
}

// NewRemoteSource returns a SourceReference for a go-getter URL.
func NewRemoteSource(url string) *RemoteSource {
	return &RemoteSource{
		url: url,
	}
}

// Fetch downloads the source into the ocp2aks base dir and returns it as an fs.FS.
func (s *RemoteSource) Fetch(ctx context.Context, destinationDirectory string) (fs.FS, error) {
	dst := filepath.Join(environment.BaseDir(), destinationDirectory)
	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("ocp2aks: could not determine working directory: %w", err)
	}
	client := getter.Client{}
	req := &getter.Request{
		Src: s.url,
		Dst: dst,
		Pwd: wd,
	}
	res, err := client.Get(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("ocp2aks: could not fetch source `%s`: %w", s.url, err)
	}
	return os.DirFS(res.Dst), nil
}

// String returns the go-getter URL.
func (s *RemoteSource) String() string {
	return s.url
}

// NewSourceReference returns a LocalSource when src is an existing local
// directory, otherwise a RemoteSource for the go-getter URL.
func NewSourceReference(src string) SourceReference {
	if info, err := os.Stat(src); err == nil && info.IsDir() {
		return NewLocalSource(src)
	}
	return NewRemoteSource(src)
}
