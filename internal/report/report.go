// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package report renders the Markdown transformation report that summarizes a
// conversion run: the effective configuration, per-kind counters and any
// warnings collected along the way.
package report

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strconv"

	"github.com/nao1215/markdown"
)

// DefaultFilename is the name of the report file written next to the output
// directory.
const DefaultFilename = "transform-report.md"

// ErrReportGenerationFailed is returned when the Markdown report could not be built.
var ErrReportGenerationFailed = fmt.Errorf("failed to generate transformation report")

// Summary holds the conversion counters.
// TotalConverted counts DeploymentConfig and Route conversions only;
// passthrough resources are reported separately and intentionally excluded.
type Summary struct {
	DeploymentConfigsConverted int
	RoutesConverted            int
	BuildConfigsSkipped        int
	OtherPassedThrough         int
	TotalConverted             int
}

// Data is everything the report needs from a conversion run.
type Data struct {
	RunID         string
	SourceDir     string
	OutputDir     string
	IngressClass  string
	TLSSecret     string
	ImageRegistry string
	RepoPrefix    string
	Summary       Summary
	Warnings      []string
}

// PathFor returns the report path for an output directory: the report is
// written as a sibling of the output directory, not inside it.
func PathFor(outputDir string) string {
	return filepath.Join(filepath.Dir(filepath.Clean(outputDir)), DefaultFilename)
}

// Render writes the Markdown formatted transformation report.
// The field order and labels are stable, they are the reporting contract of
// the tool.
func Render(w io.Writer, d *Data) error {
	md := markdown.NewMarkdown(w)

	md = reportTitle(md, d)
	md = reportSummary(md, d.Summary)
	md = reportWarnings(md, d.Warnings)

	if err := md.Build(); err != nil {
		return errors.Join(ErrReportGenerationFailed, err)
	}
	return nil
}

func reportTitle(md *markdown.Markdown, d *Data) *markdown.Markdown {
	md = md.H1("OpenShift → AKS Transformation Report").LF()

	items := make([]string, 0, 6)
	if d.RunID != "" {
		items = append(items, "Run ID: "+markdown.Code(d.RunID))
	}
	items = append(items,
		"Source dir: "+markdown.Code(d.SourceDir),
		"Output dir: "+markdown.Code(d.OutputDir),
		"Ingress class: "+markdown.Code(d.IngressClass),
	)
	if d.TLSSecret != "" {
		items = append(items, "TLS secret: "+markdown.Code(d.TLSSecret))
	}
	if d.ImageRegistry != "" {
		items = append(items, "Image registry override: "+markdown.Code(d.ImageRegistry))
	}
	if d.RepoPrefix != "" {
		items = append(items, "Repo prefix: "+markdown.Code(d.RepoPrefix))
	}

	return md.BulletList(items...).LF()
}

func reportSummary(md *markdown.Markdown, s Summary) *markdown.Markdown {
	return md.H2("Summary").LF().
		BulletList(
			"DeploymentConfigs converted: "+markdown.Bold(strconv.Itoa(s.DeploymentConfigsConverted)),
			"Routes converted: "+markdown.Bold(strconv.Itoa(s.RoutesConverted)),
			"BuildConfigs skipped (see notes): "+markdown.Bold(strconv.Itoa(s.BuildConfigsSkipped)),
			"Other resources passed through: "+markdown.Bold(strconv.Itoa(s.OtherPassedThrough)),
			"Total converted: "+markdown.Bold(strconv.Itoa(s.TotalConverted)),
		).LF()
}

func reportWarnings(md *markdown.Markdown, warnings []string) *markdown.Markdown {
	if len(warnings) == 0 {
		return md
	}
	return md.H2("Warnings / Notes").LF().
		BulletList(warnings...).LF()
}
