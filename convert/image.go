// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package convert

import "strings"

// latestTag is the placeholder tag for mapped images. Tag pinning is expected
// to happen in CD.
const latestTag = "latest"

// Image maps OpenShift ImageStream-like references to the target registry
// reference when an ImageRegistry override is configured.
//
// Rules:
//   - a reference that already looks fully qualified (contains a registry or
//     repository separator and a tag) is kept as-is;
//   - an ImageRegistry override that contains a tag is a complete image
//     reference and is used as-is;
//   - otherwise the image becomes ImageRegistry[/RepoPrefix]/<nameHint>:latest;
//   - with no override the original image is kept, or <repo>:latest when the
//     image was empty.
func Image(image, nameHint string, opts Options) string {
	if image != "" && strings.ContainsAny(image, "/.") && strings.Contains(image, ":") {
		return image
	}

	if opts.ImageRegistry != "" && strings.Contains(opts.ImageRegistry, ":") {
		return opts.ImageRegistry
	}

	repo := nameHint
	if opts.RepoPrefix != "" {
		repo = opts.RepoPrefix + "/" + repo
	}

	if opts.ImageRegistry != "" {
		return opts.ImageRegistry + "/" + repo + ":" + latestTag
	}
	if image != "" {
		return image
	}
	return repo + ":" + latestTag
}
