// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package main

import "github.com/Azure/ocp2aks/cmd/ocp2aks/command"

func main() {
	command.Execute()
}
