// Copyright 2025 Shutterdesk Inc.
// SPDX-License-Identifier: AGPL-3.0

package main

import (
	"github.com/shutterdesk/inspection-service/cmd"
)

func main() {
	cmd.Execute()
}
