// Copyright 2026 GharSwitch Authors
// SPDX-License-Identifier: AGPL-3.0

package main

import (
	"github.com/ketan14/GharSwitch/cmd"
)

func main() {
	cmd.Execute()
}
