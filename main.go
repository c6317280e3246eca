// Copyright © 2025 Gridiron FC <dev@gridironfc.com>.
// See LICENSE.txt for details.

package main

import (
	"os"

	"github.com/gridironfc/signup/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
