/*
 *  main.go
 *  cmd
 *
 *  Created by Haibao Tang on 10/18/26
 *  Copyright © 2026 Haibao Tang. All rights reserved.
 */

package main

import (
	"os"

	logging "github.com/op/go-logging"
	"github.com/tanghaibao/hgtbench"
)

var log = logging.MustGetLogger("main")

// main is the entrypoint for the entire program, routes to commands
func main() {
	hgtbench.SetLogLevel(logging.NOTICE)
	if err := hgtbench.Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}
