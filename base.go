/*
 *  base.go
 *  hgtbench
 *
 *  Created by Haibao Tang on 10/18/26
 *  Copyright © 2026 Haibao Tang. All rights reserved.
 */

package hgtbench

import (
	"os"
	"strconv"

	logging "github.com/op/go-logging"
	"github.com/shenwei356/xopen"
)

const (
	// Version is the current version of hgtbench
	Version = "0.2.0"
	// NaN is printed when a tool log carries no count
	NaN = "NaN"
	// MaxPhylipID is the longest sequence id strict PHYLIP readers accept
	MaxPhylipID = 10
)

var log = logging.MustGetLogger("hgtbench")
var format = logging.MustStringFormatter(
	`%{color}%{time:15:04:05} %{shortfunc} | %{level:.6s} %{color:reset} %{message}`,
)

// Backend is the default stderr output
var Backend = logging.NewLogBackend(os.Stderr, "", 0)

// BackendFormatter contains the fancy debug formatter
var BackendFormatter = logging.NewBackendFormatter(Backend, format)

// SetLogLevel wires the formatter and sets the level for the hgtbench logger
func SetLogLevel(level logging.Level) {
	leveled := logging.AddModuleLevel(BackendFormatter)
	leveled.SetLevel(level, "")
	logging.SetBackend(leveled)
}

// formatFloat prints the shortest representation of a float
func formatFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', -1, 64)
}

// mustExist checks that the file exists, returns ErrMissingInput otherwise
func mustExist(filename string) error {
	if _, err := os.Stat(filename); err != nil {
		return wrapf(ErrMissingInput, "cannot access `%s` (%s)", filename, err)
	}
	return nil
}

// openInput opens a (possibly gzipped) text file for reading
func openInput(filename string) (*xopen.Reader, error) {
	if err := mustExist(filename); err != nil {
		return nil, err
	}
	return xopen.Ropen(filename)
}

// writeOutput writes the full contents into filename
func writeOutput(filename, contents string) error {
	w, err := xopen.Wopen(filename)
	if err != nil {
		return err
	}
	if _, err = w.WriteString(contents); err != nil {
		w.Close()
		return err
	}
	return w.Close()
}
