/*
 *  templates.go
 *  hgtbench
 *
 *  Created by Haibao Tang on 10/18/26
 *  Copyright © 2026 Haibao Tang. All rights reserved.
 */

package hgtbench

import (
	"strings"
	"text/template"

	"github.com/gobuffalo/packr"
)

// Names of the documents shipped in ./templates
const (
	ALFParamsTemplate = "alf_params.tmpl"
	RiataHGTTemplate  = "riatahgt.nex"
	Jane4Template     = "jane4.nex"
)

var box = packr.NewBox("./templates")

// NexusTrees fills the RIATA-HGT and Jane 4 documents
type NexusTrees struct {
	SpeciesTree string
	GeneTree    string
	Mapping     string
}

// renderTemplate fills the named template with data, missing keys are errors
func renderTemplate(name string, data interface{}) (string, error) {
	s, err := box.FindString(name)
	if err != nil {
		return "", err
	}
	tmpl, err := template.New(name).Option("missingkey=error").Parse(s)
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	if err = tmpl.Execute(&sb, data); err != nil {
		return "", err
	}
	return sb.String(), nil
}
