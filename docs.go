package main

import (
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"github.com/ohtsuboy/NGSPairMapper/cmd"
	"github.com/spf13/cobra/doc"
)

// https://pmarsceill.github.io/just-the-docs/docs/navigation-structure/
const rootCmd = `---
layout: default
title: %s
nav_order: %d
has_children: true
permalink: /
---
`

// child command without children
const childCmd = `---
layout: default
title: %s
parent: %s
nav_order: %d
---
`

// meta is for describing the position/info for a command doc page
type meta struct {
	title    string
	navOrder int
	parent   string
}

// map from the base Markdown file name to its build meta
var metaMap = map[string]meta{
	"pairmap": {
		"pairmap",
		0,
		"",
	},
	"pairmap_convert": {
		"convert",
		0,
		"pairmap",
	},
	"pairmap_validate": {
		"validate",
		1,
		"pairmap",
	},
	"pairmap_dedup": {
		"dedup",
		2,
		"pairmap",
	},
	"pairmap_filter": {
		"filter",
		3,
		"pairmap",
	},
}

// makeDocs parses the commands and outputs Markdown documentation files
func makeDocs() {
	if err := doc.GenMarkdownTreeCustom(cmd.RootCmd, "./docs", filePrepender, linkHandler); err != nil {
		fmt.Println(err.Error())
	}
}

// filePrepender adds YAML headings that are required by the just-the-docs theme
// https://github.com/spf13/cobra/blob/master/doc/md_docs.md
func filePrepender(filename string) string {
	name := filepath.Base(filename)
	base := strings.TrimSuffix(name, path.Ext(name))
	m := metaMap[base]

	if m.parent == "" {
		return fmt.Sprintf(rootCmd, m.title, m.navOrder)
	}
	return fmt.Sprintf(childCmd, m.title, m.parent, m.navOrder)
}

// linkHandler returns the URL to a documentation page
func linkHandler(filename string) string {
	name := filepath.Base(filename)
	base := strings.TrimSuffix(name, path.Ext(name))

	if base == "pairmap" {
		return "/"
	}
	return base
}
