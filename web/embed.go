package web

import "embed"

// Templates holds the storefront's layouts, partials and page templates.
//
//go:embed templates/**/*.html
var Templates embed.FS

// Static holds the stylesheet and other assets served under /static.
//
//go:embed static/**/*
var Static embed.FS
