package entity

import (
	"path/filepath"
	"strings"
)

// Document represents one input file for a single processing pass.
type Document struct {
	Path  string   `json:"path"`
	Name  string   `json:"name"`  // file name with extension
	Base  string   `json:"base"`  // file name without extension
	Pages []string `json:"pages"` // raw page text, index 0 is page 1
}

// NewDocument builds a Document for path without any page text.
func NewDocument(path string) Document {
	name := filepath.Base(path)
	return Document{
		Path: path,
		Name: name,
		Base: strings.TrimSuffix(name, filepath.Ext(name)),
	}
}

// PageKey identifies a page within a run.
type PageKey struct {
	Document string `json:"document"`
	Page     int    `json:"page"`
}
