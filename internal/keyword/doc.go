// Package keyword filters Drive folder listings down to the files worth
// copying.
//
// Matching is substring-based and case-insensitive over the configured
// keyword set; files with zero matches are silently excluded. The Searcher
// additionally knows the agenda convention of versioned subfolders: a linked
// folder with no direct files is searched through its alphabetically-last
// subfolder instead.
package keyword
