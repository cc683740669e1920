// Package clip is a thin wrapper over the system clipboard's text buffer.
package clip

import "github.com/atotto/clipboard"

// Get returns the current clipboard contents.
func Get() (string, error) {
	return clipboard.ReadAll()
}

// Set replaces the clipboard contents with text.
func Set(text string) error {
	return clipboard.WriteAll(text)
}
