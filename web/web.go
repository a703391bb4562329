// Package web embeds the browser control panel.
package web

import _ "embed"

//go:embed static/index.html
var index []byte

// Index returns the control panel page.
func Index() []byte {
	return index
}
