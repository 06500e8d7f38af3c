package main

import (
	"log"

	"github.com/milk9111/puppeteer/editor"
	"golang.design/x/clipboard"
)

type systemClipboard struct{}

// newClipboard returns the OS clipboard, or nil when it cannot be used (for
// example on a headless machine).
func newClipboard() editor.Clipboard {
	if err := clipboard.Init(); err != nil {
		log.Printf("clipboard unavailable: %v", err)
		return nil
	}
	return systemClipboard{}
}

func (systemClipboard) WriteText(s string) error {
	clipboard.Write(clipboard.FmtText, []byte(s))
	return nil
}
