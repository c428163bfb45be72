package pkg

import (
	"log"
	"os"
	"path/filepath"
)

// InitLog sends the standard logger to dest, creating its directory if
// needed. The terminal belongs to the UI, so nothing is logged to stderr.
func InitLog(dest, prefix string) {
	if dir := filepath.Dir(dest); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			log.Fatalf("error creating log directory: %v", err)
		}
	}
	f, err := os.OpenFile(dest, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	log.SetOutput(f)
	log.SetPrefix(prefix)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
}
