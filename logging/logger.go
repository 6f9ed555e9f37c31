package logging

import (
	"os"

	"github.com/apex/log"
	"github.com/apex/log/handlers/json"
	"github.com/apex/log/handlers/text"
)

// Setup configures the global apex/log logger. Level should be one of
// debug, info, warn, error; unrecognized values fall back to info.
// In debug mode logs are rendered as human-readable text, otherwise JSON.
func Setup(level string, debug bool) {
	if debug {
		log.SetHandler(text.New(os.Stderr))
	} else {
		log.SetHandler(json.New(os.Stdout))
	}

	lvl, err := log.ParseLevel(level)
	if err != nil {
		lvl = log.InfoLevel
	}
	log.SetLevel(lvl)
}
