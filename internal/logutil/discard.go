package logutil

import (
	"io"
	"log"
)

// Discard is a Logger that ignores all loggings; cmd/cas swaps it in for
// its stderr logger under -quiet.
var Discard = log.New(io.Discard, "cas: ", log.LstdFlags)
