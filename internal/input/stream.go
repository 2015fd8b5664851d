package input

import channerics "github.com/niceyeti/channerics/channels"

// Stream translates raw samples into events until raw is closed or done
// fires.
func Stream(done <-chan struct{}, raw <-chan Pointer) <-chan Event {
	return channerics.Convert(done, raw, Translate)
}
