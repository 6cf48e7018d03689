package charset

import (
	"io"

	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/transform"
)

// NewDecoder resolves label (as returned by ExtractLabel, or sniffed some
// other way) to an encoding via the WHATWG encoding-label table and wraps r
// with a transformer that emits UTF-8, the only thing the tokenizer's
// buffer queue ever sees. An unrecognized label falls back to the WHATWG
// default (windows-1252) rather than failing, matching how a browser's
// charset sniffing never hard-errors.
func NewDecoder(r io.Reader, label string) (io.Reader, error) {
	enc, err := htmlindex.Get(label)
	if err != nil {
		enc, err = htmlindex.Get("windows-1252")
		if err != nil {
			return r, err
		}
	}
	return transform.NewReader(r, enc.NewDecoder()), nil
}
