package codec

import "fmt"

// DecodeError reports malformed content in a definition file. Path is the
// JSONPath of the offending value, e.g. "$[3].var[0].minx".
type DecodeError struct {
	File string
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	if e.File == "" {
		return fmt.Sprintf("%s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("%s: %s: %v", e.File, e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// EncodeError reports a collection that could not be serialized.
type EncodeError struct {
	File string
	Err  error
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("encode %s: %v", e.File, e.Err)
}

func (e *EncodeError) Unwrap() error { return e.Err }
