package core

import (
	"context"
	"strings"
)

// Stream is a lazily produced sequence of text fragments. It is single-pass
// and non-restartable; the producer closes the channel when the sequence is
// complete. Fragments concatenate to form the full response text.
type Stream <-chan string

// TextStream wraps an already materialized string as a single-fragment
// stream, normalizing knowledge-table answers to the same shape as
// model-generated output.
func TextStream(text string) Stream {
	ch := make(chan string, 1)
	ch <- text
	close(ch)
	return ch
}

// Collect drains the stream and returns the concatenated text. It returns
// early with the fragments gathered so far when ctx is cancelled.
func Collect(ctx context.Context, s Stream) string {
	var sb strings.Builder
	for {
		select {
		case <-ctx.Done():
			return sb.String()
		case frag, ok := <-s:
			if !ok {
				return sb.String()
			}
			sb.WriteString(frag)
		}
	}
}

