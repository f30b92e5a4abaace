// Package speech defines the voice input/output contracts of the assistant.
// Recognition and synthesis run outside the dispatch core; the dispatcher
// only ever sees the transcribed text. Failures degrade to an apology
// string so a broken microphone or TTS backend never breaks a text turn.
package speech

import (
	"context"
	"errors"
	"io"

	"github.com/gewei11/multichat/logging"
)

// RecognizeFallback is returned to the user when transcription fails.
const RecognizeFallback = "抱歉，我没有听清您说的话，请再说一遍或改用文字输入。"

// ErrNoSpeech reports that the audio contained no recognizable speech.
var ErrNoSpeech = errors.New("speech: no recognizable speech in audio")

// Recognizer transcribes spoken audio into text.
type Recognizer interface {
	Recognize(ctx context.Context, audio io.Reader) (string, error)
}

// Synthesizer renders answer text as spoken audio.
type Synthesizer interface {
	Synthesize(ctx context.Context, text string) (io.ReadCloser, error)
}

// Transcribe runs a recognizer and maps every failure to the user-facing
// fallback text. The boolean reports whether real speech was recognized.
func Transcribe(ctx context.Context, rec Recognizer, audio io.Reader, logger logging.Logger) (string, bool) {
	if logger == nil {
		logger = logging.NoOpLogger{}
	}
	text, err := rec.Recognize(ctx, audio)
	if err != nil {
		logger.Warn("speech recognition failed", "error", err)
		return RecognizeFallback, false
	}
	if text == "" {
		logger.Debug("empty transcription")
		return RecognizeFallback, false
	}
	return text, true
}
