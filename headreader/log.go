package headreader

import "github.com/rs/zerolog"

func init() {
	zerolog.CallerFieldName = "C"
	zerolog.MessageFieldName = "M"
	zerolog.LevelFieldName = "L"
	zerolog.ErrorFieldName = "E"
	zerolog.TimestampFieldName = "T"
	zerolog.ErrorStackFieldName = "S"
}

var nopLogger = zerolog.Nop()

const snippetLen = 32

// bufferSnippet returns a short prefix of b for log lines.
func bufferSnippet(b []byte) []byte {
	if len(b) > snippetLen {
		return b[:snippetLen]
	}
	return b
}
