package helper

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const maxRequestIDLength = 128

var newRandom = uuid.NewRandom

// RequestID returns the id a request is logged under. A usable incoming id is
// kept so callers can correlate their own logs; otherwise a random UUID is
// issued, or a timestamp id when the system entropy source fails.
func RequestID(incoming string) string {
	incoming = strings.TrimSpace(incoming)
	if validRequestID(incoming) {
		return incoming
	}
	id, err := newRandom()
	if err != nil {
		log.Warn().Err(err).Msg("Error generating request id")
		return "req-" + strconv.FormatInt(time.Now().UnixNano(), 36)
	}
	return id.String()
}

func validRequestID(id string) bool {
	if id == "" || len(id) > maxRequestIDLength {
		return false
	}
	return strings.IndexFunc(id, func(r rune) bool {
		return !unicode.IsPrint(r) || unicode.IsSpace(r)
	}) < 0
}

// pretty print
func PrettyPrint(w io.Writer, v any) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		log.Warn().Err(err).Msg("Error pretty printing")
		return
	}
	fmt.Fprintln(w, string(b))
}
