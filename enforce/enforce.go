package enforce

import (
	"fmt"

	"github.com/rs/zerolog/log"
)

// ENFORCE helper to halt program on error. Fatal logs exit with status 1, so nothing after it runs.
func ENFORCE(query interface{}, args ...interface{}) {
	switch t := query.(type) {
	case bool:
		if !t {
			log.Fatal().Msg("ENFORCE: " + fmt.Sprint(args...))
		}
	case error:
		log.Fatal().Err(t).Msg("ENFORCE: " + fmt.Sprint(args...))
	case string:
		log.Fatal().Msg("ENFORCE: " + t + " " + fmt.Sprint(args...))
	case nil:
		// Allow nil to pass since we do enforce.ENFORCE(err) to ensure there is no error
	default:
		log.Panic().Msg("ENFORCE: incorrect usage of enforce with type: " + fmt.Sprintf("%T", t) + " - " + fmt.Sprint(args...))
	}
}
