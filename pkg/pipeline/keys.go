package pipeline

import (
	"fmt"
	"time"
)

const sessionLayout = "2006-01-02-15-04-05.000000"

func documentKey(session, name string) string {
	return session + "/" + name + ".pdf"
}

func audioKey(session, name string, index int) string {
	return fmt.Sprintf("%s/%s_audio_%d.webm", session, name, index)
}

// sessionID namespaces all artifacts of one run. Runs that publish audio
// clips use a UTC timestamp so their objects sort by recording time.
func (p *Pipeline) sessionID(audio bool) string {
	if audio {
		return p.now().UTC().Format(sessionLayout)
	}

	return p.newID()
}
