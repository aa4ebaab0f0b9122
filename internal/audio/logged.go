package audio

import (
	"github.com/charmbracelet/log"
)

// Logged reports backend failures to a logger and swallows them, so the
// game loop never has to handle audio errors.
type Logged struct {
	p      Player
	logger *log.Logger
}

// NewLogged wraps p.
func NewLogged(p Player, logger *log.Logger) *Logged {
	return &Logged{p: p, logger: logger}
}

func (l *Logged) Play(name string) error {
	l.logger.Debug("sound", "name", name)
	l.check(l.p.Play(name), "play", name)
	return nil
}

func (l *Logged) StartMusic() error {
	l.check(l.p.StartMusic(), "start music", "")
	return nil
}

func (l *Logged) PauseMusic() error {
	l.check(l.p.PauseMusic(), "pause music", "")
	return nil
}

func (l *Logged) ResumeMusic() error {
	l.check(l.p.ResumeMusic(), "resume music", "")
	return nil
}

func (l *Logged) Close() error {
	return l.p.Close()
}

func (l *Logged) check(err error, op, name string) {
	if err == nil {
		return
	}
	if name != "" {
		l.logger.Warn("audio "+op+" failed", "name", name, "err", err)
		return
	}
	l.logger.Warn("audio "+op+" failed", "err", err)
}
