package refdata

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// WarnOnceSink deduplicates diagnostics for the lifetime of one parsing
// session. The first occurrence of a message is logged at warn level;
// identical messages are suppressed afterwards.
type WarnOnceSink struct {
	logger  logrus.FieldLogger
	seen    map[string]struct{}
	emitted []string
}

func NewWarnOnceSink(logger logrus.FieldLogger) *WarnOnceSink {
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	return &WarnOnceSink{
		logger: logger,
		seen:   make(map[string]struct{}),
	}
}

func (s *WarnOnceSink) Warnf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if _, ok := s.seen[msg]; ok {
		return
	}

	s.seen[msg] = struct{}{}
	s.emitted = append(s.emitted, msg)
	s.logger.Warn(msg)
}

// Emitted returns the messages logged so far, in first-emit order.
func (s *WarnOnceSink) Emitted() []string {
	out := make([]string, len(s.emitted))
	copy(out, s.emitted)

	return out
}
