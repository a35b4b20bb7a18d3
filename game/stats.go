package game

import (
	"time"

	"github.com/sirupsen/logrus"
)

// Stats summarises a game for display once it's over
type Stats struct {
	Start    time.Time
	End      time.Time
	Duration time.Duration
	Turns    int
	Outcome  Outcome
}

func (board *Board) Stats() Stats {
	stats := Stats{
		Start:   board.startTime,
		End:     board.endTime,
		Turns:   board.turns,
		Outcome: board.outcome,
	}
	if !board.endTime.IsZero() {
		stats.Duration = board.endTime.Sub(board.startTime)
	}
	return stats
}

func (stats Stats) Fields() logrus.Fields {
	fields := logrus.Fields{
		"start":    stats.Start.Format(time.RFC3339),
		"turns":    stats.Turns,
		"outcome":  stats.Outcome.String(),
		"duration": stats.Duration.String(),
	}
	if !stats.End.IsZero() {
		fields["end"] = stats.End.Format(time.RFC3339)
	}
	return fields
}
