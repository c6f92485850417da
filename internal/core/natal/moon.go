package natal

import (
	"context"
	"time"

	"astrolabe/internal/core/ephem"
	"astrolabe/internal/core/zodiac"
)

// moonUncertainty checks whether the Moon crosses a sign boundary during the
// birth day in the resolved zone. The reported position keeps the sign at
// the calculation instant; PossibleSigns lists the day's start and end signs
// in that order. The check always runs so metadata stays consistent, but it
// only flags charts computed without an exact time
func moonUncertainty(ctx context.Context, p ephem.Provider, date Date, loc *time.Location) (start, end zodiac.Sign, differs bool, err error) {
	dayStart := time.Date(date.Year, time.Month(date.Month), date.Day, 0, 0, 0, 0, loc)
	dayEnd := time.Date(date.Year, time.Month(date.Month), date.Day, 23, 59, 59, 0, loc)

	first, err := p.Position(ctx, ephem.Moon, dayStart)
	if err != nil {
		return 0, 0, false, err
	}
	last, err := p.Position(ctx, ephem.Moon, dayEnd)
	if err != nil {
		return 0, 0, false, err
	}

	start = zodiac.SignOf(first.Lon)
	end = zodiac.SignOf(last.Lon)
	return start, end, start != end, nil
}
