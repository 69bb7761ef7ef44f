package messagebird

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/supernova0730/mbsms/adapters/sms"
	"github.com/supernova0730/mbsms/mbErrs"
)

var (
	compactTimestampRegexp = regexp.MustCompile(`^[0-9]{12}$`)
	unixTimestampRegexp    = regexp.MustCompile(`^@-?[0-9]+$`)
)

// SetTimestamp schedules the message at t, converted to loc when loc is not nil.
func (c *St) SetTimestamp(t time.Time, loc *time.Location) {
	c.timestamp = FormatTimestamp(t, loc)
}

func (c *St) SetTimestampUnix(sec int64, loc *time.Location) {
	c.SetTimestamp(time.Unix(sec, 0), loc)
}

// SetTimestampString parses v in loc (local time when nil) and schedules the message.
// Accepted are the compact YYYYMMDDHHmm form, "@<unix seconds>" and any
// date-time notation understood by dateparse, e.g. "2013-03-04 15:30".
func (c *St) SetTimestampString(v string, loc *time.Location) error {
	t, err := ParseTimestamp(v, loc)
	if err != nil {
		return err
	}

	c.SetTimestamp(t, loc)

	return nil
}

func (c *St) ClearTimestamp() {
	c.timestamp = ""
}

func FormatTimestamp(t time.Time, loc *time.Location) string {
	if loc != nil {
		t = t.In(loc)
	}

	return t.Format(sms.TimestampLayout)
}

func ParseTimestamp(v string, loc *time.Location) (time.Time, error) {
	v = strings.TrimSpace(v)

	if loc == nil {
		loc = time.Local
	}

	switch {
	case v == "":
		return time.Time{}, mbErrs.WithDesc(mbErrs.InvalidArgument, "empty timestamp")
	case compactTimestampRegexp.MatchString(v):
		t, err := time.ParseInLocation(sms.TimestampLayout, v, loc)
		if err != nil {
			return time.Time{}, mbErrs.WithDesc(mbErrs.InvalidArgument, err.Error())
		}
		return t, nil
	case unixTimestampRegexp.MatchString(v):
		sec, err := strconv.ParseInt(v[1:], 10, 64)
		if err != nil {
			return time.Time{}, mbErrs.WithDesc(mbErrs.InvalidArgument, err.Error())
		}
		return time.Unix(sec, 0).In(loc), nil
	}

	t, err := dateparse.ParseIn(v, loc)
	if err != nil {
		return time.Time{}, mbErrs.WithDesc(mbErrs.InvalidArgument, "bad timestamp: "+err.Error())
	}

	return t, nil
}
