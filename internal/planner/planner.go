package planner

import (
	"strconv"
	"strings"
	"time"

	"github.com/On-Jun9/ShutterRename/pkg/types"
)

const (
	dateLayout     = "2006-01-02"
	dateTimeLayout = "2006-01-02_15-04-05"
)

type Planner struct {
	layout string
}

func New(format types.DateFormat) *Planner {
	switch format {
	case types.DateFormatDateTime:
		return &Planner{layout: dateTimeLayout}
	default: // DateFormatDate
		return &Planner{layout: dateLayout}
	}
}

// Stamp formats the date part of a canonical name.
func (p *Planner) Stamp(t time.Time) string {
	return t.UTC().Format(p.layout)
}

// Name builds "<stamp>.<ext>", or "<stamp>_<n>.<ext>" when n > 0.
// The extension is lowercased.
func (p *Planner) Name(t time.Time, ext string, n int) string {
	var b strings.Builder
	b.WriteString(p.Stamp(t))
	if n > 0 {
		b.WriteByte('_')
		b.WriteString(strconv.Itoa(n))
	}
	b.WriteByte('.')
	b.WriteString(strings.ToLower(ext))
	return b.String()
}
