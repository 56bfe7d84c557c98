package investmind

import "time"

// TimestampFormat is the layout of investment dates in the persisted store.
const TimestampFormat = "2006-01-02 15:04:05"

// Investment is the record of a single executed investment action. The
// option is a snapshot copy taken at the time of investing, so the history
// stays self-contained whatever happens to the catalog afterwards. Records
// are append-only and never recomputed.
type Investment struct {
	User        string           `json:"user"`
	Option      InvestmentOption `json:"investment_option"`
	Amount      Money            `json:"amount"`
	ReturnValue Money            `json:"return_value"`
	Date        string           `json:"date"`
	Notes       string           `json:"notes,omitempty"`
}

// Time parses the record's date back into a time.Time.
func (i Investment) Time() (time.Time, error) {
	return time.Parse(TimestampFormat, i.Date)
}

func (i Investment) Equal(j Investment) bool {
	return i.User == j.User &&
		i.Option.Equal(j.Option) &&
		i.Amount.Equal(j.Amount) &&
		i.ReturnValue.Equal(j.ReturnValue) &&
		i.Date == j.Date &&
		i.Notes == j.Notes
}
