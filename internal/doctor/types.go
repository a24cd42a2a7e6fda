package doctor

// Status is the result of one check.
type Status string

const (
	StatusOK   Status = "ok"
	StatusWarn Status = "warn"
	StatusFail Status = "fail"
)

// Result is the outcome of one check.
type Result struct {
	Name   string // short check name shown in the table
	Status Status
	Detail string // what was found
	Hint   string // what to do about a warning or failure
	URL    string // optional link for the hint
}

// Failed reports whether any result failed. Warnings don't count.
func Failed(results []Result) bool {
	for _, r := range results {
		if r.Status == StatusFail {
			return true
		}
	}
	return false
}
