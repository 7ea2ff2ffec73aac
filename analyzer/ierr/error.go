package ierr

import (
	"fmt"
	"log/slog"
)

type Issues struct {
	issues []Issue
}

func (r *Issues) With(issue ...Issue) *Issues {
	if r == nil {
		return &Issues{issues: issue}
	}
	r.issues = append(r.issues, issue...)
	return r
}

func (r *Issues) Merge(other *Issues) *Issues {
	if r == nil {
		return other
	}
	if other == nil || len(other.issues) == 0 {
		return r
	}
	return r.With(other.issues...)
}

func (r *Issues) Issues() []Issue {
	if r == nil {
		return nil
	}
	return r.issues
}

func (r *Issues) HasIssue() bool {
	if r == nil {
		return false
	}
	return len(r.issues) > 0
}

// WithCode returns the issues of r with the given code
func (r *Issues) WithCode(code IssueCode) []Issue {
	var matching []Issue
	for _, issue := range r.Issues() {
		if issue.Code() == code {
			matching = append(matching, issue)
		}
	}
	return matching
}

func (r *Issues) LogValue() slog.Value {
	var vals []slog.Attr
	for i, v := range r.Issues() {
		vals = append(vals, slog.Attr{
			Key: fmt.Sprint("i", i),
			Value: slog.GroupValue(
				slog.Attr{
					Key:   "msg",
					Value: slog.StringValue(FormatWithCode(v)),
				},
			),
		})
	}
	return slog.GroupValue(vals...)
}
