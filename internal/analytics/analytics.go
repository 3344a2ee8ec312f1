// Package analytics aggregates stored test results for review screens and
// teacher reports.
package analytics

import (
	"slices"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/englishk12/backend/internal/domain/question"
	"github.com/englishk12/backend/internal/domain/result"
	"github.com/englishk12/backend/internal/domain/user"
)

// History returns the student's results, newest date first. Results on the
// same date keep their insertion order.
func History(results []result.TestResult, studentID string) []result.TestResult {
	out := make([]result.TestResult, 0)
	for _, r := range results {
		if r.StudentID == studentID {
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Day().After(out[j].Day())
	})
	return out
}

// MissedQuestion is a question the student answered wrongly, with how often.
type MissedQuestion struct {
	Question  question.Question
	MissCount int
}

// MissedQuestions tallies the student's incorrect answers per question across
// all results, most-missed first. Equal counts keep the order in which the
// question was first missed. Questions no longer in the bank are dropped.
func MissedQuestions(results []result.TestResult, bank []question.Question, studentID string) []MissedQuestion {
	counts := make(map[string]int)
	var order []string

	for _, r := range results {
		if r.StudentID != studentID {
			continue
		}
		for _, d := range r.Details {
			if d.IsCorrect {
				continue
			}
			if _, seen := counts[d.QuestionID]; !seen {
				order = append(order, d.QuestionID)
			}
			counts[d.QuestionID]++
		}
	}

	byID := question.Index(bank)
	out := make([]MissedQuestion, 0, len(order))
	for _, qid := range order {
		q, ok := byID[qid]
		if !ok {
			continue
		}
		out = append(out, MissedQuestion{Question: q, MissCount: counts[qid]})
	}

	slices.SortStableFunc(out, func(a, b MissedQuestion) int {
		return b.MissCount - a.MissCount
	})
	return out
}

// StudentReport summarizes one student's attempts for the teacher dashboard.
type StudentReport struct {
	Student      user.User
	Attempts     int
	AverageScore decimal.Decimal // rounded to one decimal place
}

// StudentReports builds a report for every student user, in user order.
func StudentReports(users []user.User, results []result.TestResult) []StudentReport {
	type agg struct{ attempts, total int }
	byStudent := make(map[string]*agg)
	for _, r := range results {
		a, ok := byStudent[r.StudentID]
		if !ok {
			a = &agg{}
			byStudent[r.StudentID] = a
		}
		a.attempts++
		a.total += r.Score
	}

	students := user.Students(users)
	out := make([]StudentReport, 0, len(students))
	for _, s := range students {
		rep := StudentReport{Student: s, AverageScore: decimal.Zero}
		if a, ok := byStudent[s.ID]; ok {
			rep.Attempts = a.attempts
			rep.AverageScore = decimal.NewFromInt(int64(a.total)).
				Div(decimal.NewFromInt(int64(a.attempts))).
				Round(1)
		}
		out = append(out, rep)
	}
	return out
}
