package tui

import (
	"github.com/moyu-x/file-organizer/pkg/organizer"
)

type countFilesMsg struct {
	total int
}

type outcomeMsg organizer.Outcome

type organizeDoneMsg struct {
	stats *organizer.Stats
	err   error
}

type errMsg error
