package tui

import (
	"time"

	"github.com/jimezsa/eatcli/internal/notify"
)

// Render messages carry the clear epoch they were produced in.

type clearMsg struct {
	epoch uint64
}

type loadingMsg struct {
	epoch uint64
	query string
}

type resultsMsg struct {
	epoch uint64
	query string
	rows  []Row
}

type emptyMsg struct {
	epoch uint64
	query string
}

type failedMsg struct {
	epoch uint64
	query string
	err   error
}

type noticeMsg struct {
	level   notify.Level
	message string
}

type pruneMsg time.Time
