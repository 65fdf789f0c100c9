package cli

import (
	"io"
	"time"

	"github.com/briandowns/spinner"
)

const (
	// TruncationLimit is the digit count above which a result is shortened
	// on screen.
	TruncationLimit = 100
	// DisplayEdges is the number of digits kept at each end of a shortened
	// result.
	DisplayEdges = 25
	// SpinnerRefreshRate is the spinner frame interval.
	SpinnerRefreshRate = 100 * time.Millisecond
)

type spinnerOption = spinner.Option

// Spinner abstracts the terminal spinner shown while a computation runs.
type Spinner interface {
	// Start begins the spinner animation.
	Start()
	// Stop halts the spinner animation.
	Stop()
	// UpdateSuffix sets the text that is displayed after the spinner.
	UpdateSuffix(suffix string)
}

// realSpinner adapts *spinner.Spinner to Spinner.
type realSpinner struct {
	s *spinner.Spinner
}

func (rs *realSpinner) Start() { rs.s.Start() }

func (rs *realSpinner) Stop() { rs.s.Stop() }

func (rs *realSpinner) UpdateSuffix(suffix string) {
	rs.s.Lock()
	rs.s.Suffix = suffix
	rs.s.Unlock()
}

// newSpinner is replaced in tests.
var newSpinner = func(out io.Writer, options ...spinnerOption) Spinner {
	opts := append([]spinnerOption{spinner.WithWriter(out), spinner.WithHiddenCursor(true)}, options...)
	s := spinner.New(spinner.CharSets[11], SpinnerRefreshRate, opts...)
	return &realSpinner{s}
}

// nopSpinner is used when the spinner is disabled.
type nopSpinner struct{}

func (nopSpinner) Start()              {}
func (nopSpinner) Stop()               {}
func (nopSpinner) UpdateSuffix(string) {}
