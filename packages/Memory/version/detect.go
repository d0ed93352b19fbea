package version

import (
	"errors"
	"fmt"
	"path/filepath"

	"d2mapi/packages/Memory/logging"

	"github.com/prometheus/client_golang/prometheus"
)

var Detections = prometheus.NewCounterVec(prometheus.CounterOpts{
	Namespace: "d2mapi",
	Subsystem: "version",
	Name:      "detections",
}, []string{"source", "result"})

var ErrNoLauncherSource = errors.New("launcher executable detected but no launcher source configured")

// Guesser produces a provisional revision for a game executable.
type Guesser interface {
	Guess(executable string) (Revision, error)
}

type GuesserFunc func(executable string) (Revision, error)

func (f GuesserFunc) Guess(executable string) (Revision, error) {
	return f(executable)
}

// LauncherSource reports the revision a launcher wrapper is set up to run.
type LauncherSource interface {
	Revision(executable string) (Revision, error)
}

type Source string

const (
	SourceLauncher  Source = "launcher"
	SourceGuess     Source = "guess"
	SourceSignature Source = "signature"
)

type Result struct {
	Revision Revision
	Guess    Revision
	Source   Source
	// SignatureFile is the file that was fingerprinted, if any.
	SignatureFile string
}

// Detector identifies the revision of an installation in two phases: a cheap
// guess picks the revision family, and a header signature narrows it when the
// family has more than one build per file version.
type Detector struct {
	Executable string
	Table      *Table
	Launchers  *Set
	Guesser    Guesser
	Launcher   LauncherSource
	Log        *logging.Logger
}

func (d *Detector) table() *Table {
	if d.Table != nil {
		return d.Table
	}
	return Default
}

func (d *Detector) launchers() *Set {
	if d.Launchers != nil {
		return d.Launchers
	}
	return Launchers
}

func (d *Detector) guesser() Guesser {
	if d.Guesser != nil {
		return d.Guesser
	}
	return FileVersionGuesser{}
}

func (d *Detector) Detect() (Result, error) {
	res, err := d.detect()
	if err != nil {
		Detections.WithLabelValues(string(res.Source), "error").Inc()
		return res, err
	}
	Detections.WithLabelValues(string(res.Source), "ok").Inc()
	logging.Or(d.Log).Info("game revision detected",
		"revision", res.Revision, "source", res.Source, "file", res.SignatureFile)
	return res, nil
}

func (d *Detector) detect() (Result, error) {
	res := Result{Source: SourceLauncher}

	isLauncher, err := d.launchers().MatchFile(d.Executable)
	if err != nil {
		return res, fmt.Errorf("fingerprint %s: %w", d.Executable, err)
	}
	if isLauncher {
		if d.Launcher == nil {
			return res, ErrNoLauncherSource
		}
		rev, err := d.Launcher.Revision(d.Executable)
		if err != nil {
			return res, err
		}
		res.Revision, res.Guess = rev, rev
		return res, nil
	}

	res.Source = SourceGuess
	guess, err := d.guesser().Guess(d.Executable)
	if err != nil {
		return res, err
	}
	res.Guess = guess
	if !guess.HasFingerprintCheck() {
		res.Revision = guess
		return res, nil
	}

	res.Source = SourceSignature
	res.SignatureFile = d.Executable
	if !guess.IsAtLeast1_14() {
		res.SignatureFile = filepath.Join(filepath.Dir(d.Executable), guess.SignatureFile())
	}
	rev, err := d.table().Identify(res.SignatureFile)
	if err != nil {
		return res, err
	}
	res.Revision = rev
	return res, nil
}
