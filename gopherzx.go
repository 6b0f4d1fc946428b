// This file is part of GopherZX.
//
// GopherZX is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherZX is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherZX.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"

	"github.com/jetsetilly/gopherzx/gui/sdlinput"
	"github.com/jetsetilly/gopherzx/gui/tcellinput"
	"github.com/jetsetilly/gopherzx/gui/terminput"
	"github.com/jetsetilly/gopherzx/logger"
	"github.com/jetsetilly/gopherzx/modalflag"
	"github.com/jetsetilly/gopherzx/performance"
	"github.com/jetsetilly/gopherzx/performance/limiter"
	"github.com/jetsetilly/gopherzx/prefs"
	"github.com/jetsetilly/gopherzx/recorder"
	"github.com/jetsetilly/gopherzx/statsview"
	"github.com/jetsetilly/gopherzx/translator"
	"github.com/jetsetilly/gopherzx/userinput"

	"github.com/pelletier/go-toml/v2"
)

// the frame rate of a PAL ZX Spectrum
const defaultFPS = 50

// SDL requires that events are polled from the main thread.
func init() {
	runtime.LockOSThread()
}

// #mainthread
func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.AddSubModes("RUN", "PLAYBACK", "KEYMAP", "PERFORMANCE")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		os.Exit(0)

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		os.Exit(10)
	}

	switch md.Mode() {
	case "RUN":
		err = run(md)

	case "PLAYBACK":
		err = playback(md)

	case "KEYMAP":
		err = keymap(md)

	case "PERFORMANCE":
		err = perform(md)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md, err)
		os.Exit(20)
	}
}

// source is a userinput.Source that must be destroyed when it is no longer
// required
type source interface {
	userinput.Source
	Destroy()
}

func run(md *modalflag.Modes) error {
	md.NewMode()

	src := md.AddString("source", "sdl", "input source: sdl, term, tcell")
	record := md.AddString("record", "", "record input to the named transcript file")
	prefsOverride := md.AddString("prefs", "", "preferences to override (eg. \"translator.bindings::my.toml\")")
	fps := md.AddInt("fps", defaultFPS, "frames per second at normal speed")
	log := md.AddBool("log", false, "echo log to stdout")

	var stats *bool
	if statsview.Available() {
		stats = md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	}

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	if stats != nil && *stats {
		statsview.Launch(os.Stdout)
	}

	prf, err := loadPreferences(*prefsOverride)
	if err != nil {
		return err
	}

	output := io.Writer(os.Stdout)

	var inp source
	switch *src {
	case "sdl":
		inp, err = sdlinput.NewSdlInput("GopherZX", true)
	case "term":
		inp, err = terminput.NewTermInput("")

		// the terminal is in raw mode so newlines do not return the carriage
		output = &crlfWriter{w: os.Stdout}
	case "tcell":
		var tc *tcellinput.TcellInput
		tc, err = tcellinput.NewTcellInput(nil)
		if err == nil {
			inp = tc
			output = tcellinput.NewConsole(tc.Screen())
		}
	default:
		return fmt.Errorf("unknown input source (%s)", *src)
	}
	if err != nil {
		return err
	}
	defer inp.Destroy()

	if *log {
		logger.SetEcho(output)
	}

	var userSrc userinput.Source = inp

	if *record != "" {
		rec, err := recorder.NewRecorder(*record, inp)
		if err != nil {
			return err
		}
		defer func() {
			if err := rec.End(); err != nil {
				logger.Log(logger.Allow, "gopherzx", err)
			}
			fmt.Fprintf(output, "! recording completed: %s\n", *record)
		}()
		userSrc = rec
	}

	tr, err := translator.NewTranslator(userSrc, prf)
	if err != nil {
		return err
	}

	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)
	defer signal.Stop(intChan)

	ed := newEventDisplay(output, *log)
	return runLoop(tr, limiter.NewFPSLimiter(*fps), *fps, ed, func() bool {
		select {
		case <-intChan:
			return true
		default:
			return false
		}
	})
}

func playback(md *modalflag.Modes) error {
	md.NewMode()

	prefsOverride := md.AddString("prefs", "", "preferences to override")
	fps := md.AddInt("fps", defaultFPS, "frames per second at normal speed")
	log := md.AddBool("log", false, "echo log to stdout")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("transcript required for %s mode", md)
	case 1:
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	if *log {
		logger.SetEcho(os.Stdout)
	}

	prf, err := loadPreferences(*prefsOverride)
	if err != nil {
		return err
	}

	plb, err := recorder.NewPlayback(md.GetArg(0))
	if err != nil {
		return err
	}

	tr, err := translator.NewTranslator(plb, prf)
	if err != nil {
		return err
	}

	ed := newEventDisplay(os.Stdout, *log)
	err = runLoop(tr, limiter.NewFPSLimiter(*fps), *fps, ed, plb.EndOfTranscript)
	if err != nil {
		return err
	}

	if !ed.exited {
		fmt.Println("! end of transcript")
	}

	return nil
}

func keymap(md *modalflag.Modes) error {
	md.NewMode()

	prefsOverride := md.AddString("prefs", "", "preferences to override")
	asToml := md.AddBool("toml", false, "print keymap as a bindings file")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	prf, err := loadPreferences(*prefsOverride)
	if err != nil {
		return err
	}

	km, err := translator.LoadKeymap(prf)
	if err != nil {
		return err
	}

	if *asToml {
		return toml.NewEncoder(os.Stdout).Encode(km.Overrides())
	}

	err = km.Write(os.Stdout)
	if err != nil {
		return err
	}

	for _, c := range km.Conflicts() {
		fmt.Printf("! %s\n", c)
	}

	for _, c := range km.Shadowed() {
		fmt.Printf("! meta binding on %s is unreachable\n", c)
	}

	return nil
}

func perform(md *modalflag.Modes) error {
	md.NewMode()

	prefsOverride := md.AddString("prefs", "", "preferences to override")
	duration := md.AddString("duration", "5s", "maximum run duration")
	profile := md.AddString("profile", "none", "run with profiling: CPU, MEM, TRACE, ALL (comma separated)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("transcript required for %s mode", md)
	case 1:
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	prof, err := performance.ParseProfileString(*profile)
	if err != nil {
		return err
	}

	prf, err := loadPreferences(*prefsOverride)
	if err != nil {
		return err
	}

	return performance.Check(md.Output, prof, md.GetArg(0), prf, *duration)
}

// loadPreferences with any preferences specified on the command line
// overriding the values on disk
func loadPreferences(override string) (*translator.Preferences, error) {
	prefs.PushCommandLineStack(override)
	defer func() {
		if unused := prefs.PopCommandLineStack(); unused != "" {
			logger.Logf(logger.Allow, "gopherzx", "unused command line preferences: %s", unused)
		}
	}()

	prf, err := translator.NewPreferences()
	if err != nil {
		return nil, err
	}

	return prf, nil
}

// crlfWriter adds a carriage return before every newline
type crlfWriter struct {
	w io.Writer
}

func (cw *crlfWriter) Write(p []byte) (int, error) {
	n := 0
	for len(p) > 0 {
		i := 0
		for i < len(p) && p[i] != '\n' {
			i++
		}
		m, err := cw.w.Write(p[:i])
		n += m
		if err != nil {
			return n, err
		}
		if i == len(p) {
			break
		}
		if _, err := cw.w.Write([]byte("\r\n")); err != nil {
			return n, err
		}
		n++
		p = p[i+1:]
	}
	return n, nil
}
