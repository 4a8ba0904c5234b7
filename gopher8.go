// This file is part of Gopher8.
//
// Gopher8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/environment"
	"github.com/jetsetilly/gopher8/gui"
	"github.com/jetsetilly/gopher8/gui/sdlaudio"
	"github.com/jetsetilly/gopher8/gui/sdlplay"
	"github.com/jetsetilly/gopher8/gui/termplay"
	"github.com/jetsetilly/gopher8/hardware/preferences"
	"github.com/jetsetilly/gopher8/logger"
	"github.com/jetsetilly/gopher8/modalflag"
	"github.com/jetsetilly/gopher8/paths"
	"github.com/jetsetilly/gopher8/performance"
	"github.com/jetsetilly/gopher8/playmode"
	"github.com/jetsetilly/gopher8/prefs"
	"github.com/jetsetilly/gopher8/romloader"
	"github.com/jetsetilly/gopher8/statsview"
	"github.com/jetsetilly/gopher8/tone"
	"github.com/jetsetilly/gopher8/version"
	"github.com/jetsetilly/gopher8/wavwriter"
)

type stateReq = string

const (
	// main thread should end as soon as possible.
	//
	// takes optional int argument, indicating the status code.
	reqQuit stateReq = "QUIT"

	// reset interrupt signal handling. used when the play loop installs its
	// own handler.
	//
	// takes no arguments.
	reqNoIntSig stateReq = "NOINTSIG"
)

type stateRequest struct {
	req  stateReq
	args interface{}
}

// GuiCreator facilitates the creation, servicing and destruction of GUIs
// that need to be run in the main thread.
//
// There is no Create() function. The creator is a channel which accepts a
// function that returns an instance of GuiCreator.
type GuiCreator interface {
	// cleanup resources used by the gui
	Destroy(io.Writer)

	// Service() should not pause or loop longer than necessary. It MUST ONLY
	// be called as part of a larger loop from the main thread.
	Service()
}

// communication between the main() function and the launch() function. SDL
// requires window creation and event handling to happen on the main thread.
type mainSync struct {
	state   chan stateRequest
	creator chan func() (GuiCreator, error)

	// the result of creator will be returned on either of these two channels.
	creation      chan GuiCreator
	creationError chan error
}

// #mainthread
func main() {
	sync := &mainSync{
		state:         make(chan stateRequest),
		creator:       make(chan func() (GuiCreator, error)),
		creation:      make(chan GuiCreator),
		creationError: make(chan error),
	}

	// the value to use with os.Exit(). can be changed with reqQuit
	exitVal := 0

	// #ctrlc default handler. can be turned off with reqNoIntSig request
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	go launch(sync, os.Args[1:])

	done := false
	var gui GuiCreator
	for !done {
		select {
		case <-intChan:
			fmt.Println("\r")
			done = true
			if gui != nil {
				gui.Destroy(os.Stderr)
			}

		case creator := <-sync.creator:
			if gui != nil {
				gui.Destroy(os.Stderr)
			}

			g, err := creator()
			if err != nil {
				// an interface holding a nil pointer is not itself nil so
				// the result of a failed creator is never assigned to gui
				gui = nil
				sync.creationError <- err
			} else {
				gui = g
				sync.creation <- gui
			}

		case state := <-sync.state:
			switch state.req {
			case reqQuit:
				done = true
				if gui != nil {
					gui.Destroy(os.Stderr)
				}

				if state.args != nil {
					if v, ok := state.args.(int); ok {
						exitVal = v
					} else {
						panic(fmt.Sprintf("cannot convert %s arguments into int", reqQuit))
					}
				}

			case reqNoIntSig:
				signal.Reset(os.Interrupt)
				if state.args != nil {
					panic(fmt.Sprintf("%s does not accept any arguments", reqNoIntSig))
				}
			}

		default:
			if gui != nil {
				gui.Service()
			}
		}
	}

	fmt.Print("\r")
	os.Exit(exitVal)
}

// launch is called from main() as a goroutine. uses mainSync instance to
// indicate gui creation and to quit.
func launch(sync *mainSync, args []string) {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(args)
	md.NewMode()
	md.AddSubModes("RUN", "TERM", "HEADLESS", "PERFORMANCE", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		sync.state <- stateRequest{req: reqQuit}
		return

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		sync.state <- stateRequest{req: reqQuit, args: 10}
		return
	}

	switch md.Mode() {
	case "RUN":
		err = run(md, sync)

	case "TERM":
		err = term(md, sync)

	case "HEADLESS":
		err = headless(md)

	case "PERFORMANCE":
		err = perform(md)

	case "VERSION":
		fmt.Println(version.String())
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		sync.state <- stateRequest{req: reqQuit, args: 20}
		return
	}

	sync.state <- stateRequest{req: reqQuit}
}

// pushPrefs adds the -prefs argument to the command line stack. The returned
// function must be called once all preferences have been loaded.
func pushPrefs(s string) func() {
	if s == "" {
		return func() {}
	}
	prefs.PushCommandLineStack(s)
	return func() {
		if unused := prefs.PopCommandLineStack(); unused != "" {
			logger.Logf(logger.Allow, "prefs", "unused command line preferences: %s", unused)
		}
	}
}

// error patterns for the command line.
const (
	programRequired = "chip-8 program required for %s mode"
	tooManyArgs     = "too many arguments for %s mode"
	badKey          = "not a keypad key: %c"
)

// programLoader returns a loader for the single program argument.
func programLoader(md *modalflag.Modes) (romloader.Loader, error) {
	switch len(md.RemainingArgs()) {
	case 0:
		return romloader.Loader{}, curated.Errorf(programRequired, md)
	case 1:
		return romloader.NewLoader(md.GetArg(0)), nil
	default:
		return romloader.Loader{}, curated.Errorf(tooManyArgs, md)
	}
}

// beepTone loads the tone named by filename. An empty filename or a tone
// that cannot be loaded results in the default tone.
func beepTone(filename string) tone.Tone {
	if filename == "" {
		return tone.Default()
	}
	t, err := tone.Load(logger.Allow, filename)
	if err != nil {
		logger.Log(logger.Allow, "tone", err)
		return tone.Default()
	}
	return t
}

// wavFilename returns the filename to use for a wav recording. the AUTO
// value generates a filename from the program name and the current time.
func wavFilename(name string, ld romloader.Loader) string {
	if strings.ToUpper(name) == "AUTO" {
		return fmt.Sprintf("%s.wav", paths.UniqueFilename("beeps", ld.ShortName()))
	}
	return name
}

// overridden returns true if any of the named flags were set on the command
// line.
func overridden(md *modalflag.Modes, names ...string) bool {
	var set bool
	md.Visit(func(flag string) {
		for _, n := range names {
			if n == flag {
				set = true
			}
		}
	})
	return set
}

// keyHelp is shown with the help for the RUN and TERM modes.
const keyHelp = `Keypad:   1 2 3 4      1 2 3 C
          Q W E R  ->  4 5 6 D
          A S D F      7 8 9 E
          Z X C V      A 0 B F

Hotkeys:  Escape quit, Return reset, P pause, Left/Right slower/faster`

func run(md *modalflag.Modes, sync *mainSync) error {
	md.NewMode()

	md.AdditionalHelp(keyHelp)
	scale := md.AddInt("scale", 0, "window scaling (0 for the saved value)")
	speed := md.AddInt("speed", 0, "cycles per second (0 for the saved value)")
	beep := md.AddString("beep", "", "WAV or MP3 file to use for the beep")
	wav := md.AddString("wav", "", "record beeps to wav file (AUTO for a generated name)")
	log := md.AddBool("log", false, "echo debugging log to stdout")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	prefsOverride := md.AddString("prefs", "", "preference overrides for this session")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(os.Stdout)
	} else {
		logger.SetEcho(nil)
	}

	ld, err := programLoader(md)
	if err != nil {
		return err
	}

	popPrefs := pushPrefs(*prefsOverride)
	hwPrefs, err := preferences.NewPreferences()
	if err != nil {
		popPrefs()
		return err
	}
	sdlPrefs, err := sdlplay.NewPreferences()
	popPrefs()
	if err != nil {
		return err
	}

	if *speed > 0 {
		if err := hwPrefs.CyclesPerSecond.Set(*speed); err != nil {
			return err
		}
	}

	if *stats {
		statsview.Launch(os.Stdout)
	}

	env, err := environment.NewEnvironment(environment.MainEmulation, hwPrefs)
	if err != nil {
		return err
	}

	sync.creator <- func() (GuiCreator, error) {
		return sdlplay.NewSdlPlay(sdlPrefs)
	}

	var scr *sdlplay.SdlPlay
	select {
	case g := <-sync.creation:
		scr = g.(*sdlplay.SdlPlay)
	case err := <-sync.creationError:
		return err
	}

	if *scale > 0 {
		if err := scr.SetFeature(gui.ReqSetScale, *scale); err != nil {
			return err
		}
	}

	t := beepTone(*beep)
	if *beep == "" {
		t = beepTone(sdlPrefs.Beep.String())
	}

	var mixers []gui.AudioMixer

	if sdlPrefs.Audio.Get().(bool) {
		aud, err := sdlaudio.NewAudio(t.Amplify(sdlPrefs.Volume.Get().(float64)))
		if err != nil {
			logger.Log(logger.Allow, "sdlaudio", err)
		} else {
			mixers = append(mixers, aud)
		}
	}

	if *wav != "" {
		aw, err := wavwriter.New(wavFilename(*wav, ld), t)
		if err != nil {
			return err
		}
		mixers = append(mixers, aw)
	}

	// the play loop installs its own interrupt handler
	sync.state <- stateRequest{req: reqNoIntSig}

	err = playmode.Play(env, scr, scr, ld, mixers...)
	if err != nil {
		return err
	}

	// overridden values are not saved
	if overridden(md, "prefs", "speed", "scale") {
		return nil
	}
	if err := hwPrefs.Save(); err != nil {
		return err
	}
	return sdlPrefs.Save()
}

func term(md *modalflag.Modes, sync *mainSync) error {
	md.NewMode()

	md.AdditionalHelp(keyHelp)
	speed := md.AddInt("speed", 0, "cycles per second (0 for the saved value)")
	wav := md.AddString("wav", "", "record beeps to wav file (AUTO for a generated name)")
	beep := md.AddString("beep", "", "WAV or MP3 file to use for beeps recorded with -wav")
	prefsOverride := md.AddString("prefs", "", "preference overrides for this session")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	// the terminal is the display so the log is never echoed
	logger.SetEcho(nil)

	ld, err := programLoader(md)
	if err != nil {
		return err
	}

	popPrefs := pushPrefs(*prefsOverride)
	hwPrefs, err := preferences.NewPreferences()
	popPrefs()
	if err != nil {
		return err
	}

	if *speed > 0 {
		if err := hwPrefs.CyclesPerSecond.Set(*speed); err != nil {
			return err
		}
	}

	env, err := environment.NewEnvironment(environment.MainEmulation, hwPrefs)
	if err != nil {
		return err
	}

	sync.creator <- func() (GuiCreator, error) {
		return termplay.NewTermPlay(os.Stdin, os.Stdout)
	}

	var trm *termplay.TermPlay
	select {
	case g := <-sync.creation:
		trm = g.(*termplay.TermPlay)
	case err := <-sync.creationError:
		return err
	}

	mixers := []gui.AudioMixer{trm}
	if *wav != "" {
		aw, err := wavwriter.New(wavFilename(*wav, ld), beepTone(*beep))
		if err != nil {
			return err
		}
		mixers = append(mixers, aw)
	}

	sync.state <- stateRequest{req: reqNoIntSig}

	err = playmode.Play(env, trm, trm, ld, mixers...)
	if err != nil {
		return err
	}

	if overridden(md, "prefs", "speed") {
		return nil
	}
	return hwPrefs.Save()
}

func perform(md *modalflag.Modes) error {
	md.NewMode()

	duration := md.AddString("duration", "5s", "run duration (with an additional 1s lead time)")
	profile := md.AddString("profile", "none", "run performance check with profiling: CPU, MEM, TRACE, ALL (comma sep)")
	uncapped := md.AddBool("uncapped", true, "run at maximum speed")
	log := md.AddBool("log", false, "echo debugging log to stdout")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	prefsOverride := md.AddString("prefs", "", "preference overrides for this session")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(os.Stdout)
	} else {
		logger.SetEcho(nil)
	}

	ld, err := programLoader(md)
	if err != nil {
		return err
	}

	prf, err := performance.ParseProfileString(*profile)
	if err != nil {
		return err
	}

	popPrefs := pushPrefs(*prefsOverride)
	hwPrefs, err := preferences.NewPreferences()
	popPrefs()
	if err != nil {
		return err
	}

	if *stats {
		statsview.Launch(os.Stdout)
	}

	return performance.Check(md.Output, hwPrefs, prf, ld, *uncapped, *duration)
}
