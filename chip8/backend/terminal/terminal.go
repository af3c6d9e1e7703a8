package terminal

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	chip8 "github.com/valerio/go-chip8/chip8"
	"github.com/valerio/go-chip8/chip8/backend"
	"github.com/valerio/go-chip8/chip8/input/action"
	"github.com/valerio/go-chip8/chip8/input/event"
)

const (
	// terminal cells are roughly twice as tall as wide
	scaleX = 2

	// keyTimeout releases a held key once its repeats stop arriving;
	// terminals deliver repeats, never key-up events.
	keyTimeout = 100 * time.Millisecond
)

var shadeChars = []rune{' ', '░', '▒', '▓', '█'}

// keypadLayout maps the left QWERTY 4x4 block to the hex keypad.
var keypadLayout = map[rune]byte{
	'1': 0x1, '2': 0x2, '3': 0x3, '4': 0xC,
	'q': 0x4, 'w': 0x5, 'e': 0x6, 'r': 0xD,
	'a': 0x7, 's': 0x8, 'd': 0x9, 'f': 0xE,
	'z': 0xA, 'x': 0x0, 'c': 0xB, 'v': 0xF,
}

// Backend renders published frames into a tcell terminal and turns
// keyboard input into keypad events.
type Backend struct {
	screen   tcell.Screen
	config   backend.Config
	lastSeen map[action.Action]time.Time
	active   map[action.Action]bool
}

func New() *Backend {
	return &Backend{}
}

func (t *Backend) Init(config backend.Config) error {
	t.config = config
	t.lastSeen = make(map[action.Action]time.Time)
	t.active = make(map[action.Action]bool)

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to initialize terminal: %v", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize terminal: %v", err)
	}

	screen.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite))
	screen.Clear()
	t.screen = screen

	return nil
}

// Update renders the frame and gathers keyboard input collected since
// the last call.
func (t *Backend) Update(frame chip8.FrameSnapshot) ([]backend.InputEvent, error) {
	var events []backend.InputEvent
	now := time.Now()

	for t.screen.HasPendingEvent() {
		ev := t.screen.PollEvent()
		switch ev := ev.(type) {
		case *tcell.EventKey:
			act, ok := t.translateKey(ev)
			if !ok {
				continue
			}
			if act.IsKeypad() {
				t.lastSeen[act] = now
			} else {
				events = append(events, backend.InputEvent{Action: act, Type: event.Press})
			}
		case *tcell.EventResize:
			t.screen.Sync()
		}
	}

	// press newly seen keys, release the ones whose repeats stopped
	for act, seen := range t.lastSeen {
		if now.Sub(seen) > keyTimeout {
			delete(t.lastSeen, act)
			if t.active[act] {
				delete(t.active, act)
				events = append(events, backend.InputEvent{Action: act, Type: event.Release})
			}
			continue
		}
		if !t.active[act] {
			t.active[act] = true
			events = append(events, backend.InputEvent{Action: act, Type: event.Press})
		}
	}

	t.render(frame)
	return events, nil
}

func (t *Backend) Cleanup() error {
	if t.screen != nil {
		t.screen.Fini()
	}
	return nil
}

func (t *Backend) translateKey(ev *tcell.EventKey) (action.Action, bool) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return action.EmulatorQuit, true
	case tcell.KeyF12:
		return action.EmulatorSnapshot, true
	case tcell.KeyRune:
		if code, ok := keypadLayout[ev.Rune()]; ok {
			return action.Key(code), true
		}
	}
	return 0, false
}

func (t *Backend) render(frame chip8.FrameSnapshot) {
	t.screen.Clear()
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)

	for y := 0; y < frame.Height; y++ {
		for x := 0; x < frame.Width; x++ {
			b := frame.Brightness[y*frame.Width+x]
			char := shadeChars[int(b)*(len(shadeChars)-1)/0xFF]
			for sx := 0; sx < scaleX; sx++ {
				t.screen.SetContent(x*scaleX+sx, y, char, nil, style)
			}
		}
	}

	// the sound signal, rendered as a marker under the display
	if frame.Sound {
		t.screen.SetContent(0, frame.Height, '♪', nil, style)
	}

	t.screen.Show()
}
