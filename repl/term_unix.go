// This file is part of schemevm.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

//+build !windows

package repl

import (
	"os"
	"syscall"
	"unsafe"

	"github.com/chzyer/readline"
	"github.com/pkg/term/termios"
)

var savedTermios syscall.Termios

// configureRawMode points readline at makeRaw/exitRaw/isTerminal instead of
// its own built-in raw-mode code, so the termios sequence matches the
// teacher's setRawIO exactly.
func configureRawMode(cfg *readline.Config) {
	cfg.FuncMakeRaw = makeRaw
	cfg.FuncExitRaw = exitRaw
	cfg.FuncIsTerminal = isTerminal
}

// makeRaw and exitRaw give chzyer/readline's pluggable FuncMakeRaw/
// FuncExitRaw hooks the same termios sequence as cmd/retro's setRawIO,
// instead of letting readline reach for its own built-in platform code.
// readline calls these itself around each Readline, so there is no raw-mode
// state to fight over the way there would be if this package also toggled
// it independently.
func makeRaw() error {
	var tios syscall.Termios
	if err := termios.Tcgetattr(os.Stdin.Fd(), &tios); err != nil {
		return err
	}
	savedTermios = tios
	a := tios
	a.Iflag &^= syscall.BRKINT | syscall.ISTRIP | syscall.IXON | syscall.IXOFF
	a.Iflag |= syscall.IGNBRK | syscall.IGNPAR
	a.Lflag &^= syscall.ICANON | syscall.ISIG | syscall.IEXTEN | syscall.ECHO
	a.Cc[syscall.VMIN] = 1
	a.Cc[syscall.VTIME] = 0
	return termios.Tcsetattr(os.Stdin.Fd(), termios.TCSANOW, &a)
}

func exitRaw() error {
	return termios.Tcsetattr(os.Stdin.Fd(), termios.TCSANOW, &savedTermios)
}

func isTerminal() bool {
	var tios syscall.Termios
	return termios.Tcgetattr(os.Stdin.Fd(), &tios) == nil
}

// terminalWidth queries stdout's window size via TIOCGWINSZ, the same ioctl
// cmd/retro's term.go uses for its VT100 output sizing. No code in this
// package calls it; banners and error text are printed unwrapped.
func terminalWidth() int {
	type winsize struct {
		row, col, xpixel, ypixel uint16
	}
	var w winsize
	_, _, errno := syscall.Syscall(syscall.SYS_IOCTL, os.Stdout.Fd(),
		syscall.TIOCGWINSZ, uintptr(unsafe.Pointer(&w)))
	if errno != 0 || w.col == 0 {
		return 0
	}
	return int(w.col)
}
