// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package dialog

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/jongio/sysext/logutil"
)

const component = "dialog"

var (
	// ErrInvalidDescriptor is returned for descriptors no renderer could show.
	ErrInvalidDescriptor = errors.New("invalid dialog descriptor")
	// ErrUnexpectedButton is returned when a renderer reports a button the
	// window type does not have.
	ErrUnexpectedButton = errors.New("unexpected dialog result")
)

// WindowType selects the set of buttons. Help may be combined with any
// other window type to add a Help button.
type WindowType uint32

const (
	// OK shows a single OK button.
	OK WindowType = 0x00000000
	// OKCancel shows OK and Cancel.
	OKCancel WindowType = 0x00000001
	// AbortRetryIgnore shows Abort, Retry and Ignore.
	AbortRetryIgnore WindowType = 0x00000002
	// YesNoCancel shows Yes, No and Cancel.
	YesNoCancel WindowType = 0x00000003
	// YesNo shows Yes and No.
	YesNo WindowType = 0x00000004
	// RetryCancel shows Retry and Cancel.
	RetryCancel WindowType = 0x00000005
	// CancelTryContinue shows Cancel, Try Again and Continue.
	CancelTryContinue WindowType = 0x00000006
	// Help adds a Help button. On its own it means OK plus Help. Help never
	// closes the box.
	Help WindowType = 0x00004000
)

var windowNames = map[WindowType]string{
	OK:                "OK",
	OKCancel:          "OKCancel",
	AbortRetryIgnore:  "AbortRetryIgnore",
	YesNoCancel:       "YesNoCancel",
	YesNo:             "YesNo",
	RetryCancel:       "RetryCancel",
	CancelTryContinue: "CancelTryContinue",
}

// Base returns the window type without the Help modifier.
func (w WindowType) Base() WindowType {
	return w &^ Help
}

// HasHelp reports whether a Help button is shown.
func (w WindowType) HasHelp() bool {
	return w&Help != 0
}

func (w WindowType) String() string {
	name, ok := windowNames[w.Base()]
	switch {
	case !ok:
		return fmt.Sprintf("WindowType(0x%x)", uint32(w))
	case w == Help:
		return "Help"
	case w.HasHelp():
		return name + "|Help"
	default:
		return name
	}
}

// Buttons returns the buttons that can close a box of this type, in display
// order. The Help button is not included.
func (w WindowType) Buttons() []BoxReturn {
	switch w.Base() {
	case OK:
		return []BoxReturn{ReturnOK}
	case OKCancel:
		return []BoxReturn{ReturnOK, ReturnCancel}
	case AbortRetryIgnore:
		return []BoxReturn{ReturnAbort, ReturnRetry, ReturnIgnore}
	case YesNoCancel:
		return []BoxReturn{ReturnYes, ReturnNo, ReturnCancel}
	case YesNo:
		return []BoxReturn{ReturnYes, ReturnNo}
	case RetryCancel:
		return []BoxReturn{ReturnRetry, ReturnCancel}
	case CancelTryContinue:
		return []BoxReturn{ReturnCancel, ReturnTryAgain, ReturnContinue}
	default:
		return nil
	}
}

// IconType selects the icon.
type IconType uint32

const (
	IconNone        IconType = 0x00000000
	IconError       IconType = 0x00000010
	IconQuestion    IconType = 0x00000020
	IconWarning     IconType = 0x00000030
	IconInformation IconType = 0x00000040
)

func (i IconType) String() string {
	switch i {
	case IconNone:
		return "None"
	case IconError:
		return "Error"
	case IconQuestion:
		return "Question"
	case IconWarning:
		return "Warning"
	case IconInformation:
		return "Information"
	default:
		return fmt.Sprintf("IconType(0x%x)", uint32(i))
	}
}

// DefaultButton selects which button has focus initially.
type DefaultButton uint32

const (
	DefaultButtonOne   DefaultButton = 0x00000000
	DefaultButtonTwo   DefaultButton = 0x00000100
	DefaultButtonThree DefaultButton = 0x00000200
	DefaultButtonFour  DefaultButton = 0x00000300
)

// Index returns the 1-based position of the button.
func (d DefaultButton) Index() int {
	return int(d>>8) + 1
}

func (d DefaultButton) String() string {
	if d&^0x300 != 0 {
		return fmt.Sprintf("DefaultButton(0x%x)", uint32(d))
	}
	return fmt.Sprintf("Button%d", d.Index())
}

const (
	windowMask  = 0x0000400F
	iconMask    = 0x000000F0
	defaultMask = 0x00000F00
)

// BoxReturn is the button the user pressed.
type BoxReturn int

const (
	ReturnOK       BoxReturn = 1
	ReturnCancel   BoxReturn = 2
	ReturnAbort    BoxReturn = 3
	ReturnRetry    BoxReturn = 4
	ReturnIgnore   BoxReturn = 5
	ReturnYes      BoxReturn = 6
	ReturnNo       BoxReturn = 7
	ReturnTryAgain BoxReturn = 10
	ReturnContinue BoxReturn = 11
)

var returnNames = map[BoxReturn]string{
	ReturnOK:       "OK",
	ReturnCancel:   "Cancel",
	ReturnAbort:    "Abort",
	ReturnRetry:    "Retry",
	ReturnIgnore:   "Ignore",
	ReturnYes:      "Yes",
	ReturnNo:       "No",
	ReturnTryAgain: "TryAgain",
	ReturnContinue: "Continue",
}

func (r BoxReturn) String() string {
	if name, ok := returnNames[r]; ok {
		return name
	}
	return fmt.Sprintf("BoxReturn(%d)", int(r))
}

// BoxReturnFromCode converts a native return code.
func BoxReturnFromCode(code int) (BoxReturn, error) {
	r := BoxReturn(code)
	if _, ok := returnNames[r]; !ok {
		return 0, fmt.Errorf("%w: unknown return code %d", ErrUnexpectedButton, code)
	}
	return r, nil
}

// MessageBox describes a modal box with a title, a message and buttons.
type MessageBox struct {
	Title         string
	Content       string
	Window        WindowType
	Icon          IconType
	DefaultButton DefaultButton
}

// NewMessageBox creates an OK box with no icon.
func NewMessageBox(title, content string) MessageBox {
	return MessageBox{Title: title, Content: content}
}

// WithWindow returns a copy of m showing the buttons of w.
func (m MessageBox) WithWindow(w WindowType) MessageBox {
	m.Window = w
	return m
}

// WithIcon returns a copy of m showing icon i.
func (m MessageBox) WithIcon(i IconType) MessageBox {
	m.Icon = i
	return m
}

// WithDefaultButton returns a copy of m with d focused initially.
func (m MessageBox) WithDefaultButton(d DefaultButton) MessageBox {
	m.DefaultButton = d
	return m
}

// Flags composes window, icon and default button into one bit set.
func (m MessageBox) Flags() uint32 {
	return uint32(m.Window) | uint32(m.Icon) | uint32(m.DefaultButton)
}

// MessageBoxFromFlags splits a composed bit set back into a descriptor.
func MessageBoxFromFlags(title, content string, flags uint32) (MessageBox, error) {
	if rest := flags &^ (windowMask | iconMask | defaultMask); rest != 0 {
		return MessageBox{}, fmt.Errorf("%w: unknown flag bits 0x%x", ErrInvalidDescriptor, rest)
	}
	m := MessageBox{
		Title:         title,
		Content:       content,
		Window:        WindowType(flags & windowMask),
		Icon:          IconType(flags & iconMask),
		DefaultButton: DefaultButton(flags & defaultMask),
	}
	return m, m.Validate()
}

// Buttons returns the buttons that can close the box.
func (m MessageBox) Buttons() []BoxReturn {
	return m.Window.Buttons()
}

// Validate checks that every field holds a known value and that the default
// button exists.
func (m MessageBox) Validate() error {
	if _, ok := windowNames[m.Window.Base()]; !ok {
		return fmt.Errorf("%w: window type %s", ErrInvalidDescriptor, m.Window)
	}
	switch m.Icon {
	case IconNone, IconError, IconQuestion, IconWarning, IconInformation:
	default:
		return fmt.Errorf("%w: icon %s", ErrInvalidDescriptor, m.Icon)
	}
	if m.DefaultButton&^defaultMask != 0 {
		return fmt.Errorf("%w: default button %s", ErrInvalidDescriptor, m.DefaultButton)
	}

	visible := len(m.Buttons())
	if m.Window.HasHelp() {
		visible++
	}
	if m.DefaultButton.Index() > visible {
		return fmt.Errorf("%w: default %s but %s has %d buttons", ErrInvalidDescriptor, m.DefaultButton, m.Window, visible)
	}
	return nil
}

// MessageRenderer draws a message box and waits for the user.
type MessageRenderer interface {
	ShowMessageBox(ctx context.Context, box MessageBox) (BoxReturn, error)
}

// Show validates the box, hands it to r and checks the answer against the
// window type's buttons.
func (m MessageBox) Show(ctx context.Context, r MessageRenderer) (BoxReturn, error) {
	if err := m.Validate(); err != nil {
		return 0, err
	}

	log := logutil.NewLogger(component).WithOperation("show_message_box").
		WithFields("window", m.Window.String(), "icon", m.Icon.String())

	answer, err := r.ShowMessageBox(ctx, m)
	if err != nil {
		log.Debug("renderer failed", "error", err)
		return 0, fmt.Errorf("show message box %q: %w", m.Title, err)
	}
	if !slices.Contains(m.Buttons(), answer) {
		return 0, fmt.Errorf("%w: %s is not a button of %s", ErrUnexpectedButton, answer, m.Window)
	}

	log.Debug("message box closed", "answer", answer.String())
	return answer, nil
}
