// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package notify displays simple desktop notifications.
package notify

import (
	"context"
	"errors"
	"strings"
	"time"
)

// SimpleNotification is a title plus lines of text, with optional images.
// It is built with chained setters:
//
//	n := notify.NewSimpleNotification("Backup").
//	    AddText("Finished in 42s").
//	    SetAppLogo("/usr/share/icons/backup.png")
//
// The app logo, hero image and app id are only honored where the desktop
// supports them; elsewhere they are ignored.
type SimpleNotification struct {
	title     string
	text      []string
	appLogo   string
	heroImage string
	appID     string
}

// NewSimpleNotification creates a notification with the given title and no
// text.
func NewSimpleNotification(title string) *SimpleNotification {
	return &SimpleNotification{title: title}
}

// SetTitle replaces the title.
func (n *SimpleNotification) SetTitle(title string) *SimpleNotification {
	n.title = title
	return n
}

// AddText appends one line of body text.
func (n *SimpleNotification) AddText(line string) *SimpleNotification {
	n.text = append(n.text, line)
	return n
}

// SetText replaces all body lines.
func (n *SimpleNotification) SetText(lines []string) *SimpleNotification {
	n.text = append([]string(nil), lines...)
	return n
}

// SetAppLogo sets the path or URI of the logo shown next to the text.
func (n *SimpleNotification) SetAppLogo(logo string) *SimpleNotification {
	n.appLogo = logo
	return n
}

// SetHeroImage sets the path or URI of the large banner image.
func (n *SimpleNotification) SetHeroImage(image string) *SimpleNotification {
	n.heroImage = image
	return n
}

// SetAppID sets the application identity the notification is shown under.
func (n *SimpleNotification) SetAppID(id string) *SimpleNotification {
	n.appID = id
	return n
}

// Title returns the notification title.
func (n *SimpleNotification) Title() string { return n.title }

// Text returns a copy of the body lines.
func (n *SimpleNotification) Text() []string { return append([]string(nil), n.text...) }

// AppLogo returns the path or URI of the small logo.
func (n *SimpleNotification) AppLogo() string { return n.appLogo }

// HeroImage returns the path or URI of the banner image.
func (n *SimpleNotification) HeroImage() string { return n.heroImage }

// AppID returns the application identity, or "" for the default.
func (n *SimpleNotification) AppID() string { return n.appID }

// Body joins the text lines with newlines.
func (n *SimpleNotification) Body() string {
	return strings.Join(n.text, "\n")
}

// Notifier is the interface for notification backends.
type Notifier interface {
	// Send shows a notification.
	Send(ctx context.Context, notification *SimpleNotification) error

	// IsAvailable returns true if notifications can be shown.
	IsAvailable() bool

	// RequestPermission requests notification permissions from the OS.
	// Returns nil if permissions granted, error otherwise.
	RequestPermission(ctx context.Context) error

	// Close cleans up notification system resources.
	Close() error
}

// Config contains notification system configuration.
type Config struct {
	// AppName is the application name shown in notifications
	AppName string

	// AppID is used when a notification carries no app id of its own
	AppID string

	// Timeout for notification operations
	Timeout time.Duration
}

// DefaultConfig returns default notification configuration.
func DefaultConfig() Config {
	return Config{
		AppName: "sysext",
		Timeout: 5 * time.Second,
	}
}

// New creates a notifier backed by the host's desktop notification service.
func New(config Config) (Notifier, error) {
	return newBeeepNotifier(config), nil
}

// Display shows n with a default notifier and waits for the hand-off to the
// desktop to finish.
func Display(ctx context.Context, n *SimpleNotification) error {
	notifier, err := New(DefaultConfig())
	if err != nil {
		return err
	}
	defer func() { _ = notifier.Close() }()

	return notifier.Send(ctx, n)
}

// Sentinel errors.
var (
	ErrNotAvailable       = errors.New("OS notifications not available")
	ErrPermissionDenied   = errors.New("notification permissions denied")
	ErrNotificationFailed = errors.New("failed to send notification")
	ErrTimeout            = errors.New("notification timeout")
)
