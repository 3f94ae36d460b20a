// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package notify

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/gen2brain/beeep"
	"github.com/jongio/sysext/logutil"
	"github.com/jongio/sysext/metrics"
)

const component = "notify"

// beeep keeps the application name in a package variable.
var appNameMu sync.Mutex

// beeepNotifier implements Notifier using the cross-platform beeep library.
type beeepNotifier struct {
	config Config
	notify func(title, message, icon string) error
}

func newBeeepNotifier(config Config) *beeepNotifier {
	return &beeepNotifier{
		config: config,
		notify: func(title, message, icon string) error {
			return beeep.Notify(title, message, icon)
		},
	}
}

// Send hands the notification to beeep. The app logo is used as the icon;
// hero images are not supported by beeep and are dropped.
func (n *beeepNotifier) Send(ctx context.Context, notification *SimpleNotification) (err error) {
	defer func(start time.Time) { metrics.Observe(component, "send", start, err) }(time.Now())

	if notification == nil {
		return fmt.Errorf("%w: nil notification", ErrNotificationFailed)
	}

	log := logutil.NewLogger(component).WithOperation("send").WithFields("title", notification.title)
	if notification.heroImage != "" {
		log.Debug("hero image not supported, ignoring", "hero_image", notification.heroImage)
	}

	if n.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, n.config.Timeout)
		defer cancel()
	}

	appName := notification.appID
	if appName == "" {
		appName = n.config.AppID
	}
	if appName == "" {
		appName = n.config.AppName
	}

	done := make(chan error, 1)
	go func() {
		appNameMu.Lock()
		defer appNameMu.Unlock()
		if appName != "" {
			beeep.AppName = appName
		}
		done <- n.notify(notification.title, notification.Body(), notification.appLogo)
	}()

	select {
	case err := <-done:
		if err != nil {
			log.Warn("notification failed", "error", err)
			return fmt.Errorf("%w: %w", ErrNotificationFailed, err)
		}
		log.Debug("notification sent")
		return nil
	case <-ctx.Done():
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return ErrTimeout
		}
		return ctx.Err()
	}
}

// IsAvailable returns true since beeep handles platform detection internally.
func (n *beeepNotifier) IsAvailable() bool {
	return true
}

// RequestPermission is a no-op since beeep handles permissions internally.
func (n *beeepNotifier) RequestPermission(_ context.Context) error {
	return nil
}

// Close is a no-op for beeep.
func (n *beeepNotifier) Close() error {
	return nil
}
