// SPDX-License-Identifier: MIT
// Package: terra/config
//
// logger.go — builds a *slog.Logger from the Logger section.

package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"
)

// Time layouts per clock style.
const (
	layout12 = "2006-01-02 03:04:05 PM MST"
	layout24 = "2006-01-02 15:04:05 MST"
)

// New returns a text logger writing to w and, when File is set, appending
// to that file too. The returned closer releases the file; it is a no-op
// when no file is configured.
func (l Logger) New(w io.Writer) (*slog.Logger, io.Closer, error) {
	level, err := parseLevel(l.Level)
	if err != nil {
		return nil, nil, err
	}
	loc, err := time.LoadLocation(l.Timezone)
	if err != nil {
		return nil, nil, fmt.Errorf("Logger.timezone %q: %w", l.Timezone, ErrInvalidConfig)
	}
	layout := layout12
	if l.ClockStyle == Clock24 {
		layout = layout24
	}

	var closer io.Closer = nopCloser{}
	if l.File != "" {
		f, err := os.OpenFile(l.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		fmt.Fprintf(f, "\n%s Logger Initialized @ %s %s\n",
			strings.Repeat("=", 20), time.Now().In(loc).Format(layout), strings.Repeat("=", 20))
		w = io.MultiWriter(w, f)
		closer = f
	}

	h := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if len(groups) == 0 && a.Key == slog.TimeKey && a.Value.Kind() == slog.KindTime {
				return slog.String(slog.TimeKey, a.Value.Time().In(loc).Format(layout))
			}
			return a
		},
	})

	return slog.New(h), closer, nil
}

// parseLevel accepts slog names plus the WARNING, SUCCESS and CRITICAL
// spellings of older config files.
func parseLevel(s string) (slog.Level, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "WARNING":
		return slog.LevelWarn, nil
	case "SUCCESS":
		return slog.LevelInfo, nil
	case "CRITICAL":
		return slog.LevelError, nil
	}
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("Logger.log_level %q: %w", s, ErrInvalidConfig)
	}
	return lvl, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
