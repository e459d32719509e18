// Copyright 2024 The Stratos Authors.
//
// Use of this software is governed by the Apache License, Version 2.0
// included in the /LICENSE file.

// Package log provides a minimal context-aware logging facade. Call
// sites attach tags to the context via logtags; the tags are rendered
// as a bracketed prefix on every line, e.g.
//
//	[ext=ipnet.so] loaded extension library
package log

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/cockroachdb/logtags"
	"github.com/cockroachdb/redact"
)

var logger = log.New(os.Stderr, "", log.LstdFlags|log.LUTC)

type severity string

const (
	severityInfo    severity = "I"
	severityWarning severity = "W"
	severityError   severity = "E"
)

func output(ctx context.Context, sev severity, format string, args ...interface{}) {
	var prefix string
	if tags := logtags.FromContext(ctx); tags != nil {
		prefix = "[" + tags.String() + "] "
	}
	msg := redact.Sprintf(format, args...)
	logger.Output(3, fmt.Sprintf("%s %s%s", sev, prefix, msg.StripMarkers()))
}

// Infof logs an informational message with the tags from ctx.
func Infof(ctx context.Context, format string, args ...interface{}) {
	output(ctx, severityInfo, format, args...)
}

// Warningf logs a warning with the tags from ctx.
func Warningf(ctx context.Context, format string, args ...interface{}) {
	output(ctx, severityWarning, format, args...)
}

// Errorf logs an error with the tags from ctx.
func Errorf(ctx context.Context, format string, args ...interface{}) {
	output(ctx, severityError, format, args...)
}
