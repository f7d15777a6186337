// Copyright 2020 thinkgos (thinkgo@aliyun.com).  All rights reserved.
// Use of this source code is governed by a version 3 of the GNU General
// Public License, license that can be found in the LICENSE file.

package clog

import (
	"log"
	"os"
	"sync/atomic"
)

// LogProvider is the pluggable backend Clog dispatches to: Critical for a
// condition the controller cannot recover from, Error for a failed
// request, Warn for a dropped frame or retried operation, Debug for
// wire-level tracing (frames, SREQ/SRSP pairs, NV reads).
type LogProvider interface {
	Critical(format string, v ...interface{})
	Error(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Debug(format string, v ...interface{})
}

// Clog is the logging handle every package in this driver is constructed
// with (znp, controller, uart), so a caller can swap the
// backend or silence output without touching call sites.
type Clog struct {
	provider LogProvider
	// is log output enabled,1: enable, 0: disable
	has uint32
}

// NewLogger creates a Clog backed by the standard library logger, tagged
// with prefix (typically a package or component name).
func NewLogger(prefix string) Clog {
	return Clog{
		defaultLogger{
			log.New(os.Stdout, prefix, log.LstdFlags),
		},
		0,
	}
}

// LogMode enables or disables output; a disabled Clog drops every call
// without reaching the provider, so verbose wire tracing is one flag away
// from silent.
func (sf *Clog) LogMode(enable bool) {
	if enable {
		atomic.StoreUint32(&sf.has, 1)
	} else {
		atomic.StoreUint32(&sf.has, 0)
	}
}

// SetLogProvider swaps the backend Clog dispatches to, e.g. to
// NewCharmLogger for structured output.
func (sf *Clog) SetLogProvider(p LogProvider) {
	if p != nil {
		sf.provider = p
	}
}

// Critical logs a condition the controller cannot recover from.
func (sf Clog) Critical(format string, v ...interface{}) {
	if atomic.LoadUint32(&sf.has) == 1 {
		sf.provider.Critical(format, v...)
	}
}

// Error logs a failed request or delivery.
func (sf Clog) Error(format string, v ...interface{}) {
	if atomic.LoadUint32(&sf.has) == 1 {
		sf.provider.Error(format, v...)
	}
}

// Warn logs a dropped frame or a retried operation.
func (sf Clog) Warn(format string, v ...interface{}) {
	if atomic.LoadUint32(&sf.has) == 1 {
		sf.provider.Warn(format, v...)
	}
}

// Debug logs wire-level detail: frames, SREQ/SRSP pairs, NV reads.
func (sf Clog) Debug(format string, v ...interface{}) {
	if atomic.LoadUint32(&sf.has) == 1 {
		sf.provider.Debug(format, v...)
	}
}

// defaultLogger is the stdlib-backed LogProvider NewLogger constructs.
type defaultLogger struct {
	*log.Logger
}

var _ LogProvider = (*defaultLogger)(nil)

func (sf defaultLogger) Critical(format string, v ...interface{}) {
	sf.Printf("[C]: "+format, v...)
}

func (sf defaultLogger) Error(format string, v ...interface{}) {
	sf.Printf("[E]: "+format, v...)
}

func (sf defaultLogger) Warn(format string, v ...interface{}) {
	sf.Printf("[W]: "+format, v...)
}

func (sf defaultLogger) Debug(format string, v ...interface{}) {
	sf.Printf("[D]: "+format, v...)
}
