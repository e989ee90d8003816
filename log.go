// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package netmath

import logging "github.com/op/go-logging"

// LoggerName is the go-logging module name used by this package.
const LoggerName = "netmath"

var log = logging.MustGetLogger(LoggerName)
