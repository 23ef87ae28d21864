// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fixtures - shared setup for package tests
package fixtures

import (
	"os"

	"github.com/bitmark-inc/logger"
)

// test directories and log channel
const (
	TestingDirName = "testing"
	LogCategory    = "testing"
)

// SetupTestLogger - start logging into the testing directory
func SetupTestLogger() {
	removeFiles()
	_ = os.Mkdir(TestingDirName, 0700)

	logging := logger.Configuration{
		Directory: TestingDirName,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	_ = logger.Initialise(logging)
}

// TeardownTestLogger - stop logging and remove the testing directory
func TeardownTestLogger() {
	logger.Finalise()
	removeFiles()
}

func removeFiles() {
	_ = os.RemoveAll(TestingDirName)
}
