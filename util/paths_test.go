// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/recordd/util"
)

func TestEnsureAbsolute(t *testing.T) {
	assert.Equal(t, "/data/recordd.key", util.EnsureAbsolute("/data", "recordd.key"), "relative")
	assert.Equal(t, "/data/log", util.EnsureAbsolute("/data", "./log/"), "not cleaned")
	assert.Equal(t, "/etc/recordd.key", util.EnsureAbsolute("/data", "/etc/recordd.key"), "absolute changed")
	assert.Equal(t, "/recordd.key", util.EnsureAbsolute("/data", "../recordd.key"), "parent")
}

func TestEnsureFileExists(t *testing.T) {
	dir, err := ioutil.TempDir("", "paths")
	assert.Nil(t, err, "temp dir")
	defer os.RemoveAll(dir)

	name := filepath.Join(dir, "present")
	assert.False(t, util.EnsureFileExists(name), "missing file reported")

	err = ioutil.WriteFile(name, []byte("x"), 0600)
	assert.Nil(t, err, "write")
	assert.True(t, util.EnsureFileExists(name), "file not found")
	assert.True(t, util.EnsureFileExists(dir), "directory not found")
}
