// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"time"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/recordd/account"
	"github.com/bitmark-inc/recordd/fault"
	"github.com/bitmark-inc/recordd/host"
	"github.com/bitmark-inc/recordd/runtime"
)

// sign and run instructions as one transaction, exit on failure
func execute(log *logger.L, h *host.Host, keys []*account.PrivateKey, instructions ...runtime.Instruction) {
	message := host.Message{
		Nonce:        uint64(time.Now().UnixNano()),
		Instructions: instructions,
	}
	tx := host.NewTransaction(message, keys...)

	log.Debugf("transaction: %x", message.Pack())

	err := h.Execute(tx)
	if nil != err {
		log.Errorf("transaction failed: %s", err)
		exitwithstatus.Message("transaction failed: %s  (code: %d)", err, fault.CodeOf(err))
	}
}
