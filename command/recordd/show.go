// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"

	"github.com/bitmark-inc/exitwithstatus"

	"github.com/bitmark-inc/recordd/address"
	"github.com/bitmark-inc/recordd/counter"
	"github.com/bitmark-inc/recordd/host"
	"github.com/bitmark-inc/recordd/review"
	"github.com/bitmark-inc/recordd/runtime"
	"github.com/bitmark-inc/recordd/token"
)

func printJSON(title string, message interface{}) {
	b, err := json.MarshalIndent(message, "", "  ")
	if nil != err {
		exitwithstatus.Message("Error: printjson marshall error: %s", err)
	}

	if "" == title {
		fmt.Printf("%s\n", b)
	} else {
		fmt.Printf("%s:\n%s\n", title, b)
	}
}

func fetch(h *host.Host, a address.Address) *runtime.AccountState {
	state, _, err := h.Account(a)
	if nil != err {
		exitwithstatus.Message("account: %s error: %s", a, err)
	}
	return state
}

func showBalance(h *host.Host, a address.Address) {
	state, found, err := h.Account(a)
	if nil != err {
		exitwithstatus.Message("account: %s error: %s", a, err)
	}
	printJSON("", struct {
		Address    address.Address `json:"address"`
		Found      bool            `json:"found"`
		Lamports   uint64          `json:"lamports"`
		Owner      address.Address `json:"owner"`
		Executable bool            `json:"executable"`
		DataLength int             `json:"dataLength"`
		RentExempt bool            `json:"rentExempt"`
	}{
		Address:    a,
		Found:      found,
		Lamports:   state.Lamports,
		Owner:      state.Owner,
		Executable: state.Executable,
		DataLength: len(state.Data),
		RentExempt: h.Rent().IsExempt(state.Lamports, uint64(len(state.Data))),
	})
}

func showCounter(h *host.Host, a address.Address) {
	state := fetch(h, a)
	if counter.ID != state.Owner {
		exitwithstatus.Message("account: %s is not a counter", a)
	}
	c, err := counter.UnpackCounter(state.Data)
	if nil != err {
		exitwithstatus.Message("counter: %s error: %s", a, err)
	}
	fmt.Printf("counter: %s value: %d\n", a, c.Uint32())
}

func showReview(h *host.Host, initializer address.Address, title string) {
	a, _, err := review.RecordAddress(initializer, title)
	if nil != err {
		exitwithstatus.Message("review: %q error: %s", title, err)
	}
	state := fetch(h, a)
	if review.ID != state.Owner {
		exitwithstatus.Message("review: %q by: %s not found", title, initializer)
	}
	r, err := review.UnpackReview(state.Data)
	if nil != err {
		exitwithstatus.Message("review: %s error: %s", a, err)
	}
	printJSON("review "+a.String(), r)
}

// decoded by size, the two layouts differ in length
func showToken(h *host.Host, a address.Address) {
	state := fetch(h, a)
	if token.ID != state.Owner {
		exitwithstatus.Message("account: %s is not owned by the token component", a)
	}

	switch len(state.Data) {
	case token.MintSize:
		mint, err := token.UnpackMint(state.Data)
		if nil != err {
			exitwithstatus.Message("mint: %s error: %s", a, err)
		}
		printJSON("mint "+a.String(), mint)
	case token.AccountSize:
		acc, err := token.UnpackAccount(state.Data)
		if nil != err {
			exitwithstatus.Message("token account: %s error: %s", a, err)
		}
		printJSON("token account "+a.String(), acc)
	default:
		exitwithstatus.Message("account: %s unknown token layout", a)
	}
}
