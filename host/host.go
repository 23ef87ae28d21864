// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package host

import (
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/recordd/address"
	"github.com/bitmark-inc/recordd/fault"
	"github.com/bitmark-inc/recordd/rent"
	"github.com/bitmark-inc/recordd/runtime"
	"github.com/bitmark-inc/recordd/storage"
	"github.com/bitmark-inc/recordd/system"
	"github.com/bitmark-inc/recordd/token"
)

// Host - dispatches transactions to programs
//
// Execute calls are serialised so a request has exclusive access to
// every account it touches
type Host struct {
	sync.Mutex
	log      *logger.L
	rent     rent.Rent
	programs map[address.Address]runtime.Program
}

// New - create a host with the built-in system and token components
//
// storage must be initialised before any transaction is executed
func New(r rent.Rent) *Host {
	h := &Host{
		log:      logger.New("host"),
		rent:     r,
		programs: make(map[address.Address]runtime.Program),
	}
	h.programs[system.ID] = system.New()
	h.programs[token.ID] = token.New()
	return h
}

// Register - make a program callable at an address
func (h *Host) Register(programID address.Address, program runtime.Program) error {
	h.Lock()
	defer h.Unlock()

	if _, ok := h.programs[programID]; ok {
		return fault.ErrAlreadyInitialised
	}
	h.programs[programID] = program
	h.log.Infof("registered program: %s", programID)
	return nil
}

// Rent - the fee schedule given to programs
func (h *Host) Rent() rent.Rent {
	return h.rent
}

// Execute - verify and run a transaction
//
// either every instruction succeeds and all writable accounts are
// stored, or nothing is stored
func (h *Host) Execute(tx *Transaction) error {
	h.Lock()
	defer h.Unlock()

	signers, err := tx.Verify()
	if nil != err {
		h.log.Warnf("transaction rejected: %s", err)
		return err
	}

	a := newArena()
	for i, instruction := range tx.Message.Instructions {
		for _, meta := range instruction.Accounts {
			if meta.IsSigner && !signers[meta.Key] {
				h.log.Warnf("instruction: %d missing signature for: %s", i, meta.Key)
				return fault.ErrUnauthorised
			}
			if meta.IsWritable {
				a.markWritable(meta.Key)
			}
		}

		err := h.run(a, instruction, signers, 1)
		if nil != err {
			h.log.Infof("instruction: %d program: %s failed: %s", i, instruction.ProgramID, err)
			return err
		}
	}

	err = a.commit()
	if nil != err {
		h.log.Errorf("commit failed: %s", err)
		return err
	}
	h.log.Debugf("executed: %d instructions", len(tx.Message.Instructions))
	return nil
}

// run one instruction in a new frame
func (h *Host) run(a *arena, instruction runtime.Instruction, signers map[address.Address]bool, depth int) error {
	if depth > MaxCallDepth {
		return fault.ErrCallDepthExceeded
	}
	program, ok := h.programs[instruction.ProgramID]
	if !ok {
		return fault.ErrUnknownProgram
	}

	infos := make([]*runtime.AccountInfo, 0, len(instruction.Accounts))
	for _, meta := range instruction.Accounts {
		state, err := a.load(meta.Key)
		if nil != err {
			return err
		}
		infos = append(infos, &runtime.AccountInfo{
			Key:          meta.Key,
			IsSigner:     meta.IsSigner && signers[meta.Key],
			IsWritable:   meta.IsWritable,
			AccountState: state,
		})
	}

	f := &frame{
		host:      h,
		arena:     a,
		programID: instruction.ProgramID,
		depth:     depth,
	}
	f.capture(infos)

	ctx := &runtime.Context{
		ProgramID: instruction.ProgramID,
		Accounts:  infos,
		Invoker:   f,
		Rent:      h.rent,
		Log:       h.log,
	}
	err := program.Process(ctx, instruction.Data)
	if nil != err {
		return err
	}
	return f.verify()
}

// Fund - credit an account from outside any program
func (h *Host) Fund(key address.Address, lamports uint64) error {
	h.Lock()
	defer h.Unlock()

	a := newArena()
	state, err := a.load(key)
	if nil != err {
		return err
	}
	if state.Lamports+lamports < state.Lamports {
		return fault.ErrTokenOverflow
	}
	state.Lamports += lamports
	a.markWritable(key)

	h.log.Infof("fund: %s with: %d lamports", key, lamports)
	return a.commit()
}

// Account - a committed account
//
// an address never written is reported as an empty system owned
// account with found == false
func (h *Host) Account(key address.Address) (*runtime.AccountState, bool, error) {
	return storage.GetAccount(key)
}
