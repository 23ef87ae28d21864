// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package host

import (
	"bytes"
	"math/bits"

	"github.com/bitmark-inc/recordd/address"
	"github.com/bitmark-inc/recordd/fault"
	"github.com/bitmark-inc/recordd/runtime"
)

// MaxCallDepth - nesting limit, the top level instruction is depth 1
const MaxCallDepth = 4

// the state of one account when a frame started (or last called out)
type snapshot struct {
	key      address.Address
	live     *runtime.AccountState
	before   *runtime.AccountState
	signer   bool
	writable bool
}

// one program invocation
type frame struct {
	host      *Host
	arena     *arena
	programID address.Address
	depth     int
	accounts  []snapshot
}

func (f *frame) lookup(key address.Address) (snapshot, bool) {
	for _, s := range f.accounts {
		if s.key == key {
			return s, true
		}
	}
	return snapshot{}, false
}

// take a copy of every account the frame can see
func (f *frame) capture(infos []*runtime.AccountInfo) {
	f.accounts = f.accounts[:0]
	for _, info := range infos {
		found := false
		for i := range f.accounts {
			if f.accounts[i].key == info.Key {
				f.accounts[i].signer = f.accounts[i].signer || info.IsSigner
				f.accounts[i].writable = f.accounts[i].writable || info.IsWritable
				found = true
				break
			}
		}
		if found {
			continue
		}
		f.accounts = append(f.accounts, snapshot{
			key:      info.Key,
			live:     info.AccountState,
			before:   info.AccountState.Clone(),
			signer:   info.IsSigner,
			writable: info.IsWritable,
		})
	}
}

// start a new baseline after a nested call
func (f *frame) refresh() {
	for i := range f.accounts {
		f.accounts[i].before = f.accounts[i].live.Clone()
	}
}

// check the changes made by the frame's program since the baseline
func (f *frame) verify() error {
	var beforeHigh, beforeLow, afterHigh, afterLow, carry uint64

	for _, s := range f.accounts {
		before := s.before
		after := s.live

		dataChanged := !bytes.Equal(before.Data, after.Data)
		ownerChanged := before.Owner != after.Owner
		lamportsChanged := before.Lamports != after.Lamports

		if !s.writable && (dataChanged || ownerChanged || lamportsChanged) {
			return fault.ErrReadonlyModified
		}
		if (dataChanged || ownerChanged) && before.Owner != f.programID {
			return fault.ErrExternalDataModified
		}
		if ownerChanged && !isZeroed(after.Data) {
			return fault.ErrOwnerChangeRejected
		}
		if after.Lamports < before.Lamports && before.Owner != f.programID {
			return fault.ErrExternalAccountDebited
		}

		beforeLow, carry = bits.Add64(beforeLow, before.Lamports, 0)
		beforeHigh += carry
		afterLow, carry = bits.Add64(afterLow, after.Lamports, 0)
		afterHigh += carry
	}

	if beforeHigh != afterHigh || beforeLow != afterLow {
		return fault.ErrUnbalancedInstruction
	}
	return nil
}

// an account can only be handed to a new owner before any state is
// written into it
func isZeroed(data []byte) bool {
	for _, b := range data {
		if 0 != b {
			return false
		}
	}
	return true
}

// InvokeSigned - run a nested instruction on behalf of the frame's program
//
// a callee account may be writable only if the caller has it writable
// and a signer only if the caller has it as signer or it is derived
// from one of the seed lists under the caller's program id
func (f *frame) InvokeSigned(instruction runtime.Instruction, signerSeeds [][][]byte) error {
	if f.depth >= MaxCallDepth {
		return fault.ErrCallDepthExceeded
	}

	if err := f.verify(); nil != err {
		return err
	}

	derived := make(map[address.Address]bool, len(signerSeeds))
	for _, seeds := range signerSeeds {
		a, err := address.CreateProgramAddress(seeds, f.programID)
		if nil != err {
			return err
		}
		derived[a] = true
	}

	signers := make(map[address.Address]bool)
	for _, meta := range instruction.Accounts {
		caller, ok := f.lookup(meta.Key)
		if !ok {
			return fault.ErrNotEnoughAccountKeys
		}
		if meta.IsWritable && !caller.writable {
			return fault.ErrPrivilegeEscalation
		}
		if meta.IsSigner {
			if !caller.signer && !derived[meta.Key] {
				return fault.ErrPrivilegeEscalation
			}
			signers[meta.Key] = true
		}
	}

	err := f.host.run(f.arena, instruction, signers, f.depth+1)
	if nil != err {
		return err
	}

	f.refresh()
	return nil
}
