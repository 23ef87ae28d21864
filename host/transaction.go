// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package host

import (
	"github.com/bitmark-inc/recordd/account"
	"github.com/bitmark-inc/recordd/address"
	"github.com/bitmark-inc/recordd/fault"
	"github.com/bitmark-inc/recordd/runtime"
	"github.com/bitmark-inc/recordd/util"
)

// limits on a message
const (
	maxInstructions = 64
	maxAccountMetas = 64
	maxDataLength   = 10240
)

// flag bits of a packed account reference
const (
	metaSigner   = 0x01
	metaWritable = 0x02
)

// Message - the signed part of a transaction
//
// the nonce lets a client submit identical instruction lists as
// distinct messages
type Message struct {
	Nonce        uint64                `json:"nonce"`
	Instructions []runtime.Instruction `json:"instructions"`
}

// Signature - one signer of a message
type Signature struct {
	Signer    address.Address   `json:"signer"`
	Signature account.Signature `json:"signature"`
}

// Transaction - a message and its signatures
type Transaction struct {
	Message    Message     `json:"message"`
	Signatures []Signature `json:"signatures"`
}

// Pack - the bytes that are signed
//
//   nonce ++ count ++ [programID ++ count ++ [key ++ flags] ++ length ++ data]
func (m *Message) Pack() []byte {
	buffer := util.AppendUint64(nil, m.Nonce)
	buffer = util.AppendUint32(buffer, uint32(len(m.Instructions)))
	for _, instruction := range m.Instructions {
		buffer = append(buffer, instruction.ProgramID[:]...)
		buffer = util.AppendUint32(buffer, uint32(len(instruction.Accounts)))
		for _, meta := range instruction.Accounts {
			buffer = append(buffer, meta.Key[:]...)
			flags := uint8(0)
			if meta.IsSigner {
				flags |= metaSigner
			}
			if meta.IsWritable {
				flags |= metaWritable
			}
			buffer = util.AppendUint8(buffer, flags)
		}
		buffer = util.AppendUint32(buffer, uint32(len(instruction.Data)))
		buffer = append(buffer, instruction.Data...)
	}
	return buffer
}

// UnpackMessage - decode a packed message
func UnpackMessage(buffer []byte) (*Message, error) {
	u := util.NewUnpacker(buffer, fault.ErrMalformedTransaction)
	m := &Message{
		Nonce: u.ReadUint64(),
	}
	count := u.ReadUint32()
	if nil != u.Err() {
		return nil, u.Err()
	}
	if count > maxInstructions {
		return nil, fault.ErrMalformedTransaction
	}

	for i := uint32(0); i < count; i += 1 {
		instruction := runtime.Instruction{}
		copy(instruction.ProgramID[:], u.ReadBytes(address.Length))

		metaCount := u.ReadUint32()
		if nil != u.Err() {
			return nil, u.Err()
		}
		if metaCount > maxAccountMetas {
			return nil, fault.ErrMalformedTransaction
		}
		for j := uint32(0); j < metaCount; j += 1 {
			meta := runtime.AccountMeta{}
			copy(meta.Key[:], u.ReadBytes(address.Length))
			flags := u.ReadUint8()
			if 0 != flags&^(metaSigner|metaWritable) {
				return nil, fault.ErrMalformedTransaction
			}
			meta.IsSigner = 0 != flags&metaSigner
			meta.IsWritable = 0 != flags&metaWritable
			instruction.Accounts = append(instruction.Accounts, meta)
		}

		length := u.ReadUint32()
		if nil != u.Err() {
			return nil, u.Err()
		}
		if length > maxDataLength {
			return nil, fault.ErrMalformedTransaction
		}
		instruction.Data = u.ReadBytes(int(length))
		m.Instructions = append(m.Instructions, instruction)
	}

	if err := u.Finish(); nil != err {
		return nil, err
	}
	return m, nil
}

// NewTransaction - sign a message with every key given
func NewTransaction(message Message, keys ...*account.PrivateKey) *Transaction {
	packed := message.Pack()
	tx := &Transaction{
		Message:    message,
		Signatures: make([]Signature, 0, len(keys)),
	}
	for _, key := range keys {
		tx.Signatures = append(tx.Signatures, Signature{
			Signer:    key.Account().Address(),
			Signature: key.Sign(packed),
		})
	}
	return tx
}

// Verify - check every signature, returning the set of signers
func (tx *Transaction) Verify() (map[address.Address]bool, error) {
	if 0 == len(tx.Message.Instructions) || len(tx.Message.Instructions) > maxInstructions {
		return nil, fault.ErrMalformedTransaction
	}

	packed := tx.Message.Pack()
	signers := make(map[address.Address]bool, len(tx.Signatures))
	for _, s := range tx.Signatures {
		err := account.FromAddress(s.Signer).CheckSignature(packed, s.Signature)
		if nil != err {
			return nil, err
		}
		signers[s.Signer] = true
	}
	return signers, nil
}
