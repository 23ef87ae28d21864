// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package host - the execution environment for programs
//
// a transaction is verified, every account it references is checked
// out of storage into a per-request arena, each instruction is run
// by the program it addresses and, only if all of them succeed, the
// writable accounts are written back in a single batch
//
// programs may call other programs through the runtime.Invoker of
// their context; the host checks after every invocation that the
// program only changed what it was allowed to
package host
