// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"crypto/rand"
	"fmt"
	"io/ioutil"
	"os"
	"strconv"
	"strings"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/recordd/account"
	"github.com/bitmark-inc/recordd/address"
	"github.com/bitmark-inc/recordd/counter"
	"github.com/bitmark-inc/recordd/host"
	"github.com/bitmark-inc/recordd/relay"
	"github.com/bitmark-inc/recordd/review"
	"github.com/bitmark-inc/recordd/runtime"
	"github.com/bitmark-inc/recordd/system"
	"github.com/bitmark-inc/recordd/token"
	"github.com/bitmark-inc/recordd/util"
)

// built-in components addressable by name
var programs = map[string]address.Address{
	"system":  system.ID,
	"token":   token.ID,
	"counter": counter.ID,
	"review":  review.ID,
	"relay":   relay.ID,
}

// setup command handler
//
// commands that do not need the configuration file or the database
func processSetupCommand(program string, arguments []string) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
		arguments = arguments[1:]
	}

	switch command {
	case "generate-key", "key":
		if 1 != len(arguments) {
			exitwithstatus.Message("missing key file argument")
		}
		fileName := arguments[0]
		if util.EnsureFileExists(fileName) {
			exitwithstatus.Message("generate key: %q error: file already exists", fileName)
		}

		key, err := account.NewPrivateKey(rand.Reader)
		if nil != err {
			exitwithstatus.Message("generate key: %q error: %s", fileName, err)
		}
		if err := ioutil.WriteFile(fileName, []byte(key.String()+"\n"), 0600); nil != err {
			_ = os.Remove(fileName)
			exitwithstatus.Message("generate key: %q error: %s", fileName, err)
		}
		fmt.Printf("generated key: %q for address: %s\n", fileName, key.Account().Address())

	case "derive", "d":
		if len(arguments) < 1 {
			exitwithstatus.Message("missing program argument")
		}
		programID := parseProgram(arguments[0])
		seeds := make([][]byte, 0, len(arguments)-1)
		for _, s := range arguments[1:] {
			seeds = append(seeds, seedBytes(s))
		}
		a, bump, err := address.FindProgramAddress(seeds, programID)
		if nil != err {
			exitwithstatus.Message("derive error: %s", err)
		}
		printJSON("", struct {
			Program address.Address `json:"program"`
			Address address.Address `json:"address"`
			Bump    uint8           `json:"bump"`
		}{programID, a, bump})

	case "relay-authority":
		a, bump, err := relay.Authority()
		if nil != err {
			exitwithstatus.Message("relay authority error: %s", err)
		}
		fmt.Printf("relay authority: %s bump: %d\n", a, bump)

	case "version", "v":
		fmt.Printf("%s\n", version)

	case "help", "h", "?", "", " ":
		if "help" != command && "h" != command && "?" != command {
			fmt.Printf("error: missing command\n")
		}
		usage(program)
		exitwithstatus.Exit(1)

	default:
		return false // defer processing until configuration is read
	}

	// indicate processing complete and perform normal exit from main
	return true
}

func usage(program string) {
	fmt.Printf("usage: %s [--help] [--verbose] [--quiet] --config-file=FILE [--set=NAME=VALUE] command arguments...\n", program)

	fmt.Printf("supported commands:\n\n")
	fmt.Printf("  help                       (h)      - display this message\n\n")
	fmt.Printf("  version                    (v)      - display version string\n\n")

	fmt.Printf("  generate-key FILE          (key)    - create a signing key in FILE\n\n")
	fmt.Printf("  derive PROGRAM SEED...     (d)      - find the derived address and bump for seeds\n")
	fmt.Printf("                                        PROGRAM is a name or an address, a SEED of\n")
	fmt.Printf("                                        the form @ADDRESS is the address bytes\n\n")
	fmt.Printf("  relay-authority                     - display the relay's derived authority\n\n")

	fmt.Printf("  config-test                (cfg)    - just check the configuration file\n\n")
	fmt.Printf("  address                             - display the address of the configured key\n\n")

	fmt.Printf("  fund ADDRESS LAMPORTS               - credit an account\n")
	fmt.Printf("  balance ADDRESS                     - display an account\n\n")

	fmt.Printf("  counter-create                      - create a counter paid by the configured key\n")
	fmt.Printf("  counter ADDRESS OP [N]              - OP is increment, decrement, update or reset\n")
	fmt.Printf("  counter-show ADDRESS                - display a counter\n\n")

	fmt.Printf("  review-add TITLE DESCRIPTION RATING LOCATION\n")
	fmt.Printf("                                      - add a review by the configured key\n")
	fmt.Printf("  review-update TITLE DESCRIPTION RATING LOCATION\n")
	fmt.Printf("                                      - change a review by the configured key\n")
	fmt.Printf("  review-show INITIALIZER TITLE       - display a review\n\n")

	fmt.Printf("  token-create-mint DECIMALS          - create a mint with the configured key as authority\n")
	fmt.Printf("  token-create-account MINT OWNER     - create a token account\n")
	fmt.Printf("  token-mint MINT DESTINATION AMOUNT  - issue tokens\n")
	fmt.Printf("  token-show ADDRESS                  - display a mint or token account\n\n")

	fmt.Printf("  relay-transfer SOURCE MINT DESTINATION AMOUNT\n")
	fmt.Printf("                                      - move tokens held by the relay authority\n")
	fmt.Printf("                                        AMOUNT 0 moves the whole balance\n\n")
}

// configuration file enquiry commands
// have configuration file read and decoded, but nothing else
func processConfigCommand(arguments []string, options *Configuration) bool {

	command := arguments[0]

	switch command {
	case "config-test", "cfg":
		printJSON("", options)

	case "address":
		key := readKey(options.KeyFile)
		fmt.Printf("%s\n", key.Account().Address())

	default: // unknown commands fall through to data command
		return false
	}

	// indicate processing complete and perform normal exit from main
	return true
}

// data command handler
//
// storage is open and the components are registered
func processDataCommand(log *logger.L, h *host.Host, arguments []string, options *Configuration, verbose bool) {

	command := arguments[0]
	arguments = arguments[1:]

	log.Infof("command: %s arguments: %q", command, arguments)

	switch command {
	case "fund":
		needArguments(command, arguments, 2)
		a := parseAddress(arguments[0])
		lamports := parseUint64(arguments[1])
		if err := h.Fund(a, lamports); nil != err {
			exitwithstatus.Message("fund error: %s", err)
		}
		showBalance(h, a)

	case "balance":
		needArguments(command, arguments, 1)
		showBalance(h, parseAddress(arguments[0]))

	case "counter-create":
		payer := readKey(options.KeyFile)
		counterKey := newKey()
		c := counterKey.Account().Address()
		lamports := h.Rent().MinimumBalance(counter.Size)
		execute(log, h, []*account.PrivateKey{payer, counterKey}, counter.Create(payer.Account().Address(), c, lamports))
		fmt.Printf("counter: %s\n", c)

	case "counter":
		if len(arguments) < 2 {
			exitwithstatus.Message("%s: requires ADDRESS and OP arguments", command)
		}
		c := parseAddress(arguments[0])
		n := uint32(0)
		if len(arguments) > 2 {
			n = parseUint32(arguments[2])
		}
		var instruction = counter.Reset(c)
		switch arguments[1] {
		case "increment", "inc":
			instruction = counter.Increment(c, n)
		case "decrement", "dec":
			instruction = counter.Decrement(c, n)
		case "update", "set":
			instruction = counter.Update(c, n)
		case "reset":
		default:
			exitwithstatus.Message("%s: unknown operation: %q", command, arguments[1])
		}
		execute(log, h, nil, instruction)
		showCounter(h, c)

	case "counter-show":
		needArguments(command, arguments, 1)
		showCounter(h, parseAddress(arguments[0]))

	case "review-add", "review-update":
		needArguments(command, arguments, 4)
		key := readKey(options.KeyFile)
		initializer := key.Account().Address()
		p := review.Payload{
			Title:       arguments[0],
			Description: arguments[1],
			Rating:      parseUint8(arguments[2]),
			Location:    arguments[3],
		}
		build := review.AddReview
		if "review-update" == command {
			build = review.UpdateReview
		}
		instruction, err := build(initializer, p)
		if nil != err {
			exitwithstatus.Message("%s error: %s", command, err)
		}
		execute(log, h, []*account.PrivateKey{key}, instruction)
		showReview(h, initializer, p.Title)

	case "review-show":
		needArguments(command, arguments, 2)
		showReview(h, parseAddress(arguments[0]), arguments[1])

	case "token-create-mint":
		needArguments(command, arguments, 1)
		key := readKey(options.KeyFile)
		payer := key.Account().Address()
		mintKey := newKey()
		mint := mintKey.Account().Address()
		execute(log, h, []*account.PrivateKey{key, mintKey},
			system.CreateAccount(payer, mint, h.Rent().MinimumBalance(token.MintSize), token.MintSize, token.ID),
			token.InitializeMint(mint, parseUint8(arguments[0]), payer, nil),
		)
		fmt.Printf("mint: %s\n", mint)

	case "token-create-account":
		needArguments(command, arguments, 2)
		key := readKey(options.KeyFile)
		payer := key.Account().Address()
		mint := parseAddress(arguments[0])
		owner := parseAddress(arguments[1])
		accountKey := newKey()
		a := accountKey.Account().Address()
		execute(log, h, []*account.PrivateKey{key, accountKey},
			system.CreateAccount(payer, a, h.Rent().MinimumBalance(token.AccountSize), token.AccountSize, token.ID),
			token.InitializeAccount(a, mint, owner),
		)
		fmt.Printf("token account: %s\n", a)

	case "token-mint":
		needArguments(command, arguments, 3)
		key := readKey(options.KeyFile)
		destination := parseAddress(arguments[1])
		execute(log, h, []*account.PrivateKey{key},
			token.MintTo(parseAddress(arguments[0]), destination, key.Account().Address(), parseUint64(arguments[2])),
		)
		showToken(h, destination)

	case "token-show":
		needArguments(command, arguments, 1)
		showToken(h, parseAddress(arguments[0]))

	case "relay-transfer":
		needArguments(command, arguments, 4)
		destination := parseAddress(arguments[2])
		instruction, err := relay.Transfer(
			parseAddress(arguments[0]),
			parseAddress(arguments[1]),
			destination,
			parseUint64(arguments[3]),
		)
		if nil != err {
			exitwithstatus.Message("%s error: %s", command, err)
		}
		execute(log, h, nil, instruction)
		if verbose {
			showToken(h, parseAddress(arguments[0]))
		}
		showToken(h, destination)

	default:
		exitwithstatus.Message("error: no such command: %s", command)
	}
}

func mustRegister(log *logger.L, h *host.Host, name string, programID address.Address, program runtime.Program) {
	if err := h.Register(programID, program); nil != err {
		log.Criticalf("register: %s error: %s", name, err)
		exitwithstatus.Message("register: %s error: %s", name, err)
	}
}

func needArguments(command string, arguments []string, n int) {
	if n != len(arguments) {
		exitwithstatus.Message("%s: requires %d arguments, %d were given", command, n, len(arguments))
	}
}

func newKey() *account.PrivateKey {
	key, err := account.NewPrivateKey(rand.Reader)
	if nil != err {
		exitwithstatus.Message("generate key error: %s", err)
	}
	return key
}

func readKey(fileName string) *account.PrivateKey {
	data, err := ioutil.ReadFile(fileName)
	if nil != err {
		exitwithstatus.Message("read key: %q error: %s", fileName, err)
	}
	key, err := account.PrivateKeyFromBase58(strings.TrimSpace(string(data)))
	if nil != err {
		exitwithstatus.Message("decode key: %q error: %s", fileName, err)
	}
	return key
}

func parseProgram(s string) address.Address {
	if programID, ok := programs[s]; ok {
		return programID
	}
	return parseAddress(s)
}

func parseAddress(s string) address.Address {
	a, err := address.FromBase58(s)
	if nil != err {
		exitwithstatus.Message("address: %q error: %s", s, err)
	}
	return a
}

// @ADDRESS is the 32 address bytes, anything else is the text bytes
func seedBytes(s string) []byte {
	if strings.HasPrefix(s, "@") {
		return parseAddress(s[1:]).Bytes()
	}
	return []byte(s)
}

func parseUint(s string, bits int) uint64 {
	n, err := strconv.ParseUint(s, 10, bits)
	if nil != err {
		exitwithstatus.Message("number: %q error: %s", s, err)
	}
	return n
}

func parseUint8(s string) uint8 { return uint8(parseUint(s, 8)) }
func parseUint32(s string) uint32 { return uint32(parseUint(s, 32)) }
func parseUint64(s string) uint64 { return parseUint(s, 64) }
