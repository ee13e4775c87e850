// Copyright © 2024 Nokia. All rights reserved.
// Use of this source code is governed by the GPL-3 license described in the
// LICENSE file.

// Swpld3 is a command line front end for the swpld3d daemon.  Reads and
// writes go through the machine's redis hash, so the daemon remains the
// only owner of the i2c bus.
//
//	swpld3			print all attributes
//	swpld3 ATTR...		print the named attributes
//	swpld3 ATTR VALUE	write ATTR then print it back
package main

import (
	"fmt"
	"os"

	"github.com/platinasystems/flags"
	"github.com/platinasystems/parms"
	"github.com/platinasystems/redis"

	"github.com/fzhou-nokia/sonic-platform/swpld3"
)

const prefix = "swpld3."

const usage = `usage: swpld3 [-hash HASH] [ATTR [VALUE]]...`

func main() {
	if err := command(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "swpld3:", err)
		os.Exit(1)
	}
}

func command(arg []string) error {
	flag, arg := flags.New(arg, "-help")
	parm, arg := parms.New(arg, "-hash")
	if flag.ByName["-help"] {
		fmt.Println(usage)
		return nil
	}
	redis.DefaultHash = "ixr7220h4-32d"
	if s := parm.ByName["-hash"]; s != "" {
		redis.DefaultHash = s
	}
	if err := redis.IsReady(); err != nil {
		return err
	}
	switch {
	case len(arg) == 0:
		for _, name := range swpld3.Names() {
			if err := show(name); err != nil {
				return err
			}
		}
		return nil
	case len(arg) == 2 && isattr(arg[0]) && !isattr(arg[1]):
		return set(arg[0], arg[1])
	default:
		for _, name := range arg {
			if !isattr(name) {
				return fmt.Errorf("%s: unknown attribute", name)
			}
			if err := show(name); err != nil {
				return err
			}
		}
		return nil
	}
}

func isattr(name string) bool {
	_, found := swpld3.Lookup(name)
	return found
}

func show(name string) error {
	s, err := redis.Hget(redis.DefaultHash, prefix+name)
	if err != nil {
		return fmt.Errorf("%s: %v", name, err)
	}
	fmt.Println(prefix+name+":", s)
	return nil
}

func set(name, value string) error {
	a, _ := swpld3.Lookup(name)
	if !a.Writable {
		return fmt.Errorf("%s: read only", name)
	}
	_, err := redis.Hset(redis.DefaultHash, prefix+name, value)
	if err != nil {
		return fmt.Errorf("%s: %v", name, err)
	}
	return show(name)
}
