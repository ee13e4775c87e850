// Copyright © 2024 Nokia. All rights reserved.
// Use of this source code is governed by the GPL-3 license described in the
// LICENSE file.

// Swpld3d publishes the SWPLD3 CPLD attributes of the 7220 IXR-H4-32D
// router to the machine's redis hash and accepts hset of the writable
// ones.  The daemon owns the device: it attaches once at start, which
// holds every QSFP port in reset until some higher-level policy releases
// it, and detaches on SIGINT or SIGTERM.
package main

import (
	"fmt"
	"net/rpc"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/platinasystems/atsock"
	"github.com/platinasystems/flags"
	"github.com/platinasystems/log"
	"github.com/platinasystems/parms"
	"github.com/platinasystems/redis"
	"github.com/platinasystems/redis/publisher"
	"github.com/platinasystems/redis/rpc/args"
	"github.com/platinasystems/redis/rpc/reply"

	"github.com/fzhou-nokia/sonic-platform/swpld3"
)

const sockname = "swpld3d"
const prefix = "swpld3."

const usage = `usage: swpld3d [-bus BUS] [-addr ADDR] [-hash HASH] [-interval SECONDS]`

type Info struct {
	mutex sync.Mutex
	dev   *swpld3.Device
	pub   *publisher.Publisher
	lasts map[string]string
}

func main() {
	if err := daemon(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "swpld3d:", err)
		os.Exit(1)
	}
}

func daemon(arg []string) error {
	flag, arg := flags.New(arg, "-help")
	parm, arg := parms.New(arg, "-bus", "-addr", "-hash", "-interval")
	if flag.ByName["-help"] {
		fmt.Println(usage)
		return nil
	}
	if len(arg) > 0 {
		return fmt.Errorf("%v: unexpected", arg)
	}

	bus := 0
	if s := parm.ByName["-bus"]; s != "" {
		n, err := strconv.ParseUint(s, 0, 8)
		if err != nil {
			return fmt.Errorf("-bus %s: %v", s, err)
		}
		bus = int(n)
	}
	addr := swpld3.DefaultAddr
	if s := parm.ByName["-addr"]; s != "" {
		n, err := strconv.ParseUint(s, 0, 7)
		if err != nil {
			return fmt.Errorf("-addr %s: %v", s, err)
		}
		addr = int(n)
	}
	redis.DefaultHash = "ixr7220h4-32d"
	if s := parm.ByName["-hash"]; s != "" {
		redis.DefaultHash = s
	}
	interval := 5 * time.Second
	if s := parm.ByName["-interval"]; s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n <= 0 {
			return fmt.Errorf("-interval %s: invalid", s)
		}
		interval = time.Duration(n) * time.Second
	}

	if err := redis.IsReady(); err != nil {
		return err
	}

	conn, err := swpld3.Open(bus, addr)
	if err != nil {
		return err
	}
	dev, err := swpld3.Attach(conn)
	if err != nil {
		conn.Close()
		return err
	}
	defer dev.Detach()

	ver, typ, day, month, year := dev.Revision()
	log.Printf("notice: swpld3 found: code 0x%02x type %x built %d.%d.%d",
		ver, typ, day, month, year)

	pub, err := publisher.New()
	if err != nil {
		return err
	}
	defer pub.Close()

	info := &Info{dev: dev, pub: pub, lasts: make(map[string]string)}

	srvr, err := atsock.NewRpcServer(sockname)
	if err != nil {
		return err
	}
	defer srvr.Close()
	rpc.Register(info)
	err = redis.Assign(redis.DefaultHash+":"+prefix, sockname, "Info")
	if err != nil {
		return err
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	if err = info.update(); err != nil {
		log.Print("err: ", err)
	}
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-stop:
			return nil
		case <-t.C:
			if err = info.update(); err != nil {
				log.Print("err: ", err)
			}
		}
	}
}

func (i *Info) update() error {
	i.mutex.Lock()
	defer i.mutex.Unlock()
	for _, name := range swpld3.Names() {
		v, err := i.dev.Get(name)
		if err != nil {
			return err
		}
		i.publish(prefix+name, v)
	}
	return nil
}

// Hset handles "hset HASH swpld3.ATTR VALUE" forwarded by redisd.  The
// device rejects read-only and out-of-domain values before any bus
// access, so a refused hset leaves the hardware untouched.
func (i *Info) Hset(a args.Hset, r *reply.Hset) error {
	name := strings.TrimPrefix(a.Field, prefix)
	i.mutex.Lock()
	defer i.mutex.Unlock()
	if err := i.dev.Set(name, string(a.Value)); err != nil {
		return err
	}
	v, err := i.dev.Get(name)
	if err != nil {
		return err
	}
	i.publish(prefix+name, v)
	*r = 1
	return nil
}

func (i *Info) publish(key, value string) {
	if value != i.lasts[key] {
		i.pub.Print(key, ": ", value)
		i.lasts[key] = value
	}
}
