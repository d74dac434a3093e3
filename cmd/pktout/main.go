/*
 * Cherry - An OpenFlow Controller
 *
 * Copyright (C) 2015 Samjung Data Service, Inc. All rights reserved.
 * Kitae Kim <superkkt@sds.co.kr>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU General Public License as published by
 * the Free Software Foundation; either version 2 of the License, or
 * any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License along
 * with this program; if not, write to the Free Software Foundation, Inc.,
 * 51 Franklin Street, Fifth Floor, Boston, MA 02110-1301 USA.
 */

package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/superkkt/ofcompat"
	"github.com/superkkt/ofcompat/log"
	"github.com/superkkt/ofcompat/openflow/ofutil"

	"github.com/op/go-logging"
	"github.com/spf13/viper"
)

const (
	programName    = "pktout"
	programVersion = ofcompat.Version
)

var (
	logger = logging.MustGetLogger("main")

	showHelp          = flag.Bool("help", false, "show this help and exit")
	showVersion       = flag.Bool("version", false, "show program version and exit")
	defaultConfigFile = flag.String("config", fmt.Sprintf("/usr/local/etc/%v.yaml", programName), "absolute path of the configuration file")
	verbose           = flag.Bool("verbose", false, "dump the full message structures")
)

func main() {
	parseCmdLines()
	conf := initConfig()
	initLog(conf)

	failed := 0
	for _, s := range conf.Scenarios {
		if err := run(s); err != nil {
			logger.Errorf("scenario %v: %v", s.Name, err)
			failed++
			continue
		}
		logger.Infof("scenario %v: done", s.Name)
	}
	if failed > 0 {
		logger.Fatalf("%v of %v scenarios failed", failed, len(conf.Scenarios))
	}
}

// Handle the command-line arguments.
func parseCmdLines() {
	flag.Parse()
	if *showHelp {
		flag.Usage()
		os.Exit(0)
	}
	if *showVersion {
		fmt.Printf("%v v%v\n", programName, programVersion)
		os.Exit(0)
	}
}

func initConfig() *config {
	viper.SetConfigFile(*defaultConfigFile)

	// Read the config file.
	if err := viper.ReadInConfig(); err != nil {
		logger.Fatalf("failed to read the config file: %v", err)
	}

	conf, err := parseConfig(viper.GetViper())
	if err != nil {
		logger.Fatalf("invalid configuration: %v", err)
	}

	return conf
}

func initLog(conf *config) {
	if _, err := log.Init(conf.LogLevel, conf.LogDriver, programName); err != nil {
		logger.Fatalf("failed to init log: %v", err)
	}
}

func run(s scenario) error {
	pi, err := s.packetIn()
	if err != nil {
		return err
	}
	logger.Debugf("synthesized %v (vlan=%v)", pi, ofutil.VLAN(pi))

	sw, err := newDumper(os.Stdout, s.switchVersion, *verbose)
	if err != nil {
		return err
	}

	return ofutil.WritePacketOutForPacketIn(sw, pi, s.egressPort)
}
