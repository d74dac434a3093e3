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
	"net"
	"strconv"
	"strings"

	"github.com/superkkt/ofcompat/log"
	"github.com/superkkt/ofcompat/openflow"

	"github.com/op/go-logging"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

const (
	defaultEtherType   = 0x0800
	defaultPayloadSize = 64
	maxPayloadSize     = 9000
)

var (
	defaultSrcMAC = net.HardwareAddr{0x02, 0x00, 0x00, 0x00, 0x00, 0x01}
	defaultDstMAC = net.HardwareAddr{0xff, 0xff, 0xff, 0xff, 0xff, 0xff}
)

type config struct {
	LogLevel  logging.Level
	LogDriver string
	Scenarios []scenario
}

// rawScenario is a scenario entry as written in the config file.
type rawScenario struct {
	Name          string `mapstructure:"name"`
	Version       string `mapstructure:"version"`
	SwitchVersion string `mapstructure:"switch_version"`
	BufferID      string `mapstructure:"buffer_id"`
	InPort        string `mapstructure:"in_port"`
	VLANID        int    `mapstructure:"vlan_id"`
	EgressPort    string `mapstructure:"egress_port"`
	SrcMAC        string `mapstructure:"src_mac"`
	DstMAC        string `mapstructure:"dst_mac"`
	EtherType     int    `mapstructure:"ether_type"`
	PayloadSize   int    `mapstructure:"payload_size"`
}

type scenario struct {
	Name string
	// version is the protocol version of the PACKET_IN and switchVersion is
	// the one the reply is built for. They differ only when a scenario says so.
	version       openflow.Version
	switchVersion openflow.Version
	bufferID      openflow.BufferID
	inPort        openflow.Port
	vlanID        openflow.VLANID
	egressPort    openflow.Port
	srcMAC        net.HardwareAddr
	dstMAC        net.HardwareAddr
	etherType     uint16
	payloadSize   int
}

func parseConfig(v *viper.Viper) (*config, error) {
	v.SetDefault("default.log_level", "info")
	v.SetDefault("default.log_driver", "stderr")
	v.SetDefault("default.version", "1.3")

	defaultVersion, err := openflow.ParseVersion(v.GetString("default.version"))
	if err != nil {
		return nil, errors.Wrap(err, "default.version")
	}

	var raw []rawScenario
	if err := v.UnmarshalKey("scenarios", &raw); err != nil {
		return nil, errors.Wrap(err, "scenarios")
	}
	if len(raw) == 0 {
		return nil, errors.New("no scenarios")
	}

	conf := &config{
		LogLevel:  log.ParseLevel(v.GetString("default.log_level")),
		LogDriver: v.GetString("default.log_driver"),
		Scenarios: make([]scenario, 0, len(raw)),
	}
	for i, r := range raw {
		s, err := r.resolve(defaultVersion)
		if err != nil {
			return nil, errors.Wrapf(err, "scenarios[%v]", i)
		}
		if s.Name == "" {
			s.Name = strconv.Itoa(i)
		}
		conf.Scenarios = append(conf.Scenarios, s)
	}

	return conf, nil
}

func (r rawScenario) resolve(defaultVersion openflow.Version) (s scenario, err error) {
	s.Name = r.Name

	s.version = defaultVersion
	if r.Version != "" {
		if s.version, err = openflow.ParseVersion(r.Version); err != nil {
			return s, err
		}
	}
	s.switchVersion = s.version
	if r.SwitchVersion != "" {
		if s.switchVersion, err = openflow.ParseVersion(r.SwitchVersion); err != nil {
			return s, err
		}
	}

	if s.bufferID, err = parseBufferID(r.BufferID); err != nil {
		return s, err
	}
	if r.InPort == "" {
		return s, errors.New("missing in_port")
	}
	if s.inPort, err = openflow.ParsePort(r.InPort); err != nil {
		return s, err
	}
	if r.EgressPort == "" {
		return s, errors.New("missing egress_port")
	}
	if s.egressPort, err = openflow.ParsePort(r.EgressPort); err != nil {
		return s, err
	}

	s.vlanID = openflow.Untagged
	if r.VLANID != 0 {
		if r.VLANID < 0 || r.VLANID > 0xffff {
			return s, errors.Wrapf(openflow.ErrInvalidVLANID, "%v", r.VLANID)
		}
		if s.vlanID, err = openflow.NewVLANID(uint16(r.VLANID)); err != nil {
			return s, err
		}
	}

	if s.srcMAC, err = parseMAC(r.SrcMAC, defaultSrcMAC); err != nil {
		return s, err
	}
	if s.dstMAC, err = parseMAC(r.DstMAC, defaultDstMAC); err != nil {
		return s, err
	}

	switch {
	case r.EtherType == 0:
		s.etherType = defaultEtherType
	case r.EtherType < 0x0600 || r.EtherType > 0xffff:
		return s, errors.Errorf("invalid ether_type: 0x%04x", r.EtherType)
	default:
		s.etherType = uint16(r.EtherType)
	}

	switch {
	case r.PayloadSize == 0:
		s.payloadSize = defaultPayloadSize
	case r.PayloadSize < 0 || r.PayloadSize > maxPayloadSize:
		return s, errors.Errorf("invalid payload_size: %v", r.PayloadSize)
	default:
		s.payloadSize = r.PayloadSize
	}

	return s, nil
}

// parseBufferID treats an empty value and "none" as NO_BUFFER.
func parseBufferID(s string) (openflow.BufferID, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" || s == "none" || s == "no_buffer" {
		return openflow.NoBuffer, nil
	}

	v, err := strconv.ParseUint(s, 0, 32)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid buffer_id %q", s)
	}

	return openflow.BufferID(v), nil
}

func parseMAC(s string, def net.HardwareAddr) (net.HardwareAddr, error) {
	if s == "" {
		return def, nil
	}

	mac, err := net.ParseMAC(s)
	if err != nil {
		return nil, err
	}
	if len(mac) != 6 {
		return nil, errors.Wrapf(openflow.ErrInvalidMACAddress, "%v", s)
	}

	return mac, nil
}
