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
	"fmt"
	"io"
	"strings"

	"github.com/superkkt/ofcompat/openflow"

	"github.com/davecgh/go-spew/spew"
	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
)

// dumper is a switch that prints every message written to it instead of
// sending it over a connection.
type dumper struct {
	factory openflow.Factory
	w       io.Writer
	verbose bool
}

func newDumper(w io.Writer, v openflow.Version, verbose bool) (*dumper, error) {
	f, err := openflow.NewFactory(v)
	if err != nil {
		return nil, err
	}

	return &dumper{factory: f, w: w, verbose: verbose}, nil
}

func (r *dumper) Factory() openflow.Factory {
	return r.factory
}

func (r *dumper) Write(msg openflow.Message) error {
	if _, err := fmt.Fprintln(r.w, msg); err != nil {
		return err
	}
	if out, ok := msg.(openflow.PacketOut); ok && len(out.Data()) > 0 {
		if _, err := fmt.Fprintf(r.w, "\tframe: %v\n", describeFrame(out.Data())); err != nil {
			return err
		}
	}
	if r.verbose {
		spew.Fdump(r.w, msg)
	}

	return nil
}

// describeFrame lists the layers gopacket finds in data, e.g.
// "Ethernet/Dot1Q/IPv4".
func describeFrame(data []byte) string {
	packet := gopacket.NewPacket(data, layers.LayerTypeEthernet, gopacket.Default)
	names := make([]string, 0, len(packet.Layers()))
	for _, l := range packet.Layers() {
		names = append(names, l.LayerType().String())
	}

	return strings.Join(names, "/")
}
