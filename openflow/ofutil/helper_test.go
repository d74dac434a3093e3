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

package ofutil

import (
	"net"
	"testing"

	"github.com/superkkt/ofcompat/openflow"

	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
	"github.com/pkg/errors"
)

var errWrite = errors.New("connection reset by peer")

// recorder is a switch that keeps every message written to it.
type recorder struct {
	factory openflow.Factory
	written []openflow.Message
	err     error
}

func newRecorder(t *testing.T, v openflow.Version) *recorder {
	f, err := openflow.NewFactory(v)
	if err != nil {
		t.Fatalf("failed to create a factory for %v: %v", v, err)
	}

	return &recorder{factory: f}
}

func (r *recorder) Factory() openflow.Factory {
	return r.factory
}

func (r *recorder) Write(msg openflow.Message) error {
	r.written = append(r.written, msg)
	return r.err
}

// newFrame returns an Ethernet frame of exactly size bytes.
func newFrame(t *testing.T, size int) []byte {
	eth := &layers.Ethernet{
		SrcMAC:       net.HardwareAddr{0x00, 0x0b, 0x82, 0x01, 0xfc, 0x42},
		DstMAC:       net.HardwareAddr{0xff, 0xff, 0xff, 0xff, 0xff, 0xff},
		EthernetType: layers.EthernetTypeARP,
	}
	payload := make([]byte, size-14)
	for i := range payload {
		payload[i] = byte(i)
	}

	buf := gopacket.NewSerializeBuffer()
	if err := gopacket.SerializeLayers(buf, gopacket.SerializeOptions{}, eth, gopacket.Payload(payload)); err != nil {
		t.Fatalf("failed to serialize a frame: %v", err)
	}
	frame := buf.Bytes()
	if len(frame) != size {
		t.Fatalf("unexpected frame length: expected=%v, got=%v", size, len(frame))
	}

	return frame
}

// newPacketIn builds a PACKET_IN received on port with the version-specific
// placement of the ingress port.
func newPacketIn(t *testing.T, v openflow.Version, port openflow.Port, buffer openflow.BufferID, data []byte) openflow.PacketIn {
	f, err := openflow.NewFactory(v)
	if err != nil {
		t.Fatalf("failed to create a factory for %v: %v", v, err)
	}

	b := f.NewPacketIn().SetBufferID(buffer).SetData(data)
	if v.HasPacketInInPort() {
		b = b.SetInPort(port)
	} else {
		b = b.SetMatch(openflow.NewMatch().WithInPort(port))
	}
	pi, err := b.Build()
	if err != nil {
		t.Fatalf("failed to build PACKET_IN: %v", err)
	}

	return pi
}

var allVersions = []openflow.Version{
	openflow.OF10,
	openflow.OF11,
	openflow.OF12,
	openflow.OF13,
	openflow.OF14,
	openflow.OF15,
}
