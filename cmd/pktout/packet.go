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
	"github.com/superkkt/ofcompat/openflow"

	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
	"github.com/pkg/errors"
)

// frame serializes the Ethernet frame described by the scenario. A tagged
// scenario gets an 802.1Q header.
func (r scenario) frame() ([]byte, error) {
	eth := &layers.Ethernet{
		SrcMAC:       r.srcMAC,
		DstMAC:       r.dstMAC,
		EthernetType: layers.EthernetType(r.etherType),
	}
	l := []gopacket.SerializableLayer{eth}
	if r.vlanID.Tagged() {
		eth.EthernetType = layers.EthernetTypeDot1Q
		l = append(l, &layers.Dot1Q{
			VLANIdentifier: r.vlanID.VID(),
			Type:           layers.EthernetType(r.etherType),
		})
	}
	l = append(l, gopacket.Payload(make([]byte, r.payloadSize)))

	buf := gopacket.NewSerializeBuffer()
	if err := gopacket.SerializeLayers(buf, gopacket.SerializeOptions{}, l...); err != nil {
		return nil, errors.Wrap(err, "serializing the frame")
	}

	return buf.Bytes(), nil
}

// packetIn builds the PACKET_IN a switch speaking the scenario's version would
// send for the frame.
func (r scenario) packetIn() (openflow.PacketIn, error) {
	f, err := openflow.NewFactory(r.version)
	if err != nil {
		return openflow.PacketIn{}, err
	}
	data, err := r.frame()
	if err != nil {
		return openflow.PacketIn{}, err
	}

	b := f.NewPacketIn().
		SetBufferID(r.bufferID).
		SetData(data)
	if r.version.HasPacketInInPort() {
		b = b.SetInPort(r.inPort)
	} else {
		m, err := r.match(f.NewMatch())
		if err != nil {
			return openflow.PacketIn{}, err
		}
		b = b.SetMatch(m)
	}

	return b.Build()
}

func (r scenario) match(m openflow.Match) (openflow.Match, error) {
	m, err := m.WithInPort(r.inPort).WithEthType(r.etherType).WithSrcMAC(r.srcMAC)
	if err != nil {
		return m, err
	}
	if m, err = m.WithDstMAC(r.dstMAC); err != nil {
		return m, err
	}
	if r.vlanID.Tagged() {
		m = m.WithVLANID(r.vlanID)
	}

	return m, nil
}
