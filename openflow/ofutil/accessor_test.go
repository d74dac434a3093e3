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
	"testing"

	"github.com/superkkt/ofcompat/openflow"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
)

func TestIngressPort(t *testing.T) {
	for _, v := range allVersions {
		for _, port := range []openflow.Port{1, 3, 7, 0xff00, openflow.PortController, openflow.PortLocal} {
			pi := newPacketIn(t, v, port, openflow.NoBuffer, []byte{0x01})
			got, err := IngressPort(pi)
			if err != nil {
				t.Fatalf("%v: failed to read the ingress port: %v", v, err)
			}
			if got != port {
				t.Fatalf("%v: unexpected ingress port: expected=%v, got=%v", v, port, got)
			}
		}
	}
}

func TestIngressPortAtThreshold(t *testing.T) {
	// The version right below the threshold uses the inline field.
	f, _ := openflow.NewFactory(openflow.OF11)
	pi, err := f.NewPacketIn().SetInPort(3).Build()
	if err != nil {
		t.Fatalf("failed to build PACKET_IN: %v", err)
	}
	if port, err := IngressPort(pi); err != nil || port != 3 {
		t.Fatalf("OF1.1: unexpected ingress port: port=%v, err=%v", port, err)
	}

	// The threshold version reads the match, whatever else it contains.
	f, _ = openflow.NewFactory(openflow.OF12)
	match := openflow.NewMatch().WithVLANID(openflow.VLANPresent | 10).WithInPort(7).WithEthType(0x0800)
	pi, err = f.NewPacketIn().SetMatch(match).Build()
	if err != nil {
		t.Fatalf("failed to build PACKET_IN: %v", err)
	}
	if port, err := IngressPort(pi); err != nil || port != 7 {
		t.Fatalf("OF1.2: unexpected ingress port: port=%v, err=%v", port, err)
	}
}

func TestIngressPortMissing(t *testing.T) {
	for _, v := range []openflow.Version{openflow.OF12, openflow.OF13, openflow.OF15} {
		f, _ := openflow.NewFactory(v)
		pi, err := f.NewPacketIn().SetMatch(openflow.NewMatch().WithVLANID(openflow.VLANPresent | 1)).Build()
		if err != nil {
			t.Fatalf("%v: failed to build PACKET_IN: %v", v, err)
		}

		_, err = IngressPort(pi)
		if !errors.Is(err, openflow.ErrMissingInPort) {
			t.Fatalf("%v: expected ErrMissingInPort, got %v", v, err)
		}
	}
}

func TestSetIngressPortInline(t *testing.T) {
	for _, v := range []openflow.Version{openflow.OF10, openflow.OF11, openflow.OF12, openflow.OF13, openflow.OF14} {
		f, _ := openflow.NewFactory(v)
		b := SetIngressPort(f.NewPacketOut(), 5)
		if err := b.Error(); err != nil {
			t.Fatalf("%v: failed to set the ingress port: %v", v, err)
		}
		if port, ok := b.InPort(); !ok || port != 5 {
			t.Fatalf("%v: unexpected inline in_port: port=%v, ok=%v", v, port, ok)
		}
		if _, ok := b.Match(); ok {
			t.Fatalf("%v: PACKET_OUT should not have a match", v)
		}
	}
}

func TestSetIngressPortWithoutMatch(t *testing.T) {
	f, _ := openflow.NewFactory(openflow.OF15)
	b := SetIngressPort(f.NewPacketOut(), 5)
	if err := b.Error(); err != nil {
		t.Fatalf("failed to set the ingress port: %v", err)
	}
	if _, ok := b.InPort(); ok {
		t.Fatal("OF1.5 PACKET_OUT should not have an inline in_port")
	}
	match, ok := b.Match()
	if !ok {
		t.Fatal("the new match is not installed on the builder")
	}
	if !match.Equal(openflow.NewMatch().WithInPort(5)) {
		t.Fatalf("unexpected match: %v", match)
	}
}

func TestSetIngressPortKeepsExistingMatch(t *testing.T) {
	f, _ := openflow.NewFactory(openflow.OF15)
	existing := openflow.NewMatch().WithEthType(0x0806).WithInPort(1)
	orig := f.NewPacketOut().SetMatch(existing)

	b := SetIngressPort(orig, 9)
	match, ok := b.Match()
	if !ok {
		t.Fatal("the builder lost its match")
	}
	// Fails if the derived match is built and then dropped instead of being
	// installed on the returned builder.
	expected := openflow.NewMatch().WithEthType(0x0806).WithInPort(9)
	if !match.Equal(expected) {
		t.Fatalf("unexpected match: expected=%v, got=%v", expected, match)
	}

	// The caller's builder and match are untouched.
	if m, _ := orig.Match(); !m.Equal(existing) {
		t.Fatalf("original builder is modified: %v", m)
	}
	if port, _ := existing.InPort(); port != 1 {
		t.Fatalf("original match is modified: in_port=%v", port)
	}

	out, err := b.SetData([]byte{1}).Build()
	if err != nil {
		t.Fatalf("failed to build PACKET_OUT: %v", err)
	}
	got, _ := out.Match()
	if diff := cmp.Diff(expected.String(), got.String()); diff != "" {
		t.Fatalf("unexpected PACKET_OUT match (-expected +got):\n%v", diff)
	}
}

func TestVLAN(t *testing.T) {
	tagged, err := openflow.NewVLANID(100)
	if err != nil {
		t.Fatalf("failed to create VLAN ID: %v", err)
	}
	priority, err := openflow.NewVLANID(0)
	if err != nil {
		t.Fatalf("failed to create VLAN ID: %v", err)
	}

	samples := []struct {
		Name     string
		Match    openflow.Match
		Expected openflow.VLANID
	}{
		{"no VLAN_VID", openflow.NewMatch().WithInPort(1), openflow.Untagged},
		{"empty match", openflow.NewMatch(), openflow.Untagged},
		{"tagged", openflow.NewMatch().WithInPort(1).WithVLANID(tagged), tagged},
		{"priority tagged", openflow.NewMatch().WithInPort(1).WithVLANID(priority), priority},
		{"explicit OFPVID_NONE", openflow.NewMatch().WithInPort(1).WithVLANID(openflow.Untagged), openflow.Untagged},
	}

	f, _ := openflow.NewFactory(openflow.OF13)
	for _, v := range samples {
		pi, err := f.NewPacketIn().SetMatch(v.Match).Build()
		if err != nil {
			t.Fatalf("%v: failed to build PACKET_IN: %v", v.Name, err)
		}
		if got := VLAN(pi); got != v.Expected {
			t.Errorf("%v: unexpected VLAN: expected=%v, got=%v", v.Name, v.Expected, got)
		}
	}

	// Legacy PACKET_IN messages have no match at all.
	legacy := newPacketIn(t, openflow.OF10, 1, openflow.NoBuffer, []byte{1})
	if got := VLAN(legacy); got != openflow.Untagged {
		t.Fatalf("OF1.0: unexpected VLAN: %v", got)
	}
}
