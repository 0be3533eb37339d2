package main

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	"github.com/dhamidi/chomp/bits"
)

func newIPv4Cmd() *cobra.Command {
	return &cobra.Command{
		Use:           "ipv4 HEX",
		Short:         "Decode an IPv4 header from hex using the bit-level engine",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := commonlog.GetLogger("chomp.ipv4")

			raw, err := hex.DecodeString(strings.ReplaceAll(args[0], " ", ""))
			if err != nil {
				return fmt.Errorf("decode hex: %w", err)
			}
			log.Debugf("decoding %d bytes", len(raw))

			_, header, err := bits.Aligned[ipv4Header](parseIPv4)(raw)
			if err != nil {
				return fmt.Errorf("parse header: %w", err)
			}

			fmt.Printf("version:         %d\n", header.Version)
			fmt.Printf("header length:   %d words\n", header.IHL)
			fmt.Printf("dscp/ecn:        %d/%d\n", header.DSCP, header.ECN)
			fmt.Printf("total length:    %d\n", header.TotalLength)
			fmt.Printf("identification:  0x%04x\n", header.ID)
			fmt.Printf("flags:           %03b\n", header.Flags)
			fmt.Printf("fragment offset: %d\n", header.FragmentOffset)
			fmt.Printf("ttl:             %d\n", header.TTL)
			fmt.Printf("protocol:        %d\n", header.Protocol)
			fmt.Printf("checksum:        0x%04x\n", header.Checksum)
			fmt.Printf("source:          %s\n", dotted(header.Source))
			fmt.Printf("destination:     %s\n", dotted(header.Destination))
			return nil
		},
	}
}

type ipv4Header struct {
	Version        uint8
	IHL            uint8
	DSCP           uint8
	ECN            uint8
	TotalLength    uint16
	ID             uint16
	Flags          uint8
	FragmentOffset uint16
	TTL            uint8
	Protocol       uint8
	Checksum       uint16
	Source         uint32
	Destination    uint32
}

// bitReader latches the first failure so the field extraction below reads
// as a straight sequence.
type bitReader struct {
	in  bits.Input
	err error
}

func (r *bitReader) take(n int) uint64 {
	if r.err != nil {
		return 0
	}
	rest, v, err := bits.Take(n)(r.in)
	if err != nil {
		r.err = err
		return 0
	}
	r.in = rest
	return v
}

// parseIPv4 decodes the fixed 20-byte header. Options are left in the
// remainder.
func parseIPv4(in bits.Input) (bits.Input, ipv4Header, error) {
	r := &bitReader{in: in}
	h := ipv4Header{
		Version:        uint8(r.take(4)),
		IHL:            uint8(r.take(4)),
		DSCP:           uint8(r.take(6)),
		ECN:            uint8(r.take(2)),
		TotalLength:    uint16(r.take(16)),
		ID:             uint16(r.take(16)),
		Flags:          uint8(r.take(3)),
		FragmentOffset: uint16(r.take(13)),
		TTL:            uint8(r.take(8)),
		Protocol:       uint8(r.take(8)),
		Checksum:       uint16(r.take(16)),
		Source:         uint32(r.take(32)),
		Destination:    uint32(r.take(32)),
	}
	if r.err != nil {
		return bits.Input{}, ipv4Header{}, r.err
	}
	return r.in, h, nil
}

func dotted(addr uint32) string {
	return fmt.Sprintf("%d.%d.%d.%d", addr>>24&0xff, addr>>16&0xff, addr>>8&0xff, addr&0xff)
}
