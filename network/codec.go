package network

import (
	"fmt"

	"google.golang.org/protobuf/encoding/protowire"
)

// MaxDatagramSize is the largest UDP payload over IPv4.
const MaxDatagramSize = 65507

const (
	fieldType        protowire.Number = 1
	fieldTerm        protowire.Number = 2
	fieldCandidateId protowire.Number = 3
	fieldGranted     protowire.Number = 4
	fieldLeaderId    protowire.Number = 5
	fieldValue       protowire.Number = 6
	fieldFrom        protowire.Number = 7
)

// Marshal encodes msg in protobuf wire format. Zero-valued fields are omitted.
func Marshal(msg *Message) ([]byte, error) {
	if msg == nil || !msg.Type.valid() {
		return nil, ErrMalformedMessage
	}

	b := make([]byte, 0, 32+len(msg.Value))
	b = protowire.AppendTag(b, fieldType, protowire.VarintType)
	b = protowire.AppendVarint(b, uint64(msg.Type))
	if msg.Term != 0 {
		b = protowire.AppendTag(b, fieldTerm, protowire.VarintType)
		b = protowire.AppendVarint(b, msg.Term)
	}
	b = appendString(b, fieldCandidateId, msg.CandidateId)
	if msg.Granted {
		b = protowire.AppendTag(b, fieldGranted, protowire.VarintType)
		b = protowire.AppendVarint(b, protowire.EncodeBool(true))
	}
	b = appendString(b, fieldLeaderId, msg.LeaderId)
	b = appendString(b, fieldValue, msg.Value)
	b = appendString(b, fieldFrom, msg.From)

	if len(b) > MaxDatagramSize {
		return nil, ErrMessageTooLarge
	}
	return b, nil
}

func appendString(b []byte, num protowire.Number, s string) []byte {
	if s == "" {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendString(b, s)
}

// Unmarshal decodes a datagram produced by Marshal. Unknown fields are skipped.
func Unmarshal(b []byte) (*Message, error) {
	msg := &Message{}
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return nil, fmt.Errorf("%w: %v", ErrMalformedMessage, protowire.ParseError(n))
		}
		b = b[n:]

		switch {
		case typ == protowire.VarintType && (num == fieldType || num == fieldTerm || num == fieldGranted):
			v, n := protowire.ConsumeVarint(b)
			if n < 0 {
				return nil, fmt.Errorf("%w: %v", ErrMalformedMessage, protowire.ParseError(n))
			}
			b = b[n:]
			switch num {
			case fieldType:
				if v > 0xff {
					return nil, fmt.Errorf("%w: type %d", ErrMalformedMessage, v)
				}
				msg.Type = MessageType(v)
			case fieldTerm:
				msg.Term = v
			case fieldGranted:
				msg.Granted = protowire.DecodeBool(v)
			}
		case typ == protowire.BytesType && (num == fieldCandidateId || num == fieldLeaderId || num == fieldValue || num == fieldFrom):
			s, n := protowire.ConsumeString(b)
			if n < 0 {
				return nil, fmt.Errorf("%w: %v", ErrMalformedMessage, protowire.ParseError(n))
			}
			b = b[n:]
			switch num {
			case fieldCandidateId:
				msg.CandidateId = s
			case fieldLeaderId:
				msg.LeaderId = s
			case fieldValue:
				msg.Value = s
			case fieldFrom:
				msg.From = s
			}
		case num <= fieldFrom:
			return nil, fmt.Errorf("%w: field %d has wire type %d", ErrMalformedMessage, num, typ)
		default:
			n := protowire.ConsumeFieldValue(num, typ, b)
			if n < 0 {
				return nil, fmt.Errorf("%w: %v", ErrMalformedMessage, protowire.ParseError(n))
			}
			b = b[n:]
		}
	}

	if !msg.Type.valid() {
		return nil, fmt.Errorf("%w: type %s", ErrMalformedMessage, msg.Type)
	}
	return msg, nil
}
