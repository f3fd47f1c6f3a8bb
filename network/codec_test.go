package network

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/encoding/protowire"
)

func TestMarshalUnmarshalRequestVote(t *testing.T) {
	msg := NewRequestVote(7, "localhost:8001")

	data, err := Marshal(msg)
	require.NoError(t, err)

	decoded, err := Unmarshal(data)
	require.NoError(t, err)
	assert.Equal(t, msg, decoded)
}

func TestMarshalUnmarshalAppendEntriesKeepsEmptyValue(t *testing.T) {
	msg := NewAppendEntries(3, "localhost:8000", "")

	data, err := Marshal(msg)
	require.NoError(t, err)

	decoded, err := Unmarshal(data)
	require.NoError(t, err)
	assert.Equal(t, AppendEntries, decoded.Type)
	assert.Equal(t, uint64(3), decoded.Term)
	assert.Equal(t, "localhost:8000", decoded.LeaderId)
	assert.Equal(t, "", decoded.Value)
}

func TestUnmarshalSkipsUnknownFields(t *testing.T) {
	data, err := Marshal(NewVoteResponse(2, "n2", true))
	require.NoError(t, err)
	data = protowire.AppendTag(data, 42, protowire.BytesType)
	data = protowire.AppendString(data, "future")

	decoded, err := Unmarshal(data)
	require.NoError(t, err)
	assert.True(t, decoded.Granted)
	assert.Equal(t, "n2", decoded.From)
}

func TestUnmarshalRejectsMalformedPayloads(t *testing.T) {
	valid, err := Marshal(NewAppendEntries(1, "n1", "hello"))
	require.NoError(t, err)

	wrongWireType := protowire.AppendTag(nil, fieldType, protowire.BytesType)
	wrongWireType = protowire.AppendString(wrongWireType, "x")

	cases := map[string][]byte{
		"empty":           {},
		"json":            []byte(`{"type":"append_entries","term":1}`),
		"truncated":       valid[:len(valid)-2],
		"unknown type":    protowire.AppendVarint(protowire.AppendTag(nil, fieldType, protowire.VarintType), 9),
		"wrong wire type": wrongWireType,
		"dangling tag":    protowire.AppendTag(nil, fieldTerm, protowire.VarintType),
	}
	for name, payload := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Unmarshal(payload)
			assert.True(t, errors.Is(err, ErrMalformedMessage), "got %v", err)
		})
	}
}

func TestMarshalRejectsInvalidMessages(t *testing.T) {
	_, err := Marshal(nil)
	assert.ErrorIs(t, err, ErrMalformedMessage)

	_, err = Marshal(&Message{Term: 1})
	assert.ErrorIs(t, err, ErrMalformedMessage)

	_, err = Marshal(NewAppendEntries(1, "n1", strings.Repeat("v", MaxDatagramSize)))
	assert.ErrorIs(t, err, ErrMessageTooLarge)
}

func TestMessageTypeString(t *testing.T) {
	assert.Equal(t, "request_vote", RequestVote.String())
	assert.Equal(t, "vote_response", VoteResponse.String())
	assert.Equal(t, "append_entries", AppendEntries.String())
	assert.Equal(t, "unknown(0)", MessageType(0).String())
}
